// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	sealVersion byte = 1
	saltLen          = 16
)

var (
	ErrSealedBlobCorrupted = errors.New("sealed blob corrupted")
	ErrWrongPassphrase     = errors.New("wrong passphrase or tampered blob")
	ErrEmptyPassphrase     = errors.New("empty passphrase")
)

// sealer is the private implementation of [Sealer].
type sealer struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewSealer() Sealer {
	return &sealer{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

func (s *sealer) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		s.argonTime,
		s.argonMemory,
		s.argonThreads,
		chacha20poly1305.KeySize,
	)
}

// Seal implements [Sealer].
func (s *sealer) Seal(plaintext []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}

	header := make([]byte, 0, 1+saltLen+len(nonce)+len(plaintext)+aead.Overhead())
	header = append(header, sealVersion)
	header = append(header, salt...)
	header = append(header, nonce...)

	return aead.Seal(header, nonce, plaintext, []byte{sealVersion}), nil
}

// Open implements [Sealer].
func (s *sealer) Open(blob []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	minLen := 1 + saltLen + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
	if len(blob) < minLen || blob[0] != sealVersion {
		return nil, ErrSealedBlobCorrupted
	}

	salt := blob[1 : 1+saltLen]
	nonce := blob[1+saltLen : 1+saltLen+chacha20poly1305.NonceSizeX]
	ciphertext := blob[1+saltLen+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte{sealVersion})
	if err != nil {
		return nil, ErrWrongPassphrase
	}

	return plaintext, nil
}
