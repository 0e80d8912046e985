package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// fastSealer keeps the Argon2id cost low so the tests stay quick.
func fastSealer() Sealer {
	return &sealer{argonTime: 1, argonMemory: 8 * 1024, argonThreads: 1}
}

func TestSealer_RoundTrip(t *testing.T) {
	s := fastSealer()
	plaintext := []byte(`{"accessToken":"a","refreshToken":"r"}`)

	blob, err := s.Seal(plaintext, "passphrase")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Contains(blob, plaintext) {
		t.Fatal("sealed blob contains plaintext")
	}
	if blob[0] != sealVersion {
		t.Fatalf("version byte = %d, want %d", blob[0], sealVersion)
	}

	got, err := s.Open(blob, "passphrase")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Open = %q, want %q", got, plaintext)
	}
}

func TestSealer_FreshSaltAndNonce(t *testing.T) {
	s := fastSealer()

	b1, err := s.Seal([]byte("same"), "k")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := s.Seal([]byte("same"), "k")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Fatal("expected two seals of the same plaintext to differ")
	}
}

func TestSealer_WrongPassphrase(t *testing.T) {
	s := fastSealer()

	blob, err := s.Seal([]byte("secret"), "right")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := s.Open(blob, "wrong"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("Open error = %v, want ErrWrongPassphrase", err)
	}
}

func TestSealer_Tampered(t *testing.T) {
	s := fastSealer()

	blob, err := s.Seal([]byte("secret"), "k")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	blob[len(blob)-1] ^= 0xFF

	if _, err := s.Open(blob, "k"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("Open error = %v, want ErrWrongPassphrase", err)
	}
}

func TestSealer_Corrupted(t *testing.T) {
	s := fastSealer()

	tests := []struct {
		name string
		blob []byte
	}{
		{"empty", nil},
		{"too short", []byte{sealVersion, 1, 2, 3}},
		{"unknown version", append([]byte{9}, bytes.Repeat([]byte{0}, 64)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Open(tt.blob, "k"); !errors.Is(err, ErrSealedBlobCorrupted) {
				t.Fatalf("Open error = %v, want ErrSealedBlobCorrupted", err)
			}
		})
	}
}

func TestSealer_EmptyPassphrase(t *testing.T) {
	s := fastSealer()

	if _, err := s.Seal([]byte("x"), ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("Seal error = %v, want ErrEmptyPassphrase", err)
	}
	if _, err := s.Open([]byte("x"), ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("Open error = %v, want ErrEmptyPassphrase", err)
	}
}

func TestNewSealer_Params(t *testing.T) {
	s, ok := NewSealer().(*sealer)
	if !ok {
		t.Fatal("NewSealer did not return *sealer")
	}
	if s.argonMemory != 64*1024 || s.argonTime != 1 || s.argonThreads != 4 {
		t.Fatalf("unexpected argon params: %+v", s)
	}
}
