package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects small blobs at rest under a passphrase.
//
// Layout of a sealed blob:
//
//	version(1) ‖ salt(16) ‖ nonce(24) ‖ ciphertext+tag
//
// The key is derived from the passphrase and salt with Argon2id and the
// payload is encrypted with XChaCha20-Poly1305. The version byte is bound
// into the AEAD as additional data.
type Sealer interface {
	// Seal encrypts plaintext under passphrase with a fresh salt and nonce.
	Seal(plaintext []byte, passphrase string) ([]byte, error)

	// Open reverses Seal. It returns [ErrSealedBlobCorrupted] when the blob is
	// too short or of an unknown version and [ErrWrongPassphrase] when
	// authentication fails.
	Open(blob []byte, passphrase string) ([]byte, error)
}
