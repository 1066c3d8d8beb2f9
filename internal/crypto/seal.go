package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrEmptyPassphrase = errors.New("sealing passphrase must not be empty")
	ErrSealedTooShort  = errors.New("sealed value is too short")
	ErrOpenFailed      = errors.New("sealed value could not be opened")
)

// keySalt domain-separates history keys from any other use of the passphrase.
var keySalt = []byte("passmeter/history/v1")

// KeyParams configures the Argon2id key derivation.
type KeyParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
}

// DefaultKeyParams returns recommended Argon2id parameters.
func DefaultKeyParams() KeyParams {
	return KeyParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
	}
}

// DeriveKey stretches passphrase into a XChaCha20-Poly1305 key.
func DeriveKey(passphrase string, params KeyParams) []byte {
	return argon2.IDKey([]byte(passphrase), keySalt, params.Iterations, params.Memory, params.Parallelism, chacha20poly1305.KeySize)
}

// Sealer encrypts history values before they are stored.
// Output layout: 24-byte random nonce followed by the ciphertext and tag.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a key from passphrase with DefaultKeyParams.
func NewSealer(passphrase string) (*Sealer, error) {
	return NewSealerWithParams(passphrase, DefaultKeyParams())
}

// NewSealerWithParams derives a key from passphrase with the given parameters.
func NewSealerWithParams(passphrase string, params KeyParams) (*Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	aead, err := chacha20poly1305.NewX(DeriveKey(passphrase, params))
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh nonce.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a value produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < s.aead.NonceSize()+s.aead.Overhead() {
		return nil, ErrSealedTooShort
	}

	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrOpenFailed
	}

	return plaintext, nil
}
