// Package cryptox derives password verifiers for the local user directory,
// so fallback credentials are checked without storing plaintext passwords.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/ifti227i/RideShareX/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt generated by HashPassword.
const SaltSize = 16

// DeriveKey stretches password with salt using Argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value kept on disk.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// PasswordHash is the persisted form of a password: a salt and the
// verifier derived from (password, salt).
type PasswordHash struct {
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

// HashPassword creates a PasswordHash with a fresh random salt.
func HashPassword(password []byte) PasswordHash {
	salt := common.GenerateRandByteArray(SaltSize)
	return PasswordHash{Salt: salt, Verifier: MakeVerifier(DeriveKey(password, salt))}
}

// Matches reports whether candidate is exactly the password h was made from.
// The comparison runs in constant time.
func (h PasswordHash) Matches(candidate []byte) bool {
	if len(h.Salt) == 0 || len(h.Verifier) == 0 {
		return false
	}
	got := MakeVerifier(DeriveKey(candidate, h.Salt))
	return subtle.ConstantTimeCompare(got, h.Verifier) == 1
}
