package synth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the shared placeholder credential all generated
// accounts are stored with. It runs once per run, not once per record:
// bcrypt at default cost would dominate generation time otherwise and every
// account carries the same plaintext anyway. A failure is fatal to the run —
// accounts must never be persisted with a missing or recoverable credential.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing seed password: %w", err)
	}
	return string(hash), nil
}
