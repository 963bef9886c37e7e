package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// probePassword is hashed once at construction to prove the algorithm works.
const probePassword = "pulse-auth-probe"

// PasswordHasher produces and verifies self-describing bcrypt hashes
// ("$2a$<cost>$<salt><digest>"). Each Hash call uses a fresh random salt.
//
// PasswordHasher is safe for concurrent use.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher validates cost and performs one hash/verify round-trip.
// A failure is meant to block startup.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: cost %d out of range", ErrPasswordHasherUnavailable, cost)
	}

	h := &PasswordHasher{cost: cost}

	probe, err := h.Hash(probePassword)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPasswordHasherUnavailable, err)
	}
	if !h.Verify(probePassword, probe) {
		return nil, fmt.Errorf("%w: probe hash does not verify", ErrPasswordHasherUnavailable)
	}

	return h, nil
}

// Hash returns a salted bcrypt hash of password.
// Passwords longer than 72 bytes are rejected with bcrypt.ErrPasswordTooLong.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed hash yields false.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
