package otp

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// CodeTTL is how long an issued code stays valid.
const CodeTTL = 5 * time.Minute

var (
	// ErrNotFound: no pending code for the phone.
	ErrNotFound = errors.New("otp not found")
	// ErrExpired: a code existed but its window has passed. The entry is
	// consumed when this is returned.
	ErrExpired = errors.New("otp expired")
	// ErrMismatch: wrong code. The entry is kept for another attempt.
	ErrMismatch = errors.New("otp mismatch")
)

// Store holds at most one pending code per phone number. Codes are single
// use: a successful Verify consumes the entry.
type Store interface {
	// Issue generates a fresh code for the phone, replacing any pending
	// one, and returns it so the caller can hand it to the SMS sender.
	Issue(ctx context.Context, phone string) (string, error)
	// Verify checks the code and consumes the entry on success.
	Verify(ctx context.Context, phone, code string) error
}

// generateCode returns a uniformly random 6-digit code.
func generateCode() string {
	return fmt.Sprintf("%06d", rand.IntN(900000)+100000)
}
