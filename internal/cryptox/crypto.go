// Package cryptox provides password hashing and random secret generation
// for the development backend.
package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by CheckPassword for a wrong password.
var ErrMismatch = errors.New("password mismatch")

// HashPassword returns the bcrypt hash of password at the default cost.
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
}

// CheckPassword compares a bcrypt hash with a candidate password.
func CheckPassword(hash, password []byte) error {
	err := bcrypt.CompareHashAndPassword(hash, password)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size is the number of random bytes, so the result is twice as long.
//
// Example:
//
//	s, err := MakeRandHexString(16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s) // e.g., "9f2d4c3a5e6b1a7d..."
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
