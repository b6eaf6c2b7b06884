package models

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Record identities are 24 lowercase hex characters, assigned at insert
// and immutable afterwards.
var idPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// NewID generates a new 24-character hexadecimal record identity
func NewID() string {
	buf := make([]byte, 12)
	// crypto/rand.Read never fails on supported platforms
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// IsValidID reports whether id is a well-formed record identity
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}
