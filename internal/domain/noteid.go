package domain

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// noteIDLength is the length of a note identifier: 16 random bytes hex-encoded.
const noteIDLength = 32

// NewNoteID returns a new note identifier: a fixed-length lowercase hex token.
// The repo layer assigns one to every note at creation time.
func NewNoteID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// IsValidNoteID reports whether candidate has the exact shape NewNoteID
// produces: 32 hex characters. Empty strings, wrong lengths, and non-hex
// characters all fail. Pure function: no I/O, no error return.
func IsValidNoteID(candidate string) bool {
	if len(candidate) != noteIDLength {
		return false
	}
	_, err := hex.DecodeString(candidate)
	return err == nil
}
