package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 generates the public identifier used for notices, submissions,
// projects and the rest: 128 random bits as 32 lowercase hex characters,
// no separators. Numeric primary keys stay internal to storage.
func NewID32() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
