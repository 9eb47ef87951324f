package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// RowFingerprint hashes an ordered row of cells for duplicate detection. Each
// cell is prefixed with a tag byte, 'M' for missing and 'V' for a value, so a
// missing cell can never collide with any literal cell text. The unit
// separator keeps ("ab","c") distinct from ("a","bc").
func RowFingerprint(values []string, missing []bool) Hash {
	var data strings.Builder
	for i, v := range values {
		if i > 0 {
			data.WriteByte(0x1f)
		}
		if i < len(missing) && missing[i] {
			data.WriteByte('M')
			continue
		}
		data.WriteByte('V')
		data.WriteString(v)
	}
	return NewHash([]byte(data.String()))
}
