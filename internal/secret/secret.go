// Package secret generates and validates the random salt values the
// Sentra server derives its tokens from.
package secret

import (
	"github.com/google/uuid"
)

// Generate returns a fresh version-4 UUID in canonical string form
// (lowercase hex, 8-4-4-4-12 groups).
func Generate() string {
	return uuid.New().String()
}

// IsCanonical reports whether s is a canonical UUID4 string: 36
// characters, hyphens at positions 8/13/18/23, lowercase hex
// everywhere else, version nibble 4 and RFC 4122 variant bits.
func IsCanonical(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		default:
			if !isLowerHex(s[i]) {
				return false
			}
		}
	}
	if s[14] != '4' {
		return false
	}
	// Variant field: the first nibble of the fourth group must be
	// 8, 9, a or b.
	switch s[19] {
	case '8', '9', 'a', 'b':
		return true
	}
	return false
}

func isLowerHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
