package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode/utf8"
)

// IsLatinAlnum reports whether r is an ASCII letter or digit.
func IsLatinAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// HasLatinAlnum checks if a string contains at least one ASCII letter or digit.
func HasLatinAlnum(s string) bool {
	for _, r := range s {
		if IsLatinAlnum(r) {
			return true
		}
	}
	return false
}

// Hash computes a SHA-256 hex hash of a string for cache keys.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
