package score

import "strings"

// Normalize canonicalizes a free-text answer for comparison: surrounding
// whitespace is trimmed and the remainder lower-cased. It is pure and
// idempotent, with no locale-sensitive collation beyond case folding.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
