package titleindex

import "strings"

// Normalize returns the trie key for a title or prefix: surrounding
// whitespace trimmed, then lower-cased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
