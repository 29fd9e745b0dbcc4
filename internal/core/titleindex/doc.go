// Package titleindex implements the per-owner prefix index behind title
// autocomplete.
//
// A [Trie] maps normalised document titles to documents. A [Registry] holds
// one [UserIndex] per owner and answers (owner, prefix) queries.
//
// # Normalisation
//
// Titles and prefixes go through [Normalize] before every trie operation:
// surrounding whitespace is trimmed and the result is lower-cased. Matching
// is therefore case- and whitespace-insensitive at the edges only; inner
// whitespace is significant ("monthly r" matches "Monthly Report").
//
// # Ordering
//
// Results are returned in depth-first pre-order with children visited in
// ascending rune order. A title is returned before its extensions, so
// "annual" precedes "annual report".
//
// # Thread Safety
//
// A Trie is not safe for concurrent mutation. The Registry never mutates a
// published trie: Build constructs a new generation and swaps it in with a
// single atomic store, so any number of goroutines may call Search while a
// build runs. Builds are serialised with each other.
//
// # Duplicate Titles
//
// Two documents of one owner whose titles normalise to the same key share a
// terminal node. The last one inserted wins; the count of such replacements
// is reported in the build's stats.
package titleindex
