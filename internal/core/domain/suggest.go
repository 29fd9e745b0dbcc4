package domain

// SuggestOptions configures a title suggestion query.
type SuggestOptions struct {
	// Limit is the maximum number of results. Zero or less means no limit.
	Limit int
}

// SuggestResult is the answer to one (owner, prefix) query.
type SuggestResult struct {
	// OwnerID is the owner that was queried.
	OwnerID string `json:"ownerId"`

	// Prefix is the prefix exactly as the caller sent it.
	Prefix string `json:"prefix"`

	// Documents are the matches in canonical trie order.
	Documents []Document `json:"documents"`

	// Generation is the index build generation that answered the query.
	Generation uint64 `json:"generation"`
}
