package titleindex

import (
	"slices"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// InsertOutcome reports what Insert did with a document.
type InsertOutcome int

const (
	// Inserted means the key was new.
	Inserted InsertOutcome = iota
	// Replaced means the key already held a document, which was overwritten.
	Replaced
	// Skipped means the title normalised to the empty string.
	Skipped
)

// node is one rune position in the trie. It owns its children.
// A node is terminal iff doc is non-nil.
type node struct {
	children map[rune]*node
	// order holds the keys of children in ascending order.
	order []rune
	doc   *domain.Document
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}
	return n.children[r]
}

func (n *node) addChild(r rune) *node {
	if n.children == nil {
		n.children = make(map[rune]*node)
	}
	c := &node{}
	n.children[r] = c
	i, _ := slices.BinarySearch(n.order, r)
	n.order = slices.Insert(n.order, i, r)
	return c
}

// Trie is a prefix tree over normalised titles.
type Trie struct {
	root  *node
	size  int
	nodes int
}

// NewTrie returns an empty trie. The root represents the empty prefix and
// is never terminal.
func NewTrie() *Trie {
	return &Trie{root: &node{}, nodes: 1}
}

// Insert adds doc under its normalised title. Inserting a key that already
// holds a document replaces it.
func (t *Trie) Insert(doc domain.Document) InsertOutcome {
	key := Normalize(doc.Title)
	if key == "" {
		return Skipped
	}

	n := t.root
	for _, r := range key {
		next := n.child(r)
		if next == nil {
			next = n.addChild(r)
			t.nodes++
		}
		n = next
	}

	outcome := Inserted
	if n.doc != nil {
		outcome = Replaced
	} else {
		t.size++
	}
	n.doc = &doc
	return outcome
}

// Search returns every document whose normalised title starts with the
// normalised prefix. The empty prefix returns all documents. No match
// yields an empty, non-nil slice.
func (t *Trie) Search(prefix string) []domain.Document {
	return t.SearchN(prefix, 0)
}

// SearchN is Search capped at limit results. A limit of zero or less means
// no cap. The order matches Search, so SearchN returns a prefix of it.
func (t *Trie) SearchN(prefix string, limit int) []domain.Document {
	n := t.find(Normalize(prefix))
	if n == nil {
		return []domain.Document{}
	}

	capacity := t.size
	if limit > 0 && limit < capacity {
		capacity = limit
	}
	out := make([]domain.Document, 0, capacity)
	collect(n, limit, &out)
	return out
}

// Get returns the document stored at exactly the normalised title.
func (t *Trie) Get(title string) (domain.Document, bool) {
	key := Normalize(title)
	if key == "" {
		return domain.Document{}, false
	}
	n := t.find(key)
	if n == nil || n.doc == nil {
		return domain.Document{}, false
	}
	return *n.doc, true
}

// Len returns the number of retrievable documents.
func (t *Trie) Len() int {
	return t.size
}

// Nodes returns the number of nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes
}

// find walks key from the root and returns the node reached, or nil.
func (t *Trie) find(key string) *node {
	n := t.root
	for _, r := range key {
		n = n.child(r)
		if n == nil {
			return nil
		}
	}
	return n
}

// collect appends the documents of n's subtree in pre-order, children in
// ascending rune order. It reports false once limit is reached.
func collect(n *node, limit int, out *[]domain.Document) bool {
	if n.doc != nil {
		*out = append(*out, *n.doc)
		if limit > 0 && len(*out) >= limit {
			return false
		}
	}
	for _, r := range n.order {
		if !collect(n.children[r], limit, out) {
			return false
		}
	}
	return true
}
