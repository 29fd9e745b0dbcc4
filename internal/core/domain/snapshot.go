package domain

// Snapshot is the full set of users and documents one index generation is
// built from.
type Snapshot struct {
	Users     []User
	Documents []Document
}

// ByOwner groups documents by owner. Every user appears as a key even when
// it owns nothing, and owners referenced only by documents are included too.
// Document order within an owner follows the snapshot order.
func (s Snapshot) ByOwner() map[string][]Document {
	out := make(map[string][]Document, len(s.Users))
	for _, u := range s.Users {
		if _, ok := out[u.ID]; !ok {
			out[u.ID] = nil
		}
	}
	for _, d := range s.Documents {
		out[d.OwnerID] = append(out[d.OwnerID], d)
	}
	return out
}

// ImportResult counts the users and documents moved by a seed import or export.
type ImportResult struct {
	Users     int `json:"users"`
	Documents int `json:"documents"`
}
