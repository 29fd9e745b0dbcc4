package jsondb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// Table names.
const (
	TableUsers     = "users"
	TableDocuments = "documents"
)

// uploadDateLayouts are tried in order when a seed carries an upload date.
var uploadDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// record is a document as it appears in the file. Upload dates are kept as
// text because seed files carry them with and without a zone.
type record struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Title      string         `json:"title"`
	HashValue  string         `json:"hashValue,omitempty"`
	FileExt    string         `json:"fileExt,omitempty"`
	Author     string         `json:"author,omitempty"`
	Categories categories     `json:"categories,omitempty"`
	UploadDate string         `json:"uploadDate,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// categories accepts a list or a comma-separated string.
type categories []string

func (c *categories) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*c = list
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("categories must be a list or a string: %w", err)
	}
	*c = nil
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*c = append(*c, part)
		}
	}
	return nil
}

// Load reads a seed file.
func Load(path string) (domain.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// Decode parses a seed document. An empty input yields an empty snapshot.
func Decode(r io.Reader) (domain.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Snapshot{Users: []domain.User{}, Documents: []domain.Document{}}, nil
	}

	var tables map[string]json.RawMessage
	if err := json.Unmarshal(data, &tables); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	snap := domain.Snapshot{Users: []domain.User{}, Documents: []domain.Document{}}

	userRows, err := rows(tables[TableUsers])
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: table %s: %v", domain.ErrInvalidInput, TableUsers, err)
	}
	for _, row := range userRows {
		var u domain.User
		if err := json.Unmarshal(row.data, &u); err != nil {
			return domain.Snapshot{}, fmt.Errorf("%w: user %s: %v", domain.ErrInvalidInput, row.key, err)
		}
		if u.ID == "" {
			u.ID = row.key
		}
		snap.Users = append(snap.Users, u)
	}

	docRows, err := rows(tables[TableDocuments])
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: table %s: %v", domain.ErrInvalidInput, TableDocuments, err)
	}
	for _, row := range docRows {
		var rec record
		if err := json.Unmarshal(row.data, &rec); err != nil {
			return domain.Snapshot{}, fmt.Errorf("%w: document %s: %v", domain.ErrInvalidInput, row.key, err)
		}
		doc, err := rec.document(row.key)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("%w: document %s: %v", domain.ErrInvalidInput, row.key, err)
		}
		snap.Documents = append(snap.Documents, doc)
	}

	return snap, nil
}

func (r record) document(key string) (domain.Document, error) {
	doc := domain.Document{
		ID:         r.ID,
		OwnerID:    r.UserID,
		Title:      r.Title,
		HashValue:  r.HashValue,
		FileExt:    r.FileExt,
		Author:     r.Author,
		Categories: []string(r.Categories),
		Metadata:   r.Metadata,
	}
	if doc.ID == "" {
		doc.ID = key
	}
	if r.UploadDate != "" {
		t, err := parseUploadDate(r.UploadDate)
		if err != nil {
			return domain.Document{}, err
		}
		doc.UploadDate = t
	}
	return doc, nil
}

func parseUploadDate(s string) (time.Time, error) {
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised upload date %q", s)
}

type row struct {
	key  string
	data json.RawMessage
}

// rows flattens a table into records ordered by key. Numeric keys sort
// numerically, the rest after them lexically.
func rows(table json.RawMessage) ([]row, error) {
	trimmed := bytes.TrimSpace(table)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		out := make([]row, len(list))
		for i, data := range list {
			out[i] = row{key: strconv.Itoa(i + 1), data: data}
		}
		return out, nil
	}

	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &byKey); err != nil {
		return nil, err
	}
	out := make([]row, 0, len(byKey))
	for k, data := range byKey {
		out = append(out, row{key: k, data: data})
	}
	sort.Slice(out, func(i, j int) bool {
		return keyLess(out[i].key, out[j].key)
	})
	return out, nil
}

func keyLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// Encode writes snap in the TinyDB layout with 4-space indentation.
func Encode(w io.Writer, snap domain.Snapshot) error {
	users := make(map[string]domain.User, len(snap.Users))
	for i, u := range snap.Users {
		users[strconv.Itoa(i+1)] = u
	}
	docs := make(map[string]record, len(snap.Documents))
	for i, d := range snap.Documents {
		rec := record{
			ID:         d.ID,
			UserID:     d.OwnerID,
			Title:      d.Title,
			HashValue:  d.HashValue,
			FileExt:    d.FileExt,
			Author:     d.Author,
			Categories: categories(d.Categories),
			Metadata:   d.Metadata,
		}
		if !d.UploadDate.IsZero() {
			rec.UploadDate = d.UploadDate.Format(time.RFC3339Nano)
		}
		docs[strconv.Itoa(i+1)] = rec
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(map[string]any{
		TableUsers:     users,
		TableDocuments: docs,
	})
}

// Export writes snap to path, replacing the file atomically.
func Export(path string, snap domain.Snapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return fmt.Errorf("encoding seed: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("writing seed file: %w", err)
	}
	return nil
}
