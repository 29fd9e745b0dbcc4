// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/titleindex"
)

// SuggestionList displays matching documents under the prefix box.
type SuggestionList struct {
	docs     []domain.Document
	prefix   string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSuggestionList creates a new suggestion list component.
func NewSuggestionList(s *styles.Styles) *SuggestionList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SuggestionList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// View renders the suggestion list.
func (l *SuggestionList) View() string {
	if len(l.docs) == 0 {
		return l.styles.Muted.Render("No matching titles")
	}

	lines := make([]string, 0, len(l.docs)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Suggestions (%d)", len(l.docs))), "")

	// One line per suggestion
	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.docs) {
		end = len(l.docs)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i, &l.docs[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRow formats one suggestion with the prefix part highlighted.
func (l *SuggestionList) renderRow(index int, doc *domain.Document) string {
	title := strings.TrimSpace(doc.Title)
	maxLen := l.width - 30
	if maxLen < 10 {
		maxLen = 10
	}
	if runes := []rune(title); len(runes) > maxLen {
		title = string(runes[:maxLen-3]) + "..."
	}

	detail := doc.Author
	if len(doc.Categories) > 0 {
		if detail != "" {
			detail += " · "
		}
		detail += strings.Join(doc.Categories, ", ")
	}

	if index == l.selected {
		return l.styles.Selected.Render("> "+title) + "  " + l.styles.Muted.Render(detail)
	}

	head, tail := SplitMatch(title, l.prefix)
	return "  " + l.styles.Match.Render(head) + l.styles.Normal.Render(tail) + "  " + l.styles.Muted.Render(detail)
}

// SplitMatch splits title into the part covered by prefix and the rest.
// Matching uses the same normalisation as the title index; a title that
// does not start with prefix is returned whole as the rest.
func SplitMatch(title, prefix string) (head, tail string) {
	p := titleindex.Normalize(prefix)
	t := strings.TrimSpace(title)
	if p == "" || !strings.HasPrefix(titleindex.Normalize(t), p) {
		return "", t
	}

	n := len([]rune(p))
	runes := []rune(t)
	if n > len(runes) {
		return t, ""
	}
	return string(runes[:n]), string(runes[n:])
}

// SetSuggestions replaces the list and resets the cursor.
func (l *SuggestionList) SetSuggestions(prefix string, docs []domain.Document) {
	l.prefix = prefix
	l.docs = docs
	l.selected = 0
}

// Suggestions returns the current documents.
func (l *SuggestionList) Suggestions() []domain.Document {
	return l.docs
}

// Selected returns the index of the highlighted suggestion.
func (l *SuggestionList) Selected() int {
	return l.selected
}

// SelectedDocument returns the highlighted document, or nil if none.
func (l *SuggestionList) SelectedDocument() *domain.Document {
	if l.selected < 0 || l.selected >= len(l.docs) {
		return nil
	}
	return &l.docs[l.selected]
}

// MoveUp moves selection up.
func (l *SuggestionList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *SuggestionList) MoveDown() {
	if l.selected < len(l.docs)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *SuggestionList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of suggestions.
func (l *SuggestionList) Count() int {
	return len(l.docs)
}
