// Package suggest provides the live title autocomplete view for the TUI.
package suggest

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

// ErrNoSuggestService indicates that no suggest service was provided.
var ErrNoSuggestService = errors.New("suggest service is required")

// DefaultLimit caps how many suggestions are fetched per keystroke.
const DefaultLimit = 20

// View is the autocomplete box: a prefix input over a live suggestion list.
// Every edit of the prefix queries the index; answers to superseded
// queries are dropped.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.PrefixInput
	list      *list.SuggestionList
	statusbar *status.Bar

	service driving.SuggestService
	ctx     context.Context

	owner  domain.User
	limit  int
	seq    uint64
	chosen *domain.Document

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new suggest view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.SuggestService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewPrefixInput(s, ""),
		list:      list.NewSuggestionList(s),
		statusbar: status.NewBar(s, km),
		service:   service,
		ctx:       context.Background(),
		limit:     DefaultLimit,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetLimit changes how many suggestions are fetched. Zero or less means all.
func (v *View) SetLimit(limit int) {
	v.limit = limit
}

// SetOwner switches the view to another owner, clears the prefix and
// returns the query for the owner's full title list.
func (v *View) SetOwner(owner domain.User) tea.Cmd {
	v.owner = owner
	v.chosen = nil
	v.err = nil
	label := owner.DisplayName()
	if label == "" {
		label = owner.ID
	}
	v.input.SetLabel(label)
	v.input.Reset()
	v.list.SetSuggestions("", nil)
	v.statusbar.Clear()
	return v.query("")
}

// Owner returns the owner being queried.
func (v *View) Owner() domain.User {
	return v.owner
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the suggest view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SuggestionsLoaded:
		v.handleSuggestions(msg)
		return v, nil

	case messages.RebuildCompleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetGeneration(msg.Stats.Generation)
		v.statusbar.SetMessage("Index rebuilt")
		return v, v.query(v.input.Value())

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewUsers}
		}

	case keymap.Matches(k, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(k, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(k, v.keymap.Complete):
		doc := v.list.SelectedDocument()
		if doc == nil {
			return v, nil
		}
		v.input.SetValue(doc.Title)
		return v, v.query(doc.Title)

	case keymap.Matches(k, v.keymap.Select):
		doc := v.list.SelectedDocument()
		if doc == nil {
			return v, nil
		}
		chosen := *doc
		v.chosen = &chosen
		v.statusbar.SetMessage("Selected " + chosen.Title)
		return v, func() tea.Msg {
			return messages.DocumentChosen{Document: chosen}
		}

	case keymap.Matches(k, v.keymap.Rebuild):
		v.statusbar.SetState(status.StateRebuilding)
		return v, v.rebuild()
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if !changed {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.query(v.input.Value()))
}

// query issues a suggestion lookup tagged with a fresh sequence number.
func (v *View) query(prefix string) tea.Cmd {
	v.seq++
	seq := v.seq
	owner := v.owner.ID
	opts := domain.SuggestOptions{Limit: v.limit}
	v.statusbar.SetState(status.StateQuerying)

	return func() tea.Msg {
		if v.service == nil {
			return messages.SuggestionsLoaded{Seq: seq, Prefix: prefix, Err: ErrNoSuggestService}
		}
		res, err := v.service.Suggest(v.ctx, owner, prefix, opts)
		return messages.SuggestionsLoaded{Seq: seq, Prefix: prefix, Result: res, Err: err}
	}
}

func (v *View) rebuild() tea.Cmd {
	return func() tea.Msg {
		if v.service == nil {
			return messages.RebuildCompleted{Err: ErrNoSuggestService}
		}
		stats, err := v.service.Rebuild(v.ctx, domain.RebuildManual)
		return messages.RebuildCompleted{Stats: stats, Err: err}
	}
}

// handleSuggestions applies a query answer unless a newer query is pending.
func (v *View) handleSuggestions(msg messages.SuggestionsLoaded) {
	if msg.Seq != v.seq {
		return
	}
	if msg.Err != nil {
		v.list.SetSuggestions(msg.Prefix, nil)
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.list.SetSuggestions(msg.Prefix, msg.Result.Documents)
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetCount(len(msg.Result.Documents))
	v.statusbar.SetGeneration(msg.Result.Generation)
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the suggest view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("docsuggest"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8) // header, input and status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Prefix returns the current prefix.
func (v *View) Prefix() string {
	return v.input.Value()
}

// Suggestions returns the documents currently listed.
func (v *View) Suggestions() []domain.Document {
	return v.list.Suggestions()
}

// SelectedIndex returns the index of the highlighted suggestion.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Chosen returns the last document confirmed with enter, or nil.
func (v *View) Chosen() *domain.Document {
	return v.chosen
}

// Generation returns the index generation that answered the last query.
func (v *View) Generation() uint64 {
	return v.statusbar.Generation()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
