// Package users provides the owner picker view for the TUI.
package users

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

// ErrNoUserService indicates that no user service was provided.
var ErrNoUserService = errors.New("user service is required")

// View lists owners and lets one be picked for autocomplete.
type View struct {
	styles   *styles.Styles
	service  driving.UserService
	ctx      context.Context
	users    []domain.User
	selected int
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new user picker.
func NewView(s *styles.Styles, service driving.UserService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the user list.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		if v.service == nil {
			return messages.UsersLoaded{Err: ErrNoUserService}
		}
		users, err := v.service.List(v.ctx)
		return messages.UsersLoaded{Users: users, Err: err}
	}
}

// Update handles messages for the user picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.UsersLoaded:
		v.loading = false
		v.err = msg.Err
		v.users = msg.Users
		if v.selected >= len(v.users) {
			v.selected = 0
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.users)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if len(v.users) == 0 {
				return v, nil
			}
			user := v.users[v.selected]
			return v, func() tea.Msg {
				return messages.UserSelected{User: user}
			}

		case "r":
			v.loading = true
			return v, v.load()

		case "q", "esc":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the user list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("docsuggest"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Pick a user to autocomplete their document titles"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading users..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case len(v.users) == 0:
		b.WriteString(v.styles.Muted.Render("No users"))
		b.WriteString("\n")
	}

	for i := range v.users {
		u := &v.users[i]
		name := u.DisplayName()
		if name == "" {
			name = "(unnamed)"
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + name))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(name))
		}
		b.WriteString("  " + v.styles.Muted.Render(u.ID))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[j/k] Navigate  [Enter] Select  [r] Reload  [q] Quit")
	b.WriteString(footer)

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Users returns the loaded users.
func (v *View) Users() []domain.User {
	return v.users
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
