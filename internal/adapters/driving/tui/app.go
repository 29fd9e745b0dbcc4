package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/views/suggest"
	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui/views/users"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	usersView   *users.View
	suggestView *suggest.View

	// owner is preset when the app skips the picker.
	owner *domain.User

	currentView messages.ViewType
	chosen      *domain.Document

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		usersView:   users.NewView(s, ports.Users),
		suggestView: suggest.NewView(s, nil, ports.Suggest),
		currentView: messages.ViewUsers,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.usersView.WithContext(ctx)
	a.suggestView.WithContext(ctx)
	return a
}

// WithOwner starts the app directly in the autocomplete box for owner.
func (a *App) WithOwner(owner domain.User) *App {
	a.owner = &owner
	a.currentView = messages.ViewSuggest
	return a
}

// WithLimit caps suggestions per query. Zero or less means all.
func (a *App) WithLimit(limit int) *App {
	a.suggestView.SetLimit(limit)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	title := tea.SetWindowTitle("docsuggest")
	if a.owner != nil {
		return tea.Batch(title, a.suggestView.Init(), a.suggestView.SetOwner(*a.owner))
	}
	return tea.Batch(title, a.usersView.Init())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.UserSelected:
		a.currentView = messages.ViewSuggest
		return a, a.suggestView.SetOwner(msg.User)

	case messages.ViewChanged:
		if msg.View == messages.ViewUsers {
			if a.ports.Users == nil {
				// Nothing to go back to.
				return a, tea.Quit
			}
			a.currentView = messages.ViewUsers
			return a, a.usersView.Init()
		}
		a.currentView = msg.View
		return a, nil

	case messages.UsersLoaded:
		a.usersView, cmd = a.usersView.Update(msg)
		return a, cmd

	case messages.SuggestionsLoaded, messages.RebuildCompleted:
		a.suggestView, cmd = a.suggestView.Update(msg)
		return a, cmd

	case messages.DocumentChosen:
		doc := msg.Document
		a.chosen = &doc
		return a, nil
	}

	// Forward everything else to the active view
	switch a.currentView {
	case messages.ViewUsers:
		a.usersView, cmd = a.usersView.Update(msg)
	case messages.ViewSuggest:
		a.suggestView, cmd = a.suggestView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewSuggest {
		return a.suggestView.View()
	}
	return a.usersView.View()
}

// Run starts the TUI application and returns the document chosen last, if any.
func (a *App) Run() (*domain.Document, error) {
	if a.owner == nil && a.ports.Users == nil {
		return nil, ErrNoOwner
	}
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return a.chosen, nil
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Chosen returns the last document confirmed with enter, or nil.
func (a *App) Chosen() *domain.Document {
	return a.chosen
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.usersView.SetDimensions(width, height)
	a.suggestView.SetDimensions(width, height)
}
