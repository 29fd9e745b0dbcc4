package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsuggest/internal/adapters/driving/tui"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("tui requires an interactive terminal")

// isTerminal reports whether stdout is a terminal. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive autocomplete",
	Long: `Launch an interactive title autocomplete box.

Pick a user, then type: the list narrows with every key.

Controls:
  ↑/ctrl+p, ↓/ctrl+n - Move through suggestions
  Tab                 - Complete the selected title
  Enter               - Choose the selected document
  Ctrl+R              - Rebuild the index
  Esc                 - Back to users
  Ctrl+C              - Quit

The chosen document is printed on exit.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var (
	tuiOwner string
	tuiLimit int
)

func init() {
	tuiCmd.Flags().StringVarP(&tuiOwner, "owner", "o", "", "start directly in this user's autocomplete")
	tuiCmd.Flags().IntVarP(&tuiLimit, "limit", "n", 20, "maximum suggestions shown (0 = all)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic in TUI: %v", r)
		}
	}()

	s, err := requireServices()
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errNotTerminal
	}

	app, err := tui.NewApp(&tui.Ports{Suggest: s.Suggest, Users: s.Users})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context()).WithLimit(tuiLimit)

	if tuiOwner != "" {
		owner, err := s.Users.Get(cmd.Context(), tuiOwner)
		if err != nil {
			return fmt.Errorf("failed to get user %s: %w", tuiOwner, err)
		}
		app.WithOwner(*owner)
	}

	// Interval and seed-file rebuilds keep running while the box is open.
	stop := startBackground(cmd.Context(), s.Background)
	defer stop()

	chosen, err := app.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if chosen != nil {
		cmd.Printf("%s\t%s\n", chosen.ID, chosen.Title)
	}
	return nil
}
