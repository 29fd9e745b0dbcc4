package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <owner-id> [prefix]",
	Short: "Autocomplete document titles for a user",
	Long: `Print the user's documents whose titles start with prefix.

Matching ignores case and surrounding whitespace. Without a prefix every
document of the user is listed. Results come in title order, shorter titles
before their extensions.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSuggest,
}

var (
	suggestLimit int
	suggestJSON  bool
)

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "maximum number of suggestions (0 = all)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	ownerID := args[0]
	prefix := ""
	if len(args) > 1 {
		prefix = args[1]
	}

	result, err := s.Suggest.Suggest(cmd.Context(), ownerID, prefix, domain.SuggestOptions{Limit: suggestLimit})
	if errors.Is(err, domain.ErrOwnerNotFound) {
		return fmt.Errorf("user %s not found: %w", ownerID, err)
	}
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if suggestJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result.Documents)
	}

	if len(result.Documents) == 0 {
		cmd.Printf("No titles start with %q.\n", prefix)
		return nil
	}

	for i := range result.Documents {
		doc := &result.Documents[i]
		cmd.Printf("%s\t%s\n", doc.ID, doc.Title)
	}
	logger.Debug("suggest: %d matches from generation %d", len(result.Documents), result.Generation)
	return nil
}
