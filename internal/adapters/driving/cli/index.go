package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Inspect or rebuild the title index",
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the title index from the stores",
	Args:  cobra.NoArgs,
	RunE:  runIndexRebuild,
}

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show figures of the current index generation",
	Args:  cobra.NoArgs,
	RunE:  runIndexStats,
}

func init() {
	indexCmd.AddCommand(indexRebuildCmd)
	indexCmd.AddCommand(indexStatsCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexRebuild(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	stats, err := s.Suggest.Rebuild(cmd.Context(), domain.RebuildManual)
	if err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	cmd.Printf("Rebuilt generation %d: %d users, %d documents in %s\n",
		stats.Generation, stats.Owners, stats.Documents, stats.Duration.Round(time.Microsecond))
	return nil
}

func runIndexStats(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	printStats(cmd, s.Suggest.Stats())
	return nil
}

func printStats(cmd *cobra.Command, stats domain.IndexStats) {
	cmd.Printf("Generation:  %d\n", stats.Generation)
	cmd.Printf("Users:       %d\n", stats.Owners)
	cmd.Printf("Documents:   %d\n", stats.Documents)
	cmd.Printf("Nodes:       %d\n", stats.Nodes)
	cmd.Printf("Overwritten: %d\n", stats.Overwritten)
	cmd.Printf("Skipped:     %d\n", stats.Skipped)
	if !stats.BuiltAt.IsZero() {
		cmd.Printf("Built:       %s (%s)\n", stats.BuiltAt.Format("2006-01-02 15:04:05"), stats.Duration.Round(time.Microsecond))
	}
}
