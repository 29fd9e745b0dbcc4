package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change config.toml",
	Long: `Read or change config.toml. Keys use dot notation:

  storage.backend         sqlite or memory
  storage.data_dir        directory of the SQLite database and files
  seed.path               db.json imported on startup
  seed.watch              re-import and rebuild when seed.path changes
  server.addr             listen address of "serve"
  index.rebuild_interval  periodic rebuild, e.g. "5m" (0 disables)
  index.rebuild_rate      maximum rebuilds per second
  index.max_results       default suggestion cap (0 = all)

Changes apply to the next command.`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every key set in config.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one value",
	Long:  `Set one value. "true" and "false" are stored as booleans, numbers as numbers, anything else as a string.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.ConfigStore == nil {
		return errNotConfigured
	}

	cmd.Printf("# %s\n", s.ConfigStore.Path())
	for _, key := range s.ConfigStore.Keys() {
		val, _ := s.ConfigStore.Get(key)
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.ConfigStore == nil {
		return errNotConfigured
	}

	val, ok := s.ConfigStore.Get(args[0])
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.ConfigStore == nil {
		return errNotConfigured
	}

	key, val := args[0], parseConfigValue(args[1])
	if err := s.ConfigStore.Set(key, val); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	cmd.Printf("%s = %v\n", key, val)
	return nil
}

// parseConfigValue types a command-line value the way TOML would.
func parseConfigValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
