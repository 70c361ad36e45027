package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkbabb/sheetrange/internal/adapters/driven/config/file"
	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit stored configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openConfigStore()
		if err != nil {
			return err
		}
		return runConfigGet(cmd, store, args[0])
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Store a configuration value",
	Long: `Stores a configuration value and persists it immediately. Integer
values are stored as integers, everything else as strings.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openConfigStore()
		if err != nil {
			return err
		}
		return runConfigSet(store, args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openConfigStore()
		if err != nil {
			return err
		}
		cmd.Println(store.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func openConfigStore() (driven.ConfigStore, error) {
	return file.NewConfigStore(configDir)
}

// configDir overrides the store location; empty means the default
// ~/.sheetrange. Settable from tests.
var configDir string

func runConfigGet(cmd *cobra.Command, store driven.ConfigStore, key string) error {
	val, ok := store.Get(key)
	if !ok {
		return fmt.Errorf("key %q not set in %s", key, store.Path())
	}
	cmd.Println(fmt.Sprint(val))
	return nil
}

func runConfigSet(store driven.ConfigStore, key, raw string) error {
	if n, err := strconv.Atoi(raw); err == nil {
		return store.Set(key, n)
	}
	return store.Set(key, raw)
}
