package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lep/jassbot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or edit the config file",
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a commented default config",
	Long: `Write the default configuration with comments to PATH, or to
~/.config/jassbot/config.yaml. An existing file is kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting, keeping the rest of the file",
	Long: `Set KEY, in dot notation, to VALUE in the config file that was loaded.
Theme colors are keyed by their token, e.g. theme.colors.syntax.keyword.

Examples:
  jassbot config set server.addr :8080
  jassbot config set theme.colors.syntax.native "#8BE9FD"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configSetCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "jassbot", "config.yaml")
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := configFilePath()
	if err := config.SaveSetting(path, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)
	return nil
}
