package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/WillPlatnick/calendar-tana/src-cli/fetch"
	"github.com/WillPlatnick/calendar-tana/src-cli/utils"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Check dependencies and write the default config file",
	Long: `Verifies that icalBuddy is reachable and writes a config file with
the built-in defaults. An existing config file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	RootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	config := utils.NewConfig(resolveConfigPath())

	binPath, err := fetch.LookupBinary(config.GetBuddyBin())
	if err != nil {
		return fmt.Errorf("runInstall: %w", err)
	}
	slog.Info("icalBuddy found", "path", binPath)

	path := resolveConfigPath()
	if _, err := os.Stat(path); err == nil {
		slog.Info("config file already exists, leaving it alone", "path", path)
		return nil
	}
	if err := utils.WriteFileConfig(path, utils.DefaultFileConfig()); err != nil {
		return fmt.Errorf("runInstall: can't write config: %w", err)
	}
	slog.Info("default config written", "path", path)
	return nil
}
