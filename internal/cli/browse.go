package cli

import (
	"pacstore/internal/config"
	"pacstore/internal/history"
	"pacstore/internal/orchestrator"
	"pacstore/internal/tui"
	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive package browser",
	Long: `Launch the interactive terminal browser for the Pacstall catalog.

The browser provides a visual way to:
  - Browse and filter the package catalog
  - View package details
  - Install and remove packages with live output
  - View installed packages and operation history

Navigation:
  - Use arrow keys or j/k to navigate
  - Press 1-3 to switch tabs
  - Press / to filter
  - Press i to install, r to remove
  - Press t to toggle light/dark theme
  - Press ? for help
  - Press q to quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Open history store
	store, err := history.Open()
	if err != nil {
		ui.WarningMsg("Could not open history: %v", err)
		// Continue without history
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	prefs := config.LoadPreferences()
	o := orchestrator.New(client, mgr, store)

	return tui.Run(o, cfg, prefs, store)
}
