package cli

import (
	"context"
	"sort"

	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long: `List the Pacstall packages installed on this system.

Examples:
  pacstore list`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !mgr.IsAvailable(ctx) {
		return ErrManagerUnavailable
	}

	installed := mgr.ListInstalled(ctx)

	names := make([]string, 0, len(installed))
	for name := range installed {
		names = append(names, name)
	}
	sort.Strings(names)

	ui.PrintInstalled(names)
	return nil
}
