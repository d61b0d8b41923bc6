package cli

import (
	"context"

	"pacstore/internal/catalog"
	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show package details",
	Long: `Fetch and display the detail record for a catalog package.

Examples:
  pacstore info neofetch
  pacstore info brave-browser-deb`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	name := args[0]

	var detail *catalog.Detail
	err := ui.WithSpinner("Fetching details for "+name, func() error {
		detail = client.FetchDetail(ctx, name)
		return nil
	})
	if err != nil {
		return err
	}

	if detail == nil {
		return ErrPackageNotFound
	}

	installed := mgr.ListInstalled(ctx)
	_, isInstalled := installed[name]

	ui.PrintDetail(name, detail, isInstalled)
	return nil
}
