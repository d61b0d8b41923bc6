package cli

import (
	"context"

	"pacstore/internal/catalog"
	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the package catalog",
	Long: `Search the remote Pacstall catalog by package name. With no
query, the whole catalog is listed.

Examples:
  pacstore search brave         # Packages whose name contains 'brave'
  pacstore search               # The full catalog
  pacstore search -l 20 lib     # At most 20 matches`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "limit results (0 = unlimited)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	var pkgs []catalog.Package
	err := ui.WithSpinner("Fetching catalog", func() error {
		pkgs = client.FetchCatalog(ctx)
		return nil
	})
	if err != nil {
		return err
	}

	catalog.SortByName(pkgs)
	results := catalog.Filter(pkgs, query)

	if len(results) == 0 {
		if len(pkgs) == 0 {
			ui.WarningMsg("Catalog unavailable; check your network and try again")
			return nil
		}
		ui.InfoMsg("No packages matching '%s'", query)
		return nil
	}

	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	installed := mgr.ListInstalled(ctx)
	ui.PrintPackages(results, installed)
	ui.MutedMsg("\n%d of %d packages", len(results), len(pkgs))

	return nil
}
