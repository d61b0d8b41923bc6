package cli

import (
	"context"

	"pacstore/internal/config"
	"pacstore/internal/executor"
	"pacstore/internal/history"
	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose setup issues",
	Long: `Check that pacstall, sudo, the catalog API, and local state are
all reachable and working.

Examples:
  pacstore doctor`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	issues := 0

	ui.HeaderMsg("Running diagnostics...")

	// Check the package manager
	if mgr.IsAvailable(ctx) {
		ui.SuccessMsg("pacstall is available (%s)", cfg.Manager.Binary)

		installed := mgr.ListInstalled(ctx)
		ui.SuccessMsg("Installed packages enumerated: %d", len(installed))
	} else {
		ui.ErrorMsg("pacstall binary not found or not working")
		issues++
	}

	// Check elevation
	if executor.IsRoot() {
		ui.SuccessMsg("Running as root, no elevation needed")
	} else if executor.HasSudo() {
		ui.SuccessMsg("sudo is available for elevation")
	} else {
		ui.ErrorMsg("Not root and sudo not found; install and remove will fail")
		issues++
	}

	// Check the catalog API
	pkgs := client.FetchCatalog(ctx)
	if len(pkgs) > 0 {
		ui.SuccessMsg("Catalog API reachable: %d packages (%s)", len(pkgs), cfg.API.BaseURL)
	} else {
		ui.ErrorMsg("Catalog API unreachable or returned no packages (%s)", cfg.API.BaseURL)
		issues++
	}

	// Check local state
	ui.HeaderMsg("Local State")

	ui.MutedMsg("  Config:      %s", config.ConfigPath())
	ui.MutedMsg("  Preferences: %s", config.PreferencesPath())

	if store, err := history.Open(); err == nil {
		count, _ := store.Count()
		ui.SuccessMsg("History store working: %d entries", count)
		store.Close()
	} else {
		ui.WarningMsg("History store unavailable: %v", err)
	}

	// Summary
	ui.HeaderMsg("Summary")
	if issues == 0 {
		ui.SuccessMsg("No issues found! Pacstore is ready to use.")
	} else {
		ui.WarningMsg("Found %d issue(s). Some features may not work correctly.", issues)
	}

	return nil
}
