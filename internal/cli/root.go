// Package cli implements the command-line interface for pacstore.
package cli

import (
	"pacstore/internal/catalog"
	"pacstore/internal/config"
	"pacstore/internal/pacstall"
	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	yes     bool
	verbose bool
	noColor bool

	// Global state
	cfg    *config.Config
	client *catalog.Client
	mgr    *pacstall.Manager
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pacstore",
	Short: "Browse and manage Pacstall packages",
	Long: `Pacstore is a store front for Pacstall, the AUR-inspired package
manager for Ubuntu. It browses the remote package catalog, tracks what
is installed locally, and runs install and remove operations with live
output.

Examples:
  pacstore search brave            # Find packages in the catalog
  pacstore info brave-browser-deb  # Show package details
  pacstore install neofetch        # Install a package
  pacstore list                    # Show installed packages
  pacstore browse                  # Launch the interactive browser`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(doctorCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initializeApp sets up the application state.
func initializeApp() error {
	// Load configuration
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	// Initialize UI
	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	// Initialize catalog client and manager
	client = catalog.NewClientWithOptions(cfg.API.BaseURL, cfg.Timeout())
	if cfg.Output.Verbose {
		client.SetDiagnostics(ui.WarningMsg)
	}

	mgr = pacstall.NewWithBinary(cfg.Manager.Binary, cfg.Manager.Sudo)

	return nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pacstore version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("pacstore version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
