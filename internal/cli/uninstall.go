package cli

import (
	"pacstore/internal/operation"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall [package]",
	Aliases: []string{"remove", "rm"},
	Short:   "Remove a package",
	Long: `Remove an installed package with pacstall, streaming its output.

Examples:
  pacstore uninstall neofetch
  pacstore remove -y neofetch   # Skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) error {
	return runOperation(args[0], operation.ModeUninstall)
}
