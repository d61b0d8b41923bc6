package cli

import (
	"fmt"
	"strings"

	"pacstore/internal/config"
	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the color theme",
	Long: `Show the current color theme, or switch between light and dark.
The preference is used by the interactive browser.

Examples:
  pacstore theme          # Show current theme
  pacstore theme dark     # Switch to dark mode`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	prefs := config.LoadPreferences()

	if len(args) == 0 {
		ui.InfoMsg("Current theme: %s", prefs.Theme)
		return nil
	}

	theme := strings.ToLower(args[0])
	if theme != config.ThemeLight && theme != config.ThemeDark {
		return fmt.Errorf("unknown theme %q, expected light or dark", args[0])
	}

	prefs.Theme = theme
	if err := prefs.Save(); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}

	ui.SuccessMsg("Theme set to %s", theme)
	return nil
}
