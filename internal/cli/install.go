package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"pacstore/internal/executor"
	"pacstore/internal/history"
	"pacstore/internal/operation"
	"pacstore/internal/orchestrator"
	"pacstore/internal/ui"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [package]",
	Short: "Install a package",
	Long: `Install a package with pacstall, streaming its output. Elevation
is handled through sudo; the password is asked for once and passed to
sudo directly.

Examples:
  pacstore install neofetch
  pacstore install -y brave-browser-deb   # Skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	return runOperation(args[0], operation.ModeInstall)
}

// runOperation drives one install or uninstall end to end: availability
// check, confirmation, credential prompt, submission, output streaming.
func runOperation(name string, mode operation.Mode) error {
	ctx := context.Background()

	if !mgr.IsAvailable(ctx) {
		return ErrManagerUnavailable
	}

	installed := mgr.ListInstalled(ctx)
	_, isInstalled := installed[name]

	if mode == operation.ModeInstall && isInstalled {
		ui.InfoMsg("%s is already installed", name)
		return nil
	}
	if mode == operation.ModeUninstall && !isInstalled {
		ui.WarningMsg("%s is not installed", name)
		return nil
	}

	verb := "Install"
	if mode == operation.ModeUninstall {
		verb = "Remove"
	}

	if !cfg.General.AutoConfirm {
		confirmed, err := ui.Confirm(fmt.Sprintf("%s %s?", verb, name), mode == operation.ModeInstall)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	credential, err := promptCredential()
	if err != nil {
		return err
	}

	// History recording is best effort; the operation proceeds without it.
	store, storeErr := history.Open()
	if storeErr != nil && cfg.Output.Verbose {
		ui.WarningMsg("Could not open history: %v", storeErr)
	}
	if store != nil {
		defer store.Close()
	}

	o := orchestrator.New(client, mgr, store)
	op := o.Submit(ctx, name, mode, credential)

	// Ctrl-C interrupts the package manager, not pacstore.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	streaming := true
	for streaming {
		select {
		case ev := <-o.Events():
			if p, ok := ev.(orchestrator.OperationProgress); ok {
				ui.Println("  %s", p.Line)
			}
		case <-sig:
			ui.WarningMsg("Interrupting %s...", name)
			o.Cancel(op)
		case <-op.Done():
			streaming = false
		}
	}

	// Flush output lines emitted just before the operation settled.
	for {
		select {
		case ev := <-o.Events():
			if p, ok := ev.(orchestrator.OperationProgress); ok {
				ui.Println("  %s", p.Line)
			}
			continue
		default:
		}
		break
	}

	switch op.Status() {
	case operation.StatusSucceeded:
		if mode == operation.ModeInstall {
			ui.SuccessMsg("Successfully installed %s", name)
		} else {
			ui.SuccessMsg("Successfully removed %s", name)
		}
		return nil
	case operation.StatusCancelled:
		ui.WarningMsg("Operation cancelled")
		return ErrOperationCancelled
	default:
		ui.ErrorMsg("Operation failed; run with -v for diagnostics")
		return ErrOperationFailed
	}
}

// promptCredential obtains the sudo password when elevation is needed. Root
// sessions and missing sudo both yield no credential; the latter is an error.
func promptCredential() ([]byte, error) {
	if executor.IsRoot() {
		return nil, nil
	}
	if !executor.HasSudo() {
		return nil, executor.ErrNoPrivileges
	}

	return ui.Password("Password for sudo")
}
