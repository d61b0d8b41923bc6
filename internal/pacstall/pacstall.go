// Package pacstall wraps the pacstall executable: availability probing,
// installed-package enumeration, and operation argument construction.
package pacstall

import (
	"context"
	"strings"

	"pacstore/internal/executor"
)

const (
	// DefaultBinary is the package manager executable.
	DefaultBinary = "pacstall"

	// DefaultSudo is the privilege-escalation front-end.
	DefaultSudo = "sudo"
)

// Manager invokes the pacstall executable. The binary and the escalation
// front-end are overridable through settings, which also keeps tests off
// the real package manager.
type Manager struct {
	binary string
	sudo   string
	exec   *executor.Executor
}

// New creates a Manager for the default pacstall binary.
func New() *Manager {
	return NewWithBinary(DefaultBinary, DefaultSudo)
}

// NewWithBinary creates a Manager for a specific binary and escalation
// front-end. Empty values fall back to the defaults.
func NewWithBinary(binary, sudo string) *Manager {
	if binary == "" {
		binary = DefaultBinary
	}
	if sudo == "" {
		sudo = DefaultSudo
	}
	return &Manager{
		binary: binary,
		sudo:   sudo,
		exec:   executor.New(false),
	}
}

// Binary returns the manager executable name.
func (m *Manager) Binary() string {
	return m.binary
}

// Sudo returns the privilege-escalation front-end executable name.
func (m *Manager) Sudo() string {
	return m.sudo
}

// IsAvailable probes the manager with a version query. Any failure, from a
// missing executable to a non-zero exit, yields false.
func (m *Manager) IsAvailable(ctx context.Context) bool {
	_, err := m.exec.Output(ctx, m.binary, "--version")
	return err == nil
}

// ListInstalled enumerates locally installed package names. Execution
// failures yield an empty set; absence of data is indistinguishable from
// nothing installed.
func (m *Manager) ListInstalled(ctx context.Context) map[string]struct{} {
	output, err := m.exec.Output(ctx, m.binary, "-L")
	if err != nil {
		return map[string]struct{}{}
	}
	return ParseInstalled(output)
}

// ParseInstalled extracts the installed set from list-installed output.
// The first line is a header and is discarded; remaining lines are trimmed
// and empty ones dropped.
func ParseInstalled(output string) map[string]struct{} {
	installed := make(map[string]struct{})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return installed
	}

	for _, line := range lines[1:] {
		if name := strings.TrimSpace(line); name != "" {
			installed[name] = struct{}{}
		}
	}
	return installed
}

// InstallArgs returns the manager arguments for installing a package.
func (m *Manager) InstallArgs(name string) []string {
	return []string{"-I", name}
}

// UninstallArgs returns the manager arguments for removing a package.
func (m *Manager) UninstallArgs(name string) []string {
	return []string{"-R", name}
}

// Elevated rewrites a manager invocation to run through the escalation
// front-end, reading the credential from stdin.
func (m *Manager) Elevated(args []string) (string, []string) {
	return m.sudo, append([]string{"-S", m.binary}, args...)
}
