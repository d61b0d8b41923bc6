package executor

import (
	"os"
	"os/exec"
)

// IsRoot returns true if the current process runs as root.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// HasSudo returns true if the privilege-escalation front-end is available.
func HasSudo() bool {
	_, err := exec.LookPath("sudo")
	return err == nil
}

// CanElevate returns true if the process can obtain elevated privileges.
func CanElevate() bool {
	return IsRoot() || HasSudo()
}

type errNoPrivileges struct{}

func (e errNoPrivileges) Error() string {
	return "this operation requires root privileges, but neither running as root nor sudo is available"
}

// ErrNoPrivileges is the error returned when privileges cannot be elevated.
var ErrNoPrivileges = errNoPrivileges{}
