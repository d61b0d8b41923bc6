package cli

import "errors"

var (
	// ErrNoPackage is returned when no package name is specified.
	ErrNoPackage = errors.New("no package specified")

	// ErrManagerUnavailable is returned when the pacstall binary cannot be
	// found or executed.
	ErrManagerUnavailable = errors.New("pacstall is not available; install it from https://pacstall.dev")

	// ErrPackageNotFound is returned when a package is not in the catalog.
	ErrPackageNotFound = errors.New("package not found in the catalog")

	// ErrAborted is returned when the user aborts an operation.
	ErrAborted = errors.New("operation aborted by user")

	// ErrOperationFailed is returned when a package operation exits unsuccessfully.
	ErrOperationFailed = errors.New("operation failed")

	// ErrOperationCancelled is returned when a package operation is interrupted.
	ErrOperationCancelled = errors.New("operation cancelled")
)
