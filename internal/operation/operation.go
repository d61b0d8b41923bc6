// Package operation runs install/uninstall jobs as observable, cancellable
// subprocesses with sanitized, streamed output.
package operation

import (
	"context"
	"os"
	"sync"
)

// Mode is the kind of package operation.
type Mode string

const (
	ModeInstall   Mode = "install"
	ModeUninstall Mode = "uninstall"
)

// Status is the lifecycle state of an operation.
//
// Operations move Pending -> Running -> one of the terminal states.
// Terminal states never transition further.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Operation is one install/uninstall job. It is created by Runner.Submit
// and mutated only by the runner as the subprocess produces output or
// exits, except for Cancel which any observer may call.
type Operation struct {
	id   string
	pkg  string
	mode Mode

	mu     sync.Mutex
	status Status
	lines  []string
	proc   *os.Process

	done chan struct{}
}

func newOperation(id, pkg string, mode Mode) *Operation {
	return &Operation{
		id:     id,
		pkg:    pkg,
		mode:   mode,
		status: StatusPending,
		done:   make(chan struct{}),
	}
}

// ID returns the operation's session-unique identifier.
func (o *Operation) ID() string { return o.id }

// Package returns the target package name.
func (o *Operation) Package() string { return o.pkg }

// Mode returns the operation mode.
func (o *Operation) Mode() Mode { return o.mode }

// Status returns the current lifecycle state.
func (o *Operation) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Lines returns a snapshot of the sanitized output accumulated so far.
// The sequence is append-only; polling again returns a superset.
func (o *Operation) Lines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.lines))
	copy(out, o.lines)
	return out
}

// Done returns a channel closed once the operation has fully settled,
// meaning the process exited and, on success, the installed set was
// refreshed.
func (o *Operation) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until the operation settles or the context is cancelled,
// returning the status at that point. This is the optional second phase of
// the two-phase cancellation protocol.
func (o *Operation) Wait(ctx context.Context) Status {
	select {
	case <-o.done:
	case <-ctx.Done():
	}
	return o.Status()
}

// Cancel requests that a live operation stop: it delivers an interrupt
// signal to the process, marks the operation Cancelled, and returns
// immediately without waiting for the process to exit. The signal is
// advisory; the process may keep running afterwards. Cancelling an
// operation that already reached a terminal state is a no-op.
func (o *Operation) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status.Terminal() {
		return
	}

	if o.proc != nil {
		// Best effort; the process may already be gone.
		_ = o.proc.Signal(os.Interrupt)
	}
	o.status = StatusCancelled
}

// appendLine records one sanitized output line.
func (o *Operation) appendLine(line string) {
	o.mu.Lock()
	o.lines = append(o.lines, line)
	o.mu.Unlock()
}

// markRunning attaches the spawned process and moves Pending -> Running.
// If the operation was cancelled while still queued it reports false so the
// runner can interrupt the fresh process right away.
func (o *Operation) markRunning(proc *os.Process) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.proc = proc
	if o.status.Terminal() {
		_ = proc.Signal(os.Interrupt)
		return false
	}
	o.status = StatusRunning
	return true
}

// settle moves a Running operation to the given terminal state. A state
// that is already terminal (a prior Cancel) is left untouched.
func (o *Operation) settle(status Status) {
	o.mu.Lock()
	if !o.status.Terminal() {
		o.status = status
	}
	o.mu.Unlock()
}
