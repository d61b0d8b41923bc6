package operation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"pacstore/internal/pacstall"
	"pacstore/internal/sanitize"
)

// Runner executes operations against the package manager. Operations on
// distinct package names run concurrently, each owning its subprocess and
// output buffer; submissions for the same name are serialized through a
// per-name lock so installed-state updates never race.
type Runner struct {
	mgr *pacstall.Manager

	// refresh replaces the installed set. Called synchronously after a
	// zero exit, before the operation settles as Succeeded.
	refresh func(ctx context.Context)

	onProgress func(op *Operation, line string)
	onDone     func(op *Operation)

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	seq   atomic.Uint64
}

// NewRunner creates a Runner. refresh may be nil when no installed-state
// tracking is wanted (tests, dry inspection).
func NewRunner(mgr *pacstall.Manager, refresh func(ctx context.Context)) *Runner {
	return &Runner{
		mgr:     mgr,
		refresh: refresh,
		locks:   make(map[string]*sync.Mutex),
	}
}

// OnProgress installs a callback invoked for every sanitized, non-empty
// output line.
func (r *Runner) OnProgress(fn func(op *Operation, line string)) {
	r.onProgress = fn
}

// OnDone installs a callback invoked once an operation settles.
func (r *Runner) OnDone(fn func(op *Operation)) {
	r.onDone = fn
}

// Submit creates an operation for the named package and starts it in the
// background, returning the handle immediately. If credential is non-empty
// the manager runs through the privilege-escalation front-end and the
// credential is written once to its stdin, then wiped; it is never stored,
// logged, or echoed into the output history.
func (r *Runner) Submit(ctx context.Context, name string, mode Mode, credential []byte) *Operation {
	id := fmt.Sprintf("%s-%s-%d", mode, name, r.seq.Add(1))
	op := newOperation(id, name, mode)

	go r.run(ctx, op, credential)
	return op
}

func (r *Runner) run(ctx context.Context, op *Operation, credential []byte) {
	lock := r.nameLock(op.pkg)
	lock.Lock()
	defer lock.Unlock()

	defer func() {
		// Observers waiting on Done must find the done callback's effects
		// (history record, done event) already in place.
		if r.onDone != nil {
			r.onDone(op)
		}
		close(op.done)
	}()

	// Cancelled while queued behind another operation on the same name.
	if op.Status().Terminal() {
		wipe(credential)
		return
	}

	var args []string
	switch op.mode {
	case ModeUninstall:
		args = r.mgr.UninstallArgs(op.pkg)
	default:
		args = r.mgr.InstallArgs(op.pkg)
	}

	bin := r.mgr.Binary()
	if len(credential) > 0 {
		bin, args = r.mgr.Elevated(args)
	}

	cmd := exec.Command(bin, args...)

	// Merge stderr into stdout so observers see one ordered stream.
	pr, pw, err := os.Pipe()
	if err != nil {
		wipe(credential)
		r.fail(op, fmt.Sprintf("Error: %v", err))
		return
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	var stdin io.WriteCloser
	if len(credential) > 0 {
		stdin, err = cmd.StdinPipe()
		if err != nil {
			pr.Close()
			pw.Close()
			wipe(credential)
			r.fail(op, fmt.Sprintf("Error: %v", err))
			return
		}
	}

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		if stdin != nil {
			stdin.Close()
		}
		wipe(credential)
		// Spawn failures become a failed operation carrying the failure
		// text, never an error raised to the caller.
		r.fail(op, fmt.Sprintf("Error: %v", err))
		return
	}
	pw.Close()

	if stdin != nil {
		// One write, then close the channel; the secret lives no longer
		// than the write itself.
		_, _ = stdin.Write(credential)
		_, _ = io.WriteString(stdin, "\n")
		stdin.Close()
		wipe(credential)
	}

	op.markRunning(cmd.Process)

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := sanitize.Line(scanner.Text())
		if line == "" {
			continue
		}
		op.appendLine(line)
		if r.onProgress != nil {
			r.onProgress(op, line)
		}
	}
	pr.Close()

	err = cmd.Wait()

	if err == nil && op.Status() == StatusRunning {
		// The installed set must reflect post-operation truth before any
		// completion notification goes out.
		if r.refresh != nil {
			r.refresh(ctx)
		}
		op.settle(StatusSucceeded)
		return
	}

	op.settle(StatusFailed)
}

// fail settles an operation that never ran, recording the reason as its
// only output line.
func (r *Runner) fail(op *Operation, line string) {
	op.appendLine(line)
	if r.onProgress != nil {
		r.onProgress(op, line)
	}
	op.settle(StatusFailed)
}

// nameLock returns the serialization lock for a package name.
func (r *Runner) nameLock(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	return l
}

// wipe zeroes a credential buffer.
func wipe(credential []byte) {
	for i := range credential {
		credential[i] = 0
	}
}
