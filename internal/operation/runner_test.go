package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"pacstore/internal/pacstall"
)

// fakeBinary writes an executable shell script and returns its path.
func fakeBinary(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("writing fake binary: %v", err)
	}
	return path
}

func waitSettled(t *testing.T, op *Operation) Status {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := op.Wait(ctx)
	if !status.Terminal() {
		t.Fatalf("operation did not settle, status %s", status)
	}
	return status
}

func TestSubmitSuccess(t *testing.T) {
	dir := t.TempDir()
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", "exit 0"), "")

	var refreshed bool
	var refreshedAtDone bool

	r := NewRunner(mgr, func(ctx context.Context) { refreshed = true })
	r.OnDone(func(op *Operation) { refreshedAtDone = refreshed })

	op := r.Submit(context.Background(), "neofetch", ModeInstall, nil)
	if status := waitSettled(t, op); status != StatusSucceeded {
		t.Fatalf("status = %s, want succeeded", status)
	}

	if !refreshed {
		t.Error("installed-state refresh was not triggered on success")
	}
	if !refreshedAtDone {
		t.Error("refresh must complete before the done notification")
	}
}

func TestSubmitFailureLeavesStateUntouched(t *testing.T) {
	dir := t.TempDir()
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", "echo no such package; exit 3"), "")

	var refreshed bool
	r := NewRunner(mgr, func(ctx context.Context) { refreshed = true })

	op := r.Submit(context.Background(), "ghost", ModeInstall, nil)
	if status := waitSettled(t, op); status != StatusFailed {
		t.Fatalf("status = %s, want failed", status)
	}

	if refreshed {
		t.Error("failed operation must not refresh the installed set")
	}
	if lines := op.Lines(); len(lines) != 1 || lines[0] != "no such package" {
		t.Errorf("Lines() = %v", lines)
	}
}

func TestOutputSanitized(t *testing.T) {
	dir := t.TempDir()
	script := "printf '\\033[32mOK\\033[0m\\n'; printf '\\033[2K\\n'; echo done"
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", script), "")

	r := NewRunner(mgr, nil)
	op := r.Submit(context.Background(), "neofetch", ModeInstall, nil)
	waitSettled(t, op)

	want := []string{"OK", "done"}
	if got := op.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestStderrMergedIntoOutput(t *testing.T) {
	dir := t.TempDir()
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", "echo out; echo err 1>&2"), "")

	r := NewRunner(mgr, nil)
	op := r.Submit(context.Background(), "neofetch", ModeInstall, nil)
	waitSettled(t, op)

	joined := strings.Join(op.Lines(), "\n")
	if !strings.Contains(joined, "out") || !strings.Contains(joined, "err") {
		t.Errorf("Lines() = %v, want both streams", op.Lines())
	}
}

func TestSpawnFailure(t *testing.T) {
	mgr := pacstall.NewWithBinary("/nonexistent/binary/path", "")

	r := NewRunner(mgr, nil)
	op := r.Submit(context.Background(), "neofetch", ModeInstall, nil)

	if status := waitSettled(t, op); status != StatusFailed {
		t.Fatalf("status = %s, want failed", status)
	}
	lines := op.Lines()
	if len(lines) == 0 || !strings.Contains(lines[0], "Error:") {
		t.Errorf("Lines() = %v, want spawn failure description", lines)
	}
}

func TestCancelRunning(t *testing.T) {
	dir := t.TempDir()
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", "exec sleep 10"), "")

	r := NewRunner(mgr, nil)
	op := r.Submit(context.Background(), "neofetch", ModeInstall, nil)

	// Wait for the process to actually start.
	deadline := time.Now().Add(5 * time.Second)
	for op.Status() != StatusRunning {
		if time.Now().After(deadline) {
			t.Fatal("operation never reached running")
		}
		time.Sleep(5 * time.Millisecond)
	}

	op.Cancel()
	if op.Status() != StatusCancelled {
		t.Fatalf("status after Cancel() = %s, want cancelled", op.Status())
	}

	// The exit of the interrupted process must not overwrite the state.
	if status := waitSettled(t, op); status != StatusCancelled {
		t.Fatalf("status after exit = %s, want cancelled", status)
	}
}

func TestCancelTerminalIsNoOp(t *testing.T) {
	dir := t.TempDir()
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", "exit 0"), "")

	r := NewRunner(mgr, nil)
	op := r.Submit(context.Background(), "neofetch", ModeInstall, nil)
	waitSettled(t, op)

	op.Cancel()
	op.Cancel()

	if op.Status() != StatusSucceeded {
		t.Errorf("Cancel() on terminal operation changed status to %s", op.Status())
	}
}

func TestSameNameSerialized(t *testing.T) {
	dir := t.TempDir()
	log := filepath.Join(dir, "order.log")
	script := "echo start >> " + log + "; sleep 0.2; echo end >> " + log
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", script), "")

	r := NewRunner(mgr, nil)
	first := r.Submit(context.Background(), "neofetch", ModeInstall, nil)
	second := r.Submit(context.Background(), "neofetch", ModeUninstall, nil)

	waitSettled(t, first)
	waitSettled(t, second)

	data, err := os.ReadFile(log)
	if err != nil {
		t.Fatalf("reading order log: %v", err)
	}
	got := strings.Fields(string(data))
	want := []string{"start", "end", "start", "end"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("execution order = %v, want serialized %v", got, want)
	}
}

func TestDistinctNamesRunConcurrently(t *testing.T) {
	dir := t.TempDir()
	script := "exec sleep 0.3"
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", script), "")

	r := NewRunner(mgr, nil)

	startAt := time.Now()
	a := r.Submit(context.Background(), "pkg-a", ModeInstall, nil)
	b := r.Submit(context.Background(), "pkg-b", ModeInstall, nil)
	waitSettled(t, a)
	waitSettled(t, b)

	// Serial execution would need at least 0.6s.
	if elapsed := time.Since(startAt); elapsed > 500*time.Millisecond {
		t.Errorf("operations on distinct names took %v, expected overlap", elapsed)
	}
}

func TestCredentialPipedAndWiped(t *testing.T) {
	dir := t.TempDir()
	mgrPath := fakeBinary(t, dir, "mgr", "exit 0")
	sudoScript := `read -r pw
if [ "$pw" != "hunter2" ]; then
  echo bad password
  exit 1
fi
echo elevated
exit 0`
	sudoPath := fakeBinary(t, dir, "fakesudo", sudoScript)

	mgr := pacstall.NewWithBinary(mgrPath, sudoPath)
	r := NewRunner(mgr, nil)

	credential := []byte("hunter2")
	op := r.Submit(context.Background(), "neofetch", ModeInstall, credential)

	if status := waitSettled(t, op); status != StatusSucceeded {
		t.Fatalf("status = %s, want succeeded; lines: %v", status, op.Lines())
	}

	if !bytes.Equal(credential, make([]byte, len(credential))) {
		t.Error("credential buffer was not wiped after the stdin write")
	}
	for _, line := range op.Lines() {
		if strings.Contains(line, "hunter2") {
			t.Errorf("credential leaked into output: %q", line)
		}
	}
}

func TestHandleAccessors(t *testing.T) {
	dir := t.TempDir()
	mgr := pacstall.NewWithBinary(fakeBinary(t, dir, "mgr", "exit 0"), "")

	r := NewRunner(mgr, nil)
	op := r.Submit(context.Background(), "neofetch", ModeUninstall, nil)

	if op.Package() != "neofetch" || op.Mode() != ModeUninstall || op.ID() == "" {
		t.Errorf("handle = %s/%s/%s", op.ID(), op.Package(), op.Mode())
	}
	waitSettled(t, op)
}
