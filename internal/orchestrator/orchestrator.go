// Package orchestrator owns the visible catalog and installed-state and
// exposes the command/event contract front ends build on.
package orchestrator

import (
	"context"
	"sync"

	"pacstore/internal/catalog"
	"pacstore/internal/history"
	"pacstore/internal/operation"
	"pacstore/internal/pacstall"
)

// Event is a typed notification emitted by the orchestrator. Front ends
// drain Events(); slow or absent consumers never block operations.
type Event interface{ event() }

// CatalogReady is emitted after a catalog refresh resolved. Packages is the
// newly visible catalog, already sorted by name.
type CatalogReady struct {
	Packages []catalog.Package
}

// InstalledChanged is emitted after the installed set was replaced.
type InstalledChanged struct {
	Count int
}

// OperationProgress carries one sanitized output line from a running
// operation.
type OperationProgress struct {
	ID      string
	Package string
	Line    string
}

// OperationDone is emitted once an operation settles. By the time it is
// observed, the installed set already reflects the operation's outcome.
type OperationDone struct {
	ID      string
	Package string
	Mode    operation.Mode
	Status  operation.Status
}

func (CatalogReady) event()      {}
func (InstalledChanged) event()  {}
func (OperationProgress) event() {}
func (OperationDone) event()     {}

// Orchestrator reconciles the remote catalog with local installed-state and
// runs package operations. All shared state lives here, behind handles; the
// catalog and installed set are replaced wholesale, never patched, so
// readers observe either the old or the new value.
type Orchestrator struct {
	client *catalog.Client
	mgr    *pacstall.Manager
	runner *operation.Runner
	store  *history.Store

	mu        sync.RWMutex
	catalog   []catalog.Package
	installed map[string]struct{}

	events chan Event
}

// New creates an orchestrator. store may be nil to disable history
// recording.
func New(client *catalog.Client, mgr *pacstall.Manager, store *history.Store) *Orchestrator {
	o := &Orchestrator{
		client:    client,
		mgr:       mgr,
		store:     store,
		installed: make(map[string]struct{}),
		events:    make(chan Event, 128),
	}

	o.runner = operation.NewRunner(mgr, o.refreshInstalled)
	o.runner.OnProgress(func(op *operation.Operation, line string) {
		o.emit(OperationProgress{ID: op.ID(), Package: op.Package(), Line: line})
	})
	o.runner.OnDone(func(op *operation.Operation) {
		o.record(op)
		o.emit(OperationDone{
			ID:      op.ID(),
			Package: op.Package(),
			Mode:    op.Mode(),
			Status:  op.Status(),
		})
	})

	return o
}

// Events returns the orchestrator's event stream.
func (o *Orchestrator) Events() <-chan Event {
	return o.events
}

// ManagerAvailable probes the local package manager.
func (o *Orchestrator) ManagerAvailable(ctx context.Context) bool {
	return o.mgr.IsAvailable(ctx)
}

// RefreshCatalog fetches the remote catalog and, once resolved, swaps it in
// as the visible one. The fetch degrades to an empty catalog on failure; a
// fetch in flight never mutates the currently visible catalog.
func (o *Orchestrator) RefreshCatalog(ctx context.Context) []catalog.Package {
	pkgs := o.client.FetchCatalog(ctx)
	catalog.SortByName(pkgs)

	o.mu.Lock()
	o.catalog = pkgs
	o.mu.Unlock()

	o.emit(CatalogReady{Packages: pkgs})
	return pkgs
}

// Catalog returns the currently visible catalog. The slice is replaced, not
// mutated, on refresh, so holding it across refreshes is safe.
func (o *Orchestrator) Catalog() []catalog.Package {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.catalog
}

// Filter returns the visible catalog entries matching the query.
func (o *Orchestrator) Filter(query string) []catalog.Package {
	return catalog.Filter(o.Catalog(), query)
}

// Detail fetches the detail record for a package, or nil if unavailable.
func (o *Orchestrator) Detail(ctx context.Context, name string) *catalog.Detail {
	return o.client.FetchDetail(ctx, name)
}

// RefreshInstalled re-enumerates installed packages and replaces the set.
func (o *Orchestrator) RefreshInstalled(ctx context.Context) {
	o.refreshInstalled(ctx)
}

func (o *Orchestrator) refreshInstalled(ctx context.Context) {
	installed := o.mgr.ListInstalled(ctx)

	o.mu.Lock()
	o.installed = installed
	o.mu.Unlock()

	o.emit(InstalledChanged{Count: len(installed)})
}

// Installed returns a snapshot of the installed package names.
func (o *Orchestrator) Installed() map[string]struct{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make(map[string]struct{}, len(o.installed))
	for name := range o.installed {
		out[name] = struct{}{}
	}
	return out
}

// IsInstalled reports whether a package name is in the installed set.
func (o *Orchestrator) IsInstalled(name string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.installed[name]
	return ok
}

// Submit starts an install/uninstall operation and returns its handle.
// After a Succeeded operation's done event, the installed set is already
// refreshed.
func (o *Orchestrator) Submit(ctx context.Context, name string, mode operation.Mode, credential []byte) *operation.Operation {
	return o.runner.Submit(ctx, name, mode, credential)
}

// Cancel requests interruption of a running operation; a no-op on terminal
// handles.
func (o *Orchestrator) Cancel(op *operation.Operation) {
	if op != nil {
		op.Cancel()
	}
}

// record persists a settled operation to history, best effort.
func (o *Orchestrator) record(op *operation.Operation) {
	if o.store == nil {
		return
	}

	lastLine := ""
	if lines := op.Lines(); len(lines) > 0 {
		lastLine = lines[len(lines)-1]
	}

	entry := history.NewEntry(string(op.Mode()), op.Package(), string(op.Status()), lastLine)
	_ = o.store.Record(entry) //nolint:errcheck
}

// emit delivers an event without ever blocking the emitter.
func (o *Orchestrator) emit(ev Event) {
	select {
	case o.events <- ev:
	default:
	}
}
