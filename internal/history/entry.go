// Package history provides persistent operation history with BoltDB.
package history

import (
	"time"
)

// Entry records one finished install/uninstall operation.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"` // "install" or "uninstall"
	Package   string    `json:"package"`
	Status    string    `json:"status"` // terminal operation status
	LastLine  string    `json:"last_line,omitempty"`
}

// NewEntry creates a history entry for a finished operation.
func NewEntry(op, pkg, status, lastLine string) *Entry {
	return &Entry{
		ID:        generateID(),
		Timestamp: time.Now(),
		Operation: op,
		Package:   pkg,
		Status:    status,
		LastLine:  lastLine,
	}
}

// Succeeded reports whether the recorded operation completed successfully.
func (e *Entry) Succeeded() bool {
	return e.Status == "succeeded"
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}

// Summary returns a brief one-line description of the entry.
func (e *Entry) Summary() string {
	return e.FormatTime() + " " + e.Operation + " " + e.Package + " (" + e.Status + ")"
}

// generateID generates a unique ID for the entry.
func generateID() string {
	return time.Now().Format("20060102150405.000000")
}
