// Package sanitize strips terminal control sequences from subprocess output.
package sanitize

import (
	"regexp"
	"strings"
)

// Matches an escape character followed by the CSI parameter/intermediate/final
// byte structure, e.g. "\x1b[32m" or "\x1b[0K".
var ansiEscape = regexp.MustCompile(`\x1B[@-_][0-?]*[ -/]*[@-~]`)

// Line removes ANSI control sequences from a raw output line and trims
// surrounding whitespace. A line consisting solely of control sequences
// sanitizes to the empty string; callers should skip empty results.
func Line(s string) string {
	return strings.TrimSpace(ansiEscape.ReplaceAllString(s, ""))
}

// Lines sanitizes every line in raw output, dropping lines that end up empty.
func Lines(raw string) []string {
	var out []string
	for _, l := range strings.Split(raw, "\n") {
		if clean := Line(l); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
