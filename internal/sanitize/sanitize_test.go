package sanitize

import (
	"reflect"
	"testing"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"color codes", "\x1b[32mOK\x1b[0m", "OK"},
		{"plain text", "installing foo", "installing foo"},
		{"leading whitespace", "   done  ", "done"},
		{"only control sequences", "\x1b[2K\x1b[0m", ""},
		{"empty", "", ""},
		{"cursor movement", "\x1b[1A\x1b[2Kfetching sources", "fetching sources"},
		{"mixed", "  \x1b[1;33mwarning:\x1b[0m deprecated  ", "warning: deprecated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.input); got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	raw := "\x1b[32mfirst\x1b[0m\n\x1b[2K\n  second  \n"
	want := []string{"first", "second"}

	if got := Lines(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestLinesAllControl(t *testing.T) {
	if got := Lines("\x1b[2K\n\x1b[0m\n"); got != nil {
		t.Errorf("Lines() = %v, want nil", got)
	}
}
