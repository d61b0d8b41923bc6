package pacstall

import (
	"context"
	"reflect"
	"testing"
)

func TestParseInstalled(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{"header plus entries", "HEADER\nfoo\nbar\n", []string{"foo", "bar"}},
		{"whitespace around names", "Installed packages:\n  foo  \n\tbar\n", []string{"foo", "bar"}},
		{"blank lines dropped", "HEADER\nfoo\n\n\nbar\n", []string{"foo", "bar"}},
		{"header only", "Nothing installed yet\n", nil},
		{"empty output", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make(map[string]struct{})
			for _, n := range tt.want {
				want[n] = struct{}{}
			}

			got := ParseInstalled(tt.output)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ParseInstalled(%q) = %v, want %v", tt.output, got, want)
			}
		})
	}
}

func TestIsAvailableMissingBinary(t *testing.T) {
	m := NewWithBinary("definitely-not-a-real-binary-xyz", "")
	if m.IsAvailable(context.Background()) {
		t.Error("IsAvailable() = true for missing binary")
	}
}

func TestIsAvailableFailingProbe(t *testing.T) {
	// "false" exists but exits non-zero on the version query.
	m := NewWithBinary("false", "")
	if m.IsAvailable(context.Background()) {
		t.Error("IsAvailable() = true for failing version probe")
	}
}

func TestListInstalledFailure(t *testing.T) {
	m := NewWithBinary("false", "")
	got := m.ListInstalled(context.Background())
	if len(got) != 0 {
		t.Errorf("ListInstalled() on failure = %v, want empty set", got)
	}
}

func TestOperationArgs(t *testing.T) {
	m := New()

	if got := m.InstallArgs("neofetch"); !reflect.DeepEqual(got, []string{"-I", "neofetch"}) {
		t.Errorf("InstallArgs() = %v", got)
	}
	if got := m.UninstallArgs("neofetch"); !reflect.DeepEqual(got, []string{"-R", "neofetch"}) {
		t.Errorf("UninstallArgs() = %v", got)
	}
}

func TestElevated(t *testing.T) {
	m := New()

	bin, args := m.Elevated(m.InstallArgs("neofetch"))
	if bin != "sudo" {
		t.Errorf("Elevated() bin = %q, want sudo", bin)
	}
	want := []string{"-S", "pacstall", "-I", "neofetch"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("Elevated() args = %v, want %v", args, want)
	}
}

func TestDefaults(t *testing.T) {
	m := NewWithBinary("", "")
	if m.Binary() != DefaultBinary || m.Sudo() != DefaultSudo {
		t.Errorf("NewWithBinary(\"\", \"\") = %q/%q, want defaults", m.Binary(), m.Sudo())
	}
}
