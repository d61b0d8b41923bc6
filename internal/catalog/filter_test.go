package catalog

import (
	"reflect"
	"testing"
)

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	pkgs := []Package{
		{Name: "neofetch"},
		{Name: "brave-browser"},
		{Name: "zoom"},
	}

	got := Filter(pkgs, "")
	if !reflect.DeepEqual(got, pkgs) {
		t.Errorf("Filter(pkgs, \"\") = %v, want original catalog", got)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	pkgs := []Package{{Name: "Brave-Browser"}}

	got := Filter(pkgs, "BRAVE")
	if len(got) != 1 || got[0].Name != "Brave-Browser" {
		t.Errorf("Filter() = %v, want single Brave-Browser entry", got)
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	if got := Filter(nil, "anything"); got != nil {
		t.Errorf("Filter(nil, q) = %v, want nil", got)
	}
	if got := Filter([]Package{}, ""); got != nil {
		t.Errorf("Filter(empty, \"\") = %v, want nil", got)
	}
}

func TestFilterMatchesNameOnly(t *testing.T) {
	pkgs := []Package{
		{Name: "htop", Description: "interactive process viewer"},
		{Name: "process-explorer"},
	}

	got := Filter(pkgs, "process")
	if len(got) != 1 || got[0].Name != "process-explorer" {
		t.Errorf("Filter() matched descriptions: %v", got)
	}
}

func TestFilterSubstring(t *testing.T) {
	pkgs := []Package{
		{Name: "neovim"},
		{Name: "vim-deb"},
		{Name: "emacs"},
	}

	got := Filter(pkgs, "vim")
	if len(got) != 2 {
		t.Fatalf("Filter() returned %d entries, want 2", len(got))
	}
	if got[0].Name != "neovim" || got[1].Name != "vim-deb" {
		t.Errorf("Filter() = %v, want [neovim vim-deb]", got)
	}
}
