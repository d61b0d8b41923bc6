package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/repology" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"brave-browser","visibleName":"Brave","version":"1.64.0","maintainer":[{"name":"alice"}]},
			{"name":"neofetch","description":"system info tool"}
		]`))
	}))
	defer srv.Close()

	c := NewClientWithOptions(srv.URL, time.Second)
	pkgs := c.FetchCatalog(context.Background())

	if len(pkgs) != 2 {
		t.Fatalf("FetchCatalog() returned %d packages, want 2", len(pkgs))
	}
	if pkgs[0].Name != "brave-browser" || pkgs[0].DisplayName() != "Brave" {
		t.Errorf("first package = %+v", pkgs[0])
	}
	if pkgs[0].PrimaryMaintainer() != "alice" {
		t.Errorf("PrimaryMaintainer() = %q, want alice", pkgs[0].PrimaryMaintainer())
	}
	if pkgs[1].DisplayName() != "neofetch" {
		t.Errorf("DisplayName() fallback = %q, want neofetch", pkgs[1].DisplayName())
	}
}

func TestFetchCatalogNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var diagnosed bool
	c := NewClientWithOptions(srv.URL, time.Second)
	c.SetDiagnostics(func(format string, args ...interface{}) { diagnosed = true })

	if pkgs := c.FetchCatalog(context.Background()); pkgs != nil {
		t.Errorf("FetchCatalog() on 500 = %v, want nil", pkgs)
	}
	if !diagnosed {
		t.Error("expected diagnostic callback on non-200 response")
	}
}

func TestFetchCatalogMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	c := NewClientWithOptions(srv.URL, time.Second)
	if pkgs := c.FetchCatalog(context.Background()); pkgs != nil {
		t.Errorf("FetchCatalog() on malformed body = %v, want nil", pkgs)
	}
}

func TestFetchCatalogServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on.

	c := NewClientWithOptions(srv.URL, time.Second)
	if pkgs := c.FetchCatalog(context.Background()); pkgs != nil {
		t.Errorf("FetchCatalog() against dead server = %v, want nil", pkgs)
	}
}

func TestFetchDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/packages/brave-browser" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"prettyName": "Brave",
			"version": "1.64.0",
			"homepage": "https://brave.com",
			"maintainers": ["alice", "bob"],
			"architectures": ["amd64", "arm64"],
			"license": ["MPL-2.0"],
			"runtimeDependencies": [{"value": "libgtk-3-0", "arch": "amd64"}],
			"conflicts": [{"value": "brave-bin"}],
			"source": [{"value": "https://example.com/brave.tar.gz"}],
			"lastUpdatedAt": "2024-03-01T12:30:00Z"
		}`))
	}))
	defer srv.Close()

	c := NewClientWithOptions(srv.URL, time.Second)
	d := c.FetchDetail(context.Background(), "brave-browser")
	if d == nil {
		t.Fatal("FetchDetail() returned nil")
	}

	if d.PrettyName != "Brave" || d.Version != "1.64.0" {
		t.Errorf("detail = %+v", d)
	}
	if len(d.RuntimeDeps) != 1 || d.RuntimeDeps[0].Value != "libgtk-3-0" {
		t.Errorf("runtime deps = %v", d.RuntimeDeps)
	}
	if len(d.Conflicts) != 1 || d.Conflicts[0].Value != "brave-bin" {
		t.Errorf("conflicts = %v", d.Conflicts)
	}

	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := d.LastUpdatedTime(); !got.Equal(want) {
		t.Errorf("LastUpdatedTime() = %v, want %v", got, want)
	}
}

func TestFetchDetailNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClientWithOptions(srv.URL, time.Second)
	if d := c.FetchDetail(context.Background(), "no-such-package"); d != nil {
		t.Errorf("FetchDetail() on 404 = %+v, want nil", d)
	}
}

func TestLastUpdatedTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{"trailing Z", "2024-03-01T12:30:00Z", false},
		{"explicit offset", "2024-03-01T12:30:00+00:00", false},
		{"fractional seconds", "2024-03-01T12:30:00.123456Z", false},
		{"empty", "", true},
		{"garbage", "yesterday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Detail{LastUpdated: tt.input}
			got := d.LastUpdatedTime()
			if got.IsZero() != tt.zero {
				t.Errorf("LastUpdatedTime(%q) = %v, wanted zero=%v", tt.input, got, tt.zero)
			}
		})
	}
}

func TestSortByName(t *testing.T) {
	pkgs := []Package{
		{Name: "zoom"},
		{Name: "Brave-Browser"},
		{Name: "android-studio"},
		{Name: "brlaser"},
	}

	SortByName(pkgs)

	want := []string{"android-studio", "Brave-Browser", "brlaser", "zoom"}
	for i, name := range want {
		if pkgs[i].Name != name {
			t.Fatalf("SortByName() order = %v, want %v at index %d", pkgs[i].Name, name, i)
		}
	}
}
