// Package catalog provides access to the remote Pacstall package catalog.
package catalog

import (
	"sort"
	"strings"
	"time"
)

// Maintainer is one maintainer entry on a catalog record.
type Maintainer struct {
	Name string `json:"name"`
}

// Package is a single catalog entry. The catalog is immutable once fetched;
// refreshes replace the whole slice rather than patching entries.
type Package struct {
	Name        string       `json:"name"`
	VisibleName string       `json:"visibleName,omitempty"`
	Description string       `json:"description,omitempty"`
	Version     string       `json:"version,omitempty"`
	Type        string       `json:"type,omitempty"`
	Maintainers []Maintainer `json:"maintainer,omitempty"`
	DetailsURL  string       `json:"packageDetailsUrl,omitempty"`
}

// DisplayName returns the visible alias if set, otherwise the package name.
func (p Package) DisplayName() string {
	if p.VisibleName != "" {
		return p.VisibleName
	}
	return p.Name
}

// PrimaryMaintainer returns the first maintainer's name, or "" if none.
func (p Package) PrimaryMaintainer() string {
	if len(p.Maintainers) == 0 {
		return ""
	}
	return p.Maintainers[0].Name
}

// Dependency is one entry in a detail record's dependency lists.
type Dependency struct {
	Value string `json:"value"`
	Arch  string `json:"arch,omitempty"`
}

// Source is one upstream source entry on a detail record.
type Source struct {
	Value string `json:"value"`
	Arch  string `json:"arch,omitempty"`
}

// Detail is the per-package detail record, fetched lazily and never cached
// across sessions.
type Detail struct {
	PrettyName   string       `json:"prettyName"`
	Version      string       `json:"version"`
	Homepage     string       `json:"homepage,omitempty"`
	Description  string       `json:"description,omitempty"`
	Maintainers  []string     `json:"maintainers,omitempty"`
	Architecture []string     `json:"architectures,omitempty"`
	Licenses     []string     `json:"license,omitempty"`
	RuntimeDeps  []Dependency `json:"runtimeDependencies,omitempty"`
	OptionalDeps []Dependency `json:"optionalDependencies,omitempty"`
	BuildDeps    []Dependency `json:"buildDependencies,omitempty"`
	Conflicts    []Dependency `json:"conflicts,omitempty"`
	Sources      []Source     `json:"source,omitempty"`
	LastUpdated  string       `json:"lastUpdatedAt,omitempty"`
}

// LastUpdatedTime parses the record's lastUpdatedAt timestamp. A trailing
// "Z" is accepted and normalized to UTC. Returns the zero time if the field
// is absent or malformed.
func (d *Detail) LastUpdatedTime() time.Time {
	if d.LastUpdated == "" {
		return time.Time{}
	}
	raw := strings.Replace(d.LastUpdated, "Z", "+00:00", 1)
	t, err := time.Parse("2006-01-02T15:04:05-07:00", raw)
	if err != nil {
		// Some records carry fractional seconds.
		t, err = time.Parse("2006-01-02T15:04:05.999999999-07:00", raw)
		if err != nil {
			return time.Time{}
		}
	}
	return t.UTC()
}

// SortByName sorts a catalog in place by name, case-insensitively. Callers
// sort once after each fetch; the fetcher itself returns unsorted data.
func SortByName(pkgs []Package) {
	sort.SliceStable(pkgs, func(i, j int) bool {
		return strings.ToLower(pkgs[i].Name) < strings.ToLower(pkgs[j].Name)
	})
}
