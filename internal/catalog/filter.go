package catalog

import "strings"

// Filter returns the catalog entries whose name contains query,
// case-insensitively. An empty query matches every entry; a nil or empty
// catalog yields an empty result regardless of query. Matching is purely
// lexical against the name field.
func Filter(pkgs []Package, query string) []Package {
	if len(pkgs) == 0 {
		return nil
	}
	if query == "" {
		return pkgs
	}

	q := strings.ToLower(query)
	var matched []Package
	for _, p := range pkgs {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
