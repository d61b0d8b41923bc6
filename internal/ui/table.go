package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"pacstore/internal/catalog"
)

// PrintPackages prints catalog entries in a formatted table. The installed
// set marks entries already present on the system.
func PrintPackages(packages []catalog.Package, installed map[string]struct{}) {
	if len(packages) == 0 {
		MutedMsg("No packages found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, Bold("NAME")+"\t"+Bold("VERSION")+"\t"+Bold("TYPE")+"\t"+Bold("DESCRIPTION"))

	for _, pkg := range packages {
		name := PackageName.Sprint(pkg.Name)
		if _, ok := installed[pkg.Name]; ok {
			name = name + " " + Installed.Sprint("[installed]")
		}

		version := PackageVersion.Sprint(pkg.Version)
		ptype := PackageType.Sprint(pkg.Type)

		desc := pkg.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, version, ptype, desc)
	}

	w.Flush()
}

// PrintDetail prints the full detail record for a package.
func PrintDetail(name string, detail *catalog.Detail, installed bool) {
	if detail == nil {
		ErrorMsg("No package information available for %s", name)
		return
	}

	HeaderMsg("Package Information")

	printField("Name", name)
	if detail.PrettyName != "" {
		printField("Pretty Name", detail.PrettyName)
	}
	printField("Version", detail.Version)

	if installed {
		printField("Status", Green("installed"))
	} else {
		printField("Status", "not installed")
	}

	if detail.Description != "" {
		printField("Description", detail.Description)
	}

	if detail.Homepage != "" {
		printField("Homepage", detail.Homepage)
	}

	if len(detail.Licenses) > 0 {
		printField("License", strings.Join(detail.Licenses, ", "))
	}

	if len(detail.Maintainers) > 0 {
		printField("Maintainers", strings.Join(detail.Maintainers, ", "))
	}

	if len(detail.Architecture) > 0 {
		printField("Architectures", strings.Join(detail.Architecture, ", "))
	}

	if len(detail.RuntimeDeps) > 0 {
		printField("Depends", joinDeps(detail.RuntimeDeps))
	}

	if len(detail.BuildDeps) > 0 {
		printField("Build Depends", joinDeps(detail.BuildDeps))
	}

	if len(detail.OptionalDeps) > 0 {
		printField("Optional", joinDeps(detail.OptionalDeps))
	}

	if len(detail.Conflicts) > 0 {
		printField("Conflicts", joinDeps(detail.Conflicts))
	}

	if t := detail.LastUpdatedTime(); !t.IsZero() {
		printField("Last Updated", t.Format("2006-01-02 15:04:05"))
	}
}

// PrintInstalled prints the installed package names, sorted.
func PrintInstalled(names []string) {
	if len(names) == 0 {
		MutedMsg("No packages installed")
		return
	}

	HeaderMsg("Installed Packages (%d)", len(names))
	for _, name := range names {
		fmt.Printf("  %s %s\n", Installed.Sprint(SymbolSuccess), name)
	}
}

func joinDeps(deps []catalog.Dependency) string {
	parts := make([]string, 0, len(deps))
	for _, d := range deps {
		parts = append(parts, d.Value)
	}
	return strings.Join(parts, ", ")
}

// printField prints a single field with formatting.
func printField(label, value string) {
	fmt.Printf("  %s: %s\n", Cyan(label), value)
}
