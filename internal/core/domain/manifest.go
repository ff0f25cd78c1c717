package domain

import "strings"

// Manifest is the decoded content of a package manifest, whatever its format.
type Manifest struct {
	// Path is the manifest file the content was read from.
	Path    string
	Name    string
	Version string
	// Dependencies holds the raw entries, possibly pinned ("name==1.0.0", "name@1.0.0").
	Dependencies []string
	// Publish is the argv uploading the package to its registry.
	Publish []string
	// Files maps package-relative paths to their declared content.
	Files map[string]string
}

// DependencyNames returns the dependency names with version pins stripped.
func (m *Manifest) DependencyNames() []string {
	names := make([]string, 0, len(m.Dependencies))
	for _, dep := range m.Dependencies {
		names = append(names, DependencyName(dep))
	}
	return names
}

// DependencyName strips version pins and extras from a dependency entry:
// "core==1.0.0", "core@1.0.0", "core>=1.0" and "core[extra]" all yield "core".
func DependencyName(entry string) string {
	entry = strings.TrimSpace(entry)
	if i := strings.IndexAny(entry, "=@<>!~;[ "); i >= 0 {
		entry = entry[:i]
	}
	return entry
}
