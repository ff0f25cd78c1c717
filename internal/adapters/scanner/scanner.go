// Package scanner finds cross-package imports in source trees.
package scanner

import (
	"bufio"
	"cmp"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/ship/internal/adapters/fs"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ignoredEntries are dependency and build directories that never hold the package's own code.
var ignoredEntries = []string{
	"node_modules", "vendor", "__pycache__", ".venv", "venv", ".tox", "dist", "build", "*.egg-info",
}

// sourceExtensions lists the files worth scanning.
var sourceExtensions = map[string]struct{}{
	".py": {}, ".pyi": {}, ".go": {}, ".js": {}, ".mjs": {}, ".cjs": {},
	".jsx": {}, ".ts": {}, ".tsx": {},
}

var (
	// import a, b.c as d
	importStmt = regexp.MustCompile(`^\s*import\s+([A-Za-z_][\w.]*(?:\s+as\s+\w+)?(?:\s*,\s*[A-Za-z_][\w.]*(?:\s+as\s+\w+)?)*)\s*(?:#.*)?$`)
	// from a.b import c
	fromStmt = regexp.MustCompile(`^\s*from\s+([A-Za-z_][\w.]*)\s+import\b`)
	// import "x", import x from "x", require("x")
	quoted = regexp.MustCompile("(?:\\bimport\\b[^\"'`]*|\\bfrom\\s*|\\brequire\\s*\\(\\s*)[\"'`]([^\"'`]+)[\"'`]")
	// Go import block delimiters and entries.
	blockOpen  = regexp.MustCompile(`^\s*import\s*\(\s*(?://.*)?$`)
	blockClose = regexp.MustCompile(`^\s*\)`)
	blockEntry = regexp.MustCompile("^\\s*(?:[\\w.]+\\s+)?[\"`]([^\"`]+)[\"`]")
)

// Scanner implements ports.SourceScanner over the local file system.
type Scanner struct {
	walker *fs.Walker
	limit  int
}

var _ ports.SourceScanner = (*Scanner)(nil)

// New creates a Scanner.
func New(walker *fs.Walker) *Scanner {
	return &Scanner{walker: walker, limit: runtime.NumCPU()}
}

// FindImportsOf returns every location in importer's tree that references
// target's namespace, sorted by file, line and column. File paths are
// relative to the importer directory.
func (s *Scanner) FindImportsOf(
	ctx context.Context, importer, target *domain.Package,
) ([]domain.ImportLocation, error) {
	names := namespaces(target.Name)

	var files []string
	for path := range s.walker.WalkFiles(importer.Path, ignoredEntries) {
		if _, ok := sourceExtensions[filepath.Ext(path)]; ok {
			files = append(files, path)
		}
	}

	results := make([][]domain.ImportLocation, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rel, err := filepath.Rel(importer.Path, path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
			}
			found, err := scanFile(path, filepath.ToSlash(rel), names)
			if err != nil {
				return err
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.With(err, "package", importer.Name)
	}

	var locations []domain.ImportLocation
	for _, found := range results {
		locations = append(locations, found...)
	}
	slices.SortFunc(locations, func(a, b domain.ImportLocation) int {
		return cmp.Or(cmp.Compare(a.File, b.File), cmp.Compare(a.Line, b.Line), cmp.Compare(a.Col, b.Col))
	})
	return locations, nil
}

func scanFile(path, rel string, names []string) ([]domain.ImportLocation, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the package tree
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open source file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var found []domain.ImportLocation
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	inBlock := false
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		switch {
		case !inBlock && blockOpen.MatchString(text):
			inBlock = true
			continue
		case inBlock && blockClose.MatchString(text):
			inBlock = false
			continue
		}
		for _, col := range matchLine(text, names, inBlock) {
			found = append(found, domain.ImportLocation{File: rel, Line: line, Col: col})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}
	return found, nil
}

// matchLine returns the 1-based columns where text imports one of names.
// inBlock tells that text sits inside a Go import block, where bare quoted
// paths are imports.
func matchLine(text string, names []string, inBlock bool) []int {
	if inBlock {
		if m := blockEntry.FindStringSubmatchIndex(text); m != nil && matchesPath(text[m[2]:m[3]], names) {
			return []int{m[2] + 1}
		}
		return nil
	}

	if m := fromStmt.FindStringSubmatchIndex(text); m != nil {
		if matchesModule(text[m[2]:m[3]], names) {
			return []int{m[2] + 1}
		}
		return nil
	}

	if m := importStmt.FindStringSubmatchIndex(text); m != nil {
		var cols []int
		offset := m[2]
		for _, part := range strings.Split(text[m[2]:m[3]], ",") {
			trimmed := strings.TrimLeft(part, " \t")
			module, _, _ := strings.Cut(trimmed, " ")
			if matchesModule(module, names) {
				cols = append(cols, offset+len(part)-len(trimmed)+1)
			}
			offset += len(part) + 1
		}
		return cols
	}

	var cols []int
	for _, m := range quoted.FindAllStringSubmatchIndex(text, -1) {
		if matchesPath(text[m[2]:m[3]], names) {
			cols = append(cols, m[2]+1)
		}
	}
	return cols
}

// matchesModule reports whether a dotted module path starts with one of names.
func matchesModule(module string, names []string) bool {
	head, _, _ := strings.Cut(module, ".")
	return slices.Contains(names, head)
}

// matchesPath reports whether a quoted import path is one of names, or holds
// one of them after a vendor or scope segment.
func matchesPath(path string, names []string) bool {
	segments := strings.Split(path, "/")
	if len(segments) == 1 {
		return slices.Contains(names, segments[0])
	}
	for _, seg := range segments[1:] {
		if slices.Contains(names, seg) {
			return true
		}
	}
	return false
}

// namespaces returns the names under which a package can be imported.
func namespaces(name string) []string {
	alt := strings.NewReplacer("-", "_", ".", "_").Replace(name)
	if alt == name {
		return []string{name}
	}
	return []string{name, alt}
}
