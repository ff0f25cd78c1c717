package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/fs"
	"go.trai.ch/ship/internal/adapters/scanner"
	"go.trai.ch/ship/internal/core/domain"
)

func TestMatchLine(t *testing.T) {
	names := []string{"data-core", "data_core"}

	tests := []struct {
		name    string
		line    string
		inBlock bool
		want    []int
	}{
		{name: "python import", line: "import data_core", want: []int{8}},
		{name: "python submodule", line: "import data_core.models as m", want: []int{8}},
		{name: "python import list", line: "import os, data_core", want: []int{12}},
		{name: "python from", line: "    from data_core.models import User", want: []int{10}},
		{name: "python unrelated", line: "from data_core_extra import x", want: nil},
		{name: "go block entry", line: "\t\"github.com/acme/data-core/pkg\"", inBlock: true, want: []int{3}},
		{name: "go aliased block entry", line: "\tdc \"github.com/acme/data-core\"", inBlock: true, want: []int{6}},
		{name: "go block unrelated", line: "\t\"fmt\"", inBlock: true, want: nil},
		{name: "go single import", line: `import "acme/data-core"`, want: []int{9}},
		{name: "js import", line: `import { load } from "@acme/data-core";`, want: []int{23}},
		{name: "js require", line: `const core = require('data-core')`, want: []int{23}},
		{name: "vendor prefix only", line: `import "data-core-utils/x"`, want: nil},
		{name: "plain assignment", line: `name = "data-core"`, want: nil},
		{name: "return literal", line: "\treturn \"data-core\"", want: nil},
		{name: "list entry", line: `    "data-core",`, want: nil},
		{name: "switch case", line: "\tcase \"data_core\":", want: nil},
		{name: "print literal", line: `    print "data-core"`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanner.MatchLine(tt.line, names, tt.inBlock))
		})
	}
}

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestScanner_FindImportsOf(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "web/app/views.py", "import os\nfrom core.models import User\n")
	writeSource(t, root, "web/app/__init__.py", "import core\n")
	writeSource(t, root, "web/README.md", "import core\n")
	writeSource(t, root, "web/node_modules/core/index.js", "require('core')\n")
	writeSource(t, root, "web/.ship/cache.py", "import core\n")

	importer := &domain.Package{Name: "web", Path: filepath.Join(root, "web")}
	target := &domain.Package{Name: "core", Path: filepath.Join(root, "core")}

	got, err := scanner.New(fs.NewWalker()).FindImportsOf(context.Background(), importer, target)
	require.NoError(t, err)
	assert.Equal(t, []domain.ImportLocation{
		{File: "app/__init__.py", Line: 1, Col: 8},
		{File: "app/views.py", Line: 2, Col: 6},
	}, got)
}

func TestScanner_FindImportsOf_None(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "web/main.go", "package main\n\nimport \"fmt\"\n")

	got, err := scanner.New(fs.NewWalker()).FindImportsOf(
		context.Background(),
		&domain.Package{Name: "web", Path: filepath.Join(root, "web")},
		&domain.Package{Name: "core"},
	)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanner_FindImportsOf_StringLiterals(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "web/app/naming.py", "KNOWN = [\n    \"core\",\n]\n")
	writeSource(t, root, "web/lookup.go", "package web\n\nimport (\n\t\"fmt\"\n)\n\nfunc name() string {\n\treturn \"core\"\n}\n")

	got, err := scanner.New(fs.NewWalker()).FindImportsOf(
		context.Background(),
		&domain.Package{Name: "web", Path: filepath.Join(root, "web")},
		&domain.Package{Name: "core"},
	)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanner_FindImportsOf_GoImportBlock(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "web/main.go", "package main\n\nimport (\n\t\"fmt\"\n\n\t\"acme/core\"\n)\n\nvar x = \"core\"\n")

	got, err := scanner.New(fs.NewWalker()).FindImportsOf(
		context.Background(),
		&domain.Package{Name: "web", Path: filepath.Join(root, "web")},
		&domain.Package{Name: "core"},
	)
	require.NoError(t, err)
	assert.Equal(t, []domain.ImportLocation{{File: "main.go", Line: 6, Col: 3}}, got)
}

func TestScanner_FindImportsOf_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "web/a.py", "import core\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanner.New(fs.NewWalker()).FindImportsOf(
		ctx,
		&domain.Package{Name: "web", Path: filepath.Join(root, "web")},
		&domain.Package{Name: "core"},
	)
	assert.ErrorIs(t, err, context.Canceled)
}
