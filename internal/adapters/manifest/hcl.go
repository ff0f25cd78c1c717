package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/ship/internal/core/domain"
)

// hclManifest is the ship.hcl schema.
type hclManifest struct {
	Name         string            `hcl:"name"`
	Version      string            `hcl:"version"`
	Dependencies []string          `hcl:"dependencies,optional"`
	Publish      []string          `hcl:"publish,optional"`
	Files        map[string]string `hcl:"files,optional"`
	Remain       hcl.Body          `hcl:",remain"`
}

// hclFormat edits ship.hcl with hclwrite, keeping comments and layout of
// untouched attributes.
type hclFormat struct{}

func (hclFormat) decode(path string, data []byte) (*domain.Manifest, error) {
	var raw hclManifest
	if err := hclsimple.Decode(path, data, nil, &raw); err != nil {
		return nil, err
	}
	return &domain.Manifest{
		Name:         raw.Name,
		Version:      raw.Version,
		Dependencies: raw.Dependencies,
		Publish:      raw.Publish,
		Files:        raw.Files,
	}, nil
}

func (hclFormat) setVersion(path string, data []byte, version string) ([]byte, error) {
	f, diags := hclwrite.ParseConfig(data, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}
	f.Body().SetAttributeValue("version", cty.StringVal(version))
	return f.Bytes(), nil
}

func (h hclFormat) setDependency(path string, data []byte, dep, version string) ([]byte, error) {
	current, err := h.decode(path, data)
	if err != nil {
		return nil, err
	}

	f, diags := hclwrite.ParseConfig(data, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	pinned := pinnedEntries(current.Dependencies, dep, dep+"@"+version)
	values := make([]cty.Value, len(pinned))
	for i, entry := range pinned {
		values[i] = cty.StringVal(entry)
	}
	f.Body().SetAttributeValue("dependencies", cty.ListVal(values))
	return f.Bytes(), nil
}
