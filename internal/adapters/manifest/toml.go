package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml"
	"go.trai.ch/ship/internal/core/domain"
)

const (
	tomlName         = "project.name"
	tomlVersion      = "project.version"
	tomlDependencies = "project.dependencies"
	tomlPublish      = "tool.ship.publish"
	tomlFiles        = "tool.ship.files"
)

// tomlFormat handles pyproject.toml. Dependencies are PEP 508 strings and
// pins use "name==version".
type tomlFormat struct{}

func (tomlFormat) decode(_ string, data []byte) (*domain.Manifest, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	m := &domain.Manifest{
		Name:    stringAt(tree, tomlName),
		Version: stringAt(tree, tomlVersion),
	}
	if m.Dependencies, err = stringsAt(tree, tomlDependencies); err != nil {
		return nil, err
	}
	if m.Publish, err = stringsAt(tree, tomlPublish); err != nil {
		return nil, err
	}
	if files, ok := tree.Get(tomlFiles).(*toml.Tree); ok {
		m.Files = make(map[string]string)
		for key, value := range files.ToMap() {
			m.Files[key] = fmt.Sprint(value)
		}
	}
	return m, nil
}

func (tomlFormat) setVersion(_ string, data []byte, version string) ([]byte, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	tree.Set(tomlVersion, version)
	return encodeTree(tree)
}

func (tomlFormat) setDependency(_ string, data []byte, dep, version string) ([]byte, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	entries, err := stringsAt(tree, tomlDependencies)
	if err != nil {
		return nil, err
	}

	pinned := pinnedEntries(entries, dep, dep+"=="+version)
	values := make([]interface{}, len(pinned))
	for i, entry := range pinned {
		values[i] = entry
	}
	tree.Set(tomlDependencies, values)
	return encodeTree(tree)
}

func stringAt(tree *toml.Tree, key string) string {
	s, _ := tree.Get(key).(string)
	return s
}

func stringsAt(tree *toml.Tree, key string) ([]string, error) {
	raw := tree.Get(key)
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func encodeTree(tree *toml.Tree) ([]byte, error) {
	s, err := tree.ToTomlString()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
