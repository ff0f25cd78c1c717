package manifest

import (
	"bytes"
	"errors"

	"go.trai.ch/ship/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// yamlManifest is the ship.yaml schema.
type yamlManifest struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Dependencies []string          `yaml:"dependencies"`
	Publish      []string          `yaml:"publish"`
	Files        map[string]string `yaml:"files"`
}

// yamlFormat edits ship.yaml through yaml.Node so comments and key order survive.
type yamlFormat struct{}

func (yamlFormat) decode(_ string, data []byte) (*domain.Manifest, error) {
	var raw yamlManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
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

func (yamlFormat) setVersion(_ string, data []byte, version string) ([]byte, error) {
	doc, root, err := parseMapping(data)
	if err != nil {
		return nil, err
	}
	setScalar(root, "version", version)
	return encodeNode(doc)
}

func (yamlFormat) setDependency(_ string, data []byte, dep, version string) ([]byte, error) {
	doc, root, err := parseMapping(data)
	if err != nil {
		return nil, err
	}

	seq := lookup(root, "dependencies")
	if seq == nil || seq.Kind != yaml.SequenceNode {
		seq = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		setValue(root, "dependencies", seq)
	}

	entries := make([]string, 0, len(seq.Content))
	for _, item := range seq.Content {
		entries = append(entries, item.Value)
	}
	pinned := pinnedEntries(entries, dep, dep+"@"+version)

	content := make([]*yaml.Node, 0, len(pinned))
	for i, entry := range pinned {
		if i < len(seq.Content) && seq.Content[i].Value == entry {
			content = append(content, seq.Content[i])
			continue
		}
		content = append(content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry})
	}
	seq.Content = content
	return encodeNode(doc)
}

func parseMapping(data []byte) (*yaml.Node, *yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, nil, errors.New("manifest is not a mapping")
	}
	return &doc, doc.Content[0], nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func setValue(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

func setScalar(mapping *yaml.Node, key, value string) {
	if node := lookup(mapping, key); node != nil && node.Kind == yaml.ScalarNode {
		node.Value = value
		node.Tag = "!!str"
		return
	}
	setValue(mapping, key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
}

func encodeNode(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
