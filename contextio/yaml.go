package contextio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlContext is the on-disk document shape:
//
//	attributes: [a, b, c]   # optional, fixes the column order
//	objects:
//	  o1: [a, b]
//	  o2: [b, c]
type yamlContext struct {
	Attributes []string            `yaml:"attributes,omitempty"`
	Objects    map[string][]string `yaml:"objects"`
}

// ParseYAML decodes a YAML context document. When the document declares an
// attribute list, that order is kept and unknown attribute references fail;
// otherwise attributes are collected from the descriptions and sorted.
func ParseYAML(r io.Reader) (*Named, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read context document: %w", err)
	}
	var doc yamlContext
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if len(doc.Objects) == 0 {
		return nil, fmt.Errorf("%w: no objects declared", ErrEmptyInput)
	}
	if len(doc.Attributes) == 0 {
		return FromDict(doc.Objects)
	}

	seen := make(map[string]bool, len(doc.Attributes))
	for _, a := range doc.Attributes {
		if seen[a] {
			return nil, fmt.Errorf("%w: duplicate attribute %q", ErrBadFormat, a)
		}
		seen[a] = true
	}
	objects := sortedKeys(doc.Objects)
	return fromLabelled(doc.Objects, objects, doc.Attributes)
}

// LoadYAML reads a YAML context document from a file.
func LoadYAML(path string) (*Named, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open context document: %w", err)
	}
	defer f.Close()
	return ParseYAML(f)
}
