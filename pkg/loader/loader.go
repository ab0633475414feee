// Package loader decodes prompt definitions from YAML or JSON documents:
// titles, lead content, field descriptors, and declarative validation
// rules compiled into the closures the prompt service evaluates.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dialog/pkg/field"
)

// RuleSpec is the declarative form of a validation rule. Kind selects the
// built-in validator; Value carries its parameter (a length, a bound, a
// regular expression).
type RuleSpec struct {
	Field   string `json:"field" yaml:"field"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Kind    string `json:"kind" yaml:"kind"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Definition is a complete prompt declaration ready to hand to the prompt
// service once its rules are compiled.
type Definition struct {
	Title  string             `json:"title,omitempty" yaml:"title,omitempty"`
	Lead   string             `json:"lead,omitempty" yaml:"lead,omitempty"`
	Fields []field.Descriptor `json:"fields" yaml:"fields"`
	Rules  []RuleSpec         `json:"rules,omitempty" yaml:"rules,omitempty"`
}

var errEmptyDocument = errors.New("loader: document is empty")

// Parse decodes a definition from raw YAML or JSON. YAML handles both, so
// a single decoder covers the two formats.
func Parse(raw []byte) (Definition, error) {
	if len(raw) == 0 {
		return Definition{}, errEmptyDocument
	}

	var def Definition
	if looksLikeJSON(raw) {
		if err := json.Unmarshal(raw, &def); err != nil {
			return Definition{}, fmt.Errorf("loader: decode json: %w", err)
		}
		return def, nil
	}
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return Definition{}, fmt.Errorf("loader: decode yaml: %w", err)
	}
	return def, nil
}

// ParseReader decodes a definition from a stream.
func ParseReader(r io.Reader) (Definition, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Definition{}, fmt.Errorf("loader: read document: %w", err)
	}
	return Parse(raw)
}

// LoadFile decodes a definition from a file on disk.
func LoadFile(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("loader: read %q: %w", path, err)
	}
	return Parse(raw)
}

// LoadFS decodes a definition from an fs.FS, so definitions can ship
// embedded next to the code that uses them.
func LoadFS(files fs.FS, path string) (Definition, error) {
	raw, err := fs.ReadFile(files, path)
	if err != nil {
		return Definition{}, fmt.Errorf("loader: read %q: %w", path, err)
	}
	return Parse(raw)
}

func looksLikeJSON(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}
