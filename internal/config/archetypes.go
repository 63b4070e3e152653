// Where: internal/config/archetypes.go
// What: User-defined archetype catalog (~/.mvnew/archetypes.yaml).
// Why: Let users register extra archetypes beyond the two built-in templates.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// ArchetypeSpec describes one catalog entry: the archetype coordinates plus
// optional extra properties. Property values are text/template strings
// rendered against the resolved project before invocation.
type ArchetypeSpec struct {
	GroupID    string            `yaml:"groupId"`
	ArtifactID string            `yaml:"artifactId"`
	Version    string            `yaml:"version,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// ArchetypeCatalog is the parsed archetypes.yaml file.
type ArchetypeCatalog struct {
	Version    int                      `yaml:"version"`
	Archetypes map[string]ArchetypeSpec `yaml:"archetypes"`
}

// TemplateContext carries the resolved project values available to property
// templates.
type TemplateContext struct {
	GroupID    string
	ArtifactID string
	Version    string
	Package    string
	Dir        string
}

// ArchetypeCatalogPath returns the path to the archetype catalog file.
func ArchetypeCatalogPath() (string, error) {
	dir, err := ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "archetypes.yaml"), nil
}

// LoadArchetypeCatalog reads, schema-validates, and parses a catalog file.
func LoadArchetypeCatalog(path string) (ArchetypeCatalog, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return ArchetypeCatalog{}, err
	}

	if err := validateCatalog(payload); err != nil {
		return ArchetypeCatalog{}, fmt.Errorf("invalid archetype catalog %s: %w", path, err)
	}

	var catalog ArchetypeCatalog
	if err := yaml.Unmarshal(payload, &catalog); err != nil {
		return ArchetypeCatalog{}, err
	}
	return catalog, nil
}

// Lookup returns the named archetype spec.
func (c ArchetypeCatalog) Lookup(name string) (ArchetypeSpec, bool) {
	spec, ok := c.Archetypes[name]
	return spec, ok
}

// RenderProperties evaluates the spec's property templates against the
// resolved project. Sprig functions are available inside the templates.
func RenderProperties(spec ArchetypeSpec, data TemplateContext) (map[string]string, error) {
	if len(spec.Properties) == 0 {
		return nil, nil
	}
	rendered := make(map[string]string, len(spec.Properties))
	for key, raw := range spec.Properties {
		tmpl, err := template.New(key).Funcs(sprig.FuncMap()).Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse property %q: %w", key, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render property %q: %w", key, err)
		}
		rendered[key] = buf.String()
	}
	return rendered, nil
}
