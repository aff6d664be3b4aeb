// Package config loads the YAML conversion configuration: base IRI, extra
// namespaces, the INFO keys to convert and the chromosome to reference
// sequence table.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/inodb/vcf2rdf/internal/rdf"
)

// Sequence maps a chromosome to its display name and reference sequence IRI.
type Sequence struct {
	Name      string `yaml:"name,omitempty"`
	Reference string `yaml:"reference,omitempty"`
}

// Config is a conversion configuration.
type Config struct {
	Base       string               `yaml:"base,omitempty"`
	Namespaces map[string]string    `yaml:"namespaces,omitempty"`
	Info       []string             `yaml:"info"`
	Reference  map[string]*Sequence `yaml:"reference"`
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Namespace returns the default prefix table overlaid with the configured
// base and namespaces.
func (c *Config) Namespace() *rdf.Namespace {
	ns := rdf.DefaultNamespace()
	ns.Base = c.Base
	ns.Merge(c.Namespaces)
	return ns
}

// Sequence returns the sequence configured for chrom. ok is false when the
// chromosome is unknown or mapped to null.
func (c *Config) Sequence(chrom string) (Sequence, bool) {
	s := c.Reference[chrom]
	if s == nil {
		return Sequence{}, false
	}
	return *s, true
}

// MissingReferences returns the chromosomes, sorted, whose records cannot be
// located because no reference IRI is configured.
func (c *Config) MissingReferences() []string {
	var missing []string
	for chrom, s := range c.Reference {
		if s == nil || s.Reference == "" {
			missing = append(missing, chrom)
		}
	}
	sort.Strings(missing)
	return missing
}

// InfoKeys returns the configured INFO keys, or declared when none are
// configured. An explicit empty list selects no keys.
func (c *Config) InfoKeys(declared []string) []string {
	if c.Info != nil {
		return c.Info
	}
	keys := append([]string(nil), declared...)
	sort.Strings(keys)
	return keys
}
