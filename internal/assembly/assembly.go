// Package assembly provides built-in reference assemblies used to resolve
// chromosome names to sequence reference IRIs.
package assembly

import (
	"fmt"
	"sort"
	"strings"
)

// Sequence is one assembled molecule and its aliases.
type Sequence struct {
	Name      string
	GenBank   string
	RefSeq    string
	UCSCName  string
	Reference string
}

// Assembly is a named set of sequences. Tables are read-only.
type Assembly struct {
	Name      string
	GenBank   string
	RefSeq    string
	Sequences []Sequence
}

var registry = map[string]*Assembly{
	"grch37": GRCh37,
	"grch38": GRCh38,
	"grcm38": GRCm38,
	"grcm39": GRCm39,
}

// Names returns the names of the built-in assemblies.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, a := range registry {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the assembly with the given name, ignoring case.
func Lookup(name string) (*Assembly, error) {
	if a, ok := registry[strings.ToLower(name)]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("unknown assembly %q (supported: %s)", name, strings.Join(Names(), ", "))
}

// FindSequence returns the sequence whose name, GenBank accession, RefSeq
// accession or UCSC name equals name.
func (a *Assembly) FindSequence(name string) (Sequence, bool) {
	for _, s := range a.Sequences {
		if s.Name == name || s.GenBank == name || s.RefSeq == name || s.UCSCName == name {
			return s, true
		}
	}
	return Sequence{}, false
}
