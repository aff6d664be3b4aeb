package config

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/inodb/vcf2rdf/internal/assembly"
	"github.com/inodb/vcf2rdf/internal/vcf"
)

// Generate writes a commented configuration template for a VCF header.
// When asm is non-nil, contigs are resolved against it and their reference
// IRIs filled in; unresolved contigs are mapped to null.
func Generate(w io.Writer, h *vcf.Header, asm *assembly.Assembly) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	addEntry(doc, "base", null(), "Set base IRI if needed.")
	addEntry(doc, "namespaces", null(), "Additional namespaces.")

	keys := h.InfoKeys()
	sort.Strings(keys)
	info := &yaml.Node{Kind: yaml.SequenceNode}
	for _, k := range keys {
		info.Content = append(info.Content, scalar(k))
	}
	addEntry(doc, "info", info, "Remove unnecessary keys to convert.")

	refs := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range h.Contigs {
		refs.Content = append(refs.Content, scalar(c.ID), sequenceNode(c.ID, asm))
	}
	comment := "Reference sequence for each chromosome. Records on chromosomes without a reference are skipped."
	if asm != nil {
		comment = fmt.Sprintf("Reference sequences resolved against %s. %s", asm.Name, "Records on chromosomes mapped to null are skipped.")
	}
	addEntry(doc, "reference", refs, comment)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return enc.Close()
}

func sequenceNode(contig string, asm *assembly.Assembly) *yaml.Node {
	if asm == nil {
		return mapping("name", contig)
	}
	s, ok := asm.FindSequence(contig)
	if !ok {
		return null()
	}
	return mapping("name", s.Name, "reference", s.Reference)
}

func addEntry(doc *yaml.Node, key string, value *yaml.Node, comment string) {
	k := scalar(key)
	k.HeadComment = comment
	doc.Content = append(doc.Content, k, value)
}

func mapping(kv ...string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range kv {
		n.Content = append(n.Content, scalar(s))
	}
	return n
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
