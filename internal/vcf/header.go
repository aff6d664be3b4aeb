package vcf

import (
	"sort"
	"strconv"
	"strings"

	"github.com/inodb/vcf2rdf/internal/info"
)

// InfoDef is an ##INFO header declaration.
type InfoDef struct {
	ID          string
	Number      info.Cardinality
	Type        info.Kind
	Description string
}

// Contig is a ##contig header declaration.
type Contig struct {
	ID     string
	Length int64
}

// Header holds the meta-information lines of a VCF file.
type Header struct {
	Lines   []string
	Info    map[string]InfoDef
	Filters map[string]string // ID -> description
	Contigs []Contig
	Samples []string
}

func newHeader() *Header {
	return &Header{
		Info:    make(map[string]InfoDef),
		Filters: make(map[string]string),
	}
}

// InfoKeys returns the declared INFO keys in declaration order.
func (h *Header) InfoKeys() []string {
	keys := make([]string, 0, len(h.Info))
	seen := make(map[string]bool, len(h.Info))
	for _, line := range h.Lines {
		if !strings.HasPrefix(line, "##INFO=<") {
			continue
		}
		id := parseStructured(line[len("##INFO="):])["ID"]
		if _, ok := h.Info[id]; ok && !seen[id] {
			seen[id] = true
			keys = append(keys, id)
		}
	}
	return keys
}

// ContigIDs returns the declared contig identifiers, sorted.
func (h *Header) ContigIDs() []string {
	ids := make([]string, len(h.Contigs))
	for i, c := range h.Contigs {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	return ids
}

// addMeta records one "##" line. Structured lines of known kinds are indexed.
func (h *Header) addMeta(line string) {
	h.Lines = append(h.Lines, line)

	key, value, ok := strings.Cut(strings.TrimPrefix(line, "##"), "=")
	if !ok || !strings.HasPrefix(value, "<") {
		return
	}
	attrs := parseStructured(value)

	switch key {
	case "INFO":
		id := attrs["ID"]
		if id == "" {
			return
		}
		h.Info[id] = InfoDef{
			ID:          id,
			Number:      info.ParseCardinality(attrs["Number"]),
			Type:        info.ParseKind(attrs["Type"]),
			Description: attrs["Description"],
		}
	case "FILTER":
		if id := attrs["ID"]; id != "" {
			h.Filters[id] = attrs["Description"]
		}
	case "contig":
		if id := attrs["ID"]; id != "" {
			length, _ := strconv.ParseInt(attrs["length"], 10, 64)
			h.Contigs = append(h.Contigs, Contig{ID: id, Length: length})
		}
	}
}

// parseStructured parses "<K=V,K="quoted, value",...>" into a map.
func parseStructured(s string) map[string]string {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
	attrs := make(map[string]string)

	for len(s) > 0 {
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			break
		}
		key := s[:eq]
		s = s[eq+1:]

		var value string
		if strings.HasPrefix(s, `"`) {
			var b strings.Builder
			i := 1
			for ; i < len(s); i++ {
				if s[i] == '\\' && i+1 < len(s) {
					i++
					b.WriteByte(s[i])
					continue
				}
				if s[i] == '"' {
					break
				}
				b.WriteByte(s[i])
			}
			value = b.String()
			s = s[min(i+1, len(s)):]
			s = strings.TrimPrefix(s, ",")
		} else {
			var rest string
			value, rest, _ = strings.Cut(s, ",")
			s = rest
		}
		attrs[key] = value
	}
	return attrs
}
