package convert

import (
	"fmt"
	"strings"

	"github.com/inodb/vcf2rdf/internal/alteration"
	"github.com/inodb/vcf2rdf/internal/config"
	"github.com/inodb/vcf2rdf/internal/rdf"
	"github.com/inodb/vcf2rdf/internal/vcf"
)

// Subject selects how statement subjects are named.
type Subject int

const (
	// SubjectNone always uses a blank node.
	SubjectNone Subject = iota
	// SubjectID uses the record identifier.
	SubjectID
	// SubjectLocation uses NAME-POS-REF-ALT with the raw allele pair.
	SubjectLocation
	// SubjectReference uses URI#POS-REF-ALT with the raw allele pair.
	SubjectReference
	// SubjectNormalizedLocation is SubjectLocation on the normalized alteration.
	SubjectNormalizedLocation
	// SubjectNormalizedReference is SubjectReference on the normalized alteration.
	SubjectNormalizedReference
)

var subjectNames = []string{"none", "id", "location", "reference", "normalized-location", "normalized-reference"}

// SubjectNames lists the accepted subject strategy names.
func SubjectNames() []string {
	return append([]string(nil), subjectNames...)
}

// ParseSubject parses a strategy name. The empty string selects SubjectNone.
func ParseSubject(s string) (Subject, error) {
	if s == "" {
		return SubjectNone, nil
	}
	for i, name := range subjectNames {
		if strings.EqualFold(s, name) {
			return Subject(i), nil
		}
	}
	return SubjectNone, fmt.Errorf("unknown subject %q (expected one of %s)", s, strings.Join(subjectNames, ", "))
}

func (s Subject) String() string {
	if s < 0 || int(s) >= len(subjectNames) {
		return fmt.Sprintf("Subject(%d)", int(s))
	}
	return subjectNames[s]
}

// subject returns the subject IRI, or "" for a blank node.
func (s Subject) subject(r *vcf.Record, pair alteration.AllelePair, norm alteration.Normalized, seq config.Sequence) rdf.IRI {
	switch s {
	case SubjectID:
		if r.HasID() {
			return rdf.IRI(r.ID)
		}
	case SubjectLocation:
		if seq.Name != "" {
			return rdf.IRI(fmt.Sprintf("%s-%d-%s-%s", seq.Name, pair.Position, pair.Reference, pair.Alternate))
		}
	case SubjectReference:
		if seq.Reference != "" {
			return rdf.IRI(fmt.Sprintf("%s#%d-%s-%s", seq.Reference, pair.Position, pair.Reference, pair.Alternate))
		}
	case SubjectNormalizedLocation:
		if seq.Name != "" {
			return rdf.IRI(fmt.Sprintf("%s-%d-%s-%s", seq.Name, norm.Position, norm.Reference, norm.Alternate))
		}
	case SubjectNormalizedReference:
		if seq.Reference != "" {
			return rdf.IRI(fmt.Sprintf("%s#%d-%s-%s", seq.Reference, norm.Position, norm.Reference, norm.Alternate))
		}
	}
	return ""
}
