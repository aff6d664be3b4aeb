// Package vcf reads VCF records together with the header metadata needed to
// type their INFO values.
package vcf

// RecordReader yields records one at a time.
type RecordReader interface {
	// Next reads the next record.
	// Returns nil, nil when there are no more records.
	Next() (*Record, error)

	// Header returns the parsed file header.
	Header() *Header
}
