package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	goduckdb "github.com/marcboeker/go-duckdb"
)

// AlleleRow is one alternate allele of a record. Class is the mutation class
// name, or empty when the allele could not be normalized.
type AlleleRow struct {
	Chrom string
	Pos   int64
	Ref   string
	Alt   string
	Class string
	Qual  float64 // NaN when missing
}

// WriteAlleles batch-inserts rows for source using the Appender API.
// Every row is stored, so repeated sites count once per occurrence.
func (s *Store) WriteAlleles(source string, rows []AlleleRow) error {
	if len(rows) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "alleles")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range rows {
		var qual driver.Value
		if !math.IsNaN(r.Qual) && !math.IsInf(r.Qual, 0) {
			qual = r.Qual
		}
		var class driver.Value
		if r.Class != "" {
			class = r.Class
		}
		if err := appender.AppendRow(source, r.Chrom, r.Pos, r.Ref, r.Alt, class, qual); err != nil {
			return fmt.Errorf("append allele: %w", err)
		}
	}

	return appender.Flush()
}

// ClearSource removes all rows of source.
func (s *Store) ClearSource(source string) error {
	if _, err := s.db.Exec("DELETE FROM alleles WHERE source = ?", source); err != nil {
		return fmt.Errorf("clear alleles: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sources WHERE path = ?", source); err != nil {
		return fmt.Errorf("clear source: %w", err)
	}
	return nil
}

// Count is a grouped row count.
type Count struct {
	Key   string
	Count int64
}

// ClassCounts returns allele counts per mutation class for source, ordered
// by class. Unclassified alleles are reported under "unclassified".
func (s *Store) ClassCounts(source string) ([]Count, error) {
	return s.counts(`SELECT COALESCE(class, 'unclassified') AS k, COUNT(*)
		FROM alleles WHERE source = ? GROUP BY k ORDER BY k`, source)
}

// ChromCounts returns allele counts per chromosome for source, ordered by
// chromosome name.
func (s *Store) ChromCounts(source string) ([]Count, error) {
	return s.counts(`SELECT chrom, COUNT(*)
		FROM alleles WHERE source = ? GROUP BY chrom ORDER BY chrom`, source)
}

func (s *Store) counts(query, source string) ([]Count, error) {
	rows, err := s.db.Query(query, source)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	var counts []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// QualStats returns the number, mean and sample standard deviation of the
// non-missing quality scores of source.
func (s *Store) QualStats(source string) (n int64, mean, stddev float64, err error) {
	var m, sd *float64
	err = s.db.QueryRow(`SELECT COUNT(qual), AVG(qual), STDDEV_SAMP(qual)
		FROM alleles WHERE source = ?`, source).Scan(&n, &m, &sd)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("query quality: %w", err)
	}
	if m != nil {
		mean = *m
	}
	if sd != nil {
		stddev = *sd
	}
	return n, mean, stddev, nil
}
