package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"
)

// FileFingerprint holds stat-based identity for a file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

func (fp FileFingerprint) modTime() string {
	return fp.ModTime.UTC().Format(time.RFC3339Nano)
}

// WriteSource records that fp has been loaded with the given record count.
func (s *Store) WriteSource(fp FileFingerprint, records int64) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO sources (path, size, mod_time, records)
		VALUES (?, ?, ?, ?)`, fp.Path, fp.Size, fp.modTime(), records)
	if err != nil {
		return fmt.Errorf("write source: %w", err)
	}
	return nil
}

// SourceValid reports whether the stored rows for fp.Path were loaded from a
// file with the same size and modification time, and returns its record count.
func (s *Store) SourceValid(fp FileFingerprint) (records int64, ok bool, err error) {
	var size int64
	var modTime string
	err = s.db.QueryRow(`SELECT size, mod_time, records FROM sources WHERE path = ?`, fp.Path).
		Scan(&size, &modTime, &records)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query source: %w", err)
	}
	if size != fp.Size || modTime != fp.modTime() {
		return 0, false, nil
	}
	return records, true, nil
}
