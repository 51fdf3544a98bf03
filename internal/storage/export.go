package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes every recorded run to w as CSV with a header row.
func (s *Store) ExportCSV(w io.Writer) (int, error) {
	runs, err := s.AllRuns()
	if err != nil {
		return 0, err
	}
	if runs == nil {
		runs = []Run{}
	}
	if err := gocsv.Marshal(runs, w); err != nil {
		return 0, fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return len(runs), nil
}
