package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/campuslens/campuslens/internal/domain/normalize"
)

// Default dataset file names inside the data directory.
const (
	examFileName      = "exam_data.csv"
	placementFileName = "placement_data.csv"
	facultyFileName   = "faculty_reviews.csv"
)

// CSVProvider reads the three datasets from CSV files in one directory.
type CSVProvider struct {
	dir string
}

// NewCSVProvider creates a provider rooted at dir.
func NewCSVProvider(dir string) *CSVProvider {
	return &CSVProvider{dir: dir}
}

// Exam reads the exam results CSV.
func (p *CSVProvider) Exam(_ context.Context) (normalize.RawTable, error) {
	return p.readFile(examFileName)
}

// Placement reads the placement outcomes CSV.
func (p *CSVProvider) Placement(_ context.Context) (normalize.RawTable, error) {
	return p.readFile(placementFileName)
}

// Faculty reads the faculty reviews CSV.
func (p *CSVProvider) Faculty(_ context.Context) (normalize.RawTable, error) {
	return p.readFile(facultyFileName)
}

func (p *CSVProvider) readFile(name string) (normalize.RawTable, error) {
	path := filepath.Join(p.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return normalize.RawTable{}, fmt.Errorf("%w: %s: %v", ErrOpenDataset, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	t, err := ReadTable(f)
	if err != nil {
		return normalize.RawTable{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// ReadTable parses CSV content into a RawTable. The first record is the
// header; rows may be ragged, the normalizer tolerates short rows.
func ReadTable(r io.Reader) (normalize.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return normalize.RawTable{}, ErrEmptyTable
	}
	if err != nil {
		return normalize.RawTable{}, fmt.Errorf("%w: header: %v", ErrReadDataset, err)
	}

	t := normalize.RawTable{Columns: header}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return normalize.RawTable{}, fmt.Errorf("%w: row %d: %v", ErrReadDataset, len(t.Rows)+2, err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
