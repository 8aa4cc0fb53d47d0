// Package source loads raw tabular datasets for the engine to normalize.
//
// Providers return loosely typed RawTables; all interpretation happens in
// the normalize package. A provider failure for one dataset is reported to
// the caller and never takes down the other datasets.
package source

import (
	"context"

	"github.com/campuslens/campuslens/internal/domain/normalize"
)

// Provider supplies the three raw datasets.
type Provider interface {
	// Exam returns the raw exam results table.
	Exam(ctx context.Context) (normalize.RawTable, error)
	// Placement returns the raw placement outcomes table.
	Placement(ctx context.Context) (normalize.RawTable, error)
	// Faculty returns the raw faculty reviews table.
	Faculty(ctx context.Context) (normalize.RawTable, error)
}
