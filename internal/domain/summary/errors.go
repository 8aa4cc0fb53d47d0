package summary

import "errors"

// Sentinel kinds for summary computation failures. These surface as
// per-entry error markers, never as returned errors.
var (
	ErrNoValidRows       = errors.New("no valid rows")
	ErrColumnMissing     = errors.New("column missing from dataset")
	ErrInsufficientTrend = errors.New("fewer than 2 distinct periods")
)
