package source

import "errors"

// Sentinel kinds for data source errors.
var (
	ErrOpenDataset = errors.New("open dataset failed")
	ErrReadDataset = errors.New("read dataset failed")
	ErrEmptyTable  = errors.New("dataset has no header row")
)
