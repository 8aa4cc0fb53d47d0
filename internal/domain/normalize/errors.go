package normalize

import "errors"

// Sentinel kinds for normalization errors.
var (
	// ErrSchema indicates the raw input lacks required columns entirely.
	// It fails the whole dataset; callers surface it as a bundle-level error.
	ErrSchema = errors.New("dataset schema mismatch")
)
