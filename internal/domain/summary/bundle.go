// Package summary assembles aggregator outputs into chart-ready bundles.
//
// A Bundle is the full set of computed summaries for one dataset kind.
// Errors follow the two-level model the dashboard branches on: a
// whole-bundle error (schema mismatch) is a single top-level "error" key;
// a per-summary failure replaces only that entry with an error marker and
// leaves the rest of the bundle intact.
package summary

import (
	"fmt"
	"sort"
)

// Bundle maps summary names to computed results or error markers, plus
// scalar KPI entries. It serializes directly to the shape the dashboard
// consumes.
type Bundle map[string]interface{}

// ErrorMarker is the per-summary failure value: {"error": reason}.
type ErrorMarker struct {
	Error string `json:"error"`
}

// Failed builds a whole-bundle error for datasets that did not normalize.
func Failed(reason string) Bundle {
	return Bundle{"error": reason}
}

// IsFailed reports whether the bundle is a whole-bundle error.
func (b Bundle) IsFailed() bool {
	_, failed := b["error"]
	return failed
}

// ErrorCount returns the number of per-summary error markers in the bundle.
func (b Bundle) ErrorCount() int {
	return len(b.FailedSummaries())
}

// FailedSummaries returns the names of entries holding error markers,
// sorted for stable logging and metric labels.
func (b Bundle) FailedSummaries() []string {
	var names []string
	for name, v := range b {
		if _, bad := v.(ErrorMarker); bad {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Binned is a fixed-bucket distribution in chart-ready parallel form.
type Binned struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Series is an ordered label/value sequence, used for trends.
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Pairs holds two row-aligned numeric sequences for scatter charts.
type Pairs struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// put computes one summary entry, converting any failure into an error
// marker for that entry alone. This is the single boundary where
// computation problems become structured values; nothing escapes it.
func (b Bundle) put(name string, fn func() (interface{}, error)) {
	defer func() {
		if r := recover(); r != nil {
			b[name] = ErrorMarker{Error: fmt.Sprintf("summary %s failed: %v", name, r)}
		}
	}()
	v, err := fn()
	if err != nil {
		b[name] = ErrorMarker{Error: err.Error()}
		return
	}
	b[name] = v
}
