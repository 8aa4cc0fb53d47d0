// Package aggregate is a library of pure reducers over normalized records.
//
// Every function is total: empty or all-invalid input yields an empty or
// neutral result, never a panic. Results are deterministic for a given
// input; where first-seen order matters (tie-breaking in rankings, trend
// assembly) the functions iterate the input slices, never bare maps.
package aggregate

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/campuslens/campuslens/internal/domain/model"
)

// Ranked is one entry of a ranking: a key with its aggregated value and
// the number of observations behind it.
type Ranked struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// TrendPoint is one period of a time-ordered trend.
type TrendPoint struct {
	Period string  `json:"period"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}

// Distribution counts occurrences per distinct value. Absent (empty)
// values are excluded. Iteration order of the result is unspecified;
// callers that need a display order sort downstream.
func Distribution(values []string) map[string]int {
	counts := make(map[string]int)
	for _, v := range values {
		if v != "" {
			counts[v]++
		}
	}
	return counts
}

// GroupedMean computes the arithmetic mean of usable values per group.
// Groups with zero usable values are omitted, not reported as zero.
// Rows with an absent group key are excluded.
func GroupedMean(groups []string, vals []model.Value) map[string]float64 {
	keys, byGroup := groupUsable(groups, vals)
	means := make(map[string]float64, len(keys))
	for _, key := range keys {
		means[key] = mean(byGroup[key])
	}
	return means
}

// Mean computes the arithmetic mean over all usable values. The second
// return is false when no usable value exists.
func Mean(vals []model.Value) (float64, bool) {
	var sum float64
	var n int
	for _, v := range vals {
		if v.Usable() {
			sum += v.Num
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Rate computes count(true)/count(present) over boolean flags. Rows with
// an absent flag are excluded from the denominator. The second return is
// false when the denominator is zero.
func Rate(flags []model.Flag) (float64, bool) {
	var hits, n int
	for _, f := range flags {
		if !f.Present {
			continue
		}
		n++
		if f.Bool {
			hits++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(hits) / float64(n), true
}

// GroupedRate computes the boolean rate per group. Groups with zero
// present flags are omitted.
func GroupedRate(groups []string, flags []model.Flag) map[string]float64 {
	order, byGroup := groupFlags(groups, flags)
	rates := make(map[string]float64, len(order))
	for _, key := range order {
		fs := byGroup[key]
		var hits int
		for _, b := range fs {
			if b {
				hits++
			}
		}
		rates[key] = float64(hits) / float64(len(fs))
	}
	return rates
}

// TopNByCount ranks distinct values by occurrence count, descending.
// Ties keep first-seen order from the input (stable sort). At most n
// entries are returned; n <= 0 means all.
func TopNByCount(values []string, n int) []Ranked {
	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	ranked := make([]Ranked, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, Ranked{Key: key, Value: float64(counts[key]), Count: counts[key]})
	}
	return limitRanked(ranked, n)
}

// TopNByMean ranks groups by their mean of usable values, descending.
// Ties keep first-seen group order. Groups with no usable value are
// omitted. At most n entries are returned; n <= 0 means all.
func TopNByMean(groups []string, vals []model.Value, n int) []Ranked {
	keys, byGroup := groupUsable(groups, vals)
	ranked := make([]Ranked, 0, len(keys))
	for _, key := range keys {
		obs := byGroup[key]
		ranked = append(ranked, Ranked{Key: key, Value: mean(obs), Count: len(obs)})
	}
	return limitRanked(ranked, n)
}

// TopNTokens flattens a list-valued column and ranks tokens by frequency,
// descending, with first-seen tie order. At most n entries; n <= 0 means all.
func TopNTokens(lists [][]string, n int) []Ranked {
	flat := make([]string, 0, len(lists))
	for _, tokens := range lists {
		flat = append(flat, tokens...)
	}
	return TopNByCount(flat, n)
}

// TokenCounts flattens a list-valued column and counts occurrences per
// distinct token.
func TokenCounts(lists [][]string) map[string]int {
	counts := make(map[string]int)
	for _, tokens := range lists {
		for _, tok := range tokens {
			if tok != "" {
				counts[tok]++
			}
		}
	}
	return counts
}

// PairedSeries extracts two equal-length parallel sequences from rows
// where both values are usable. Pairing is row-wise: index i of both
// outputs originates from the same source row.
func PairedSeries(xs, ys []model.Value) (x, y []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		if xs[i].Usable() && ys[i].Usable() {
			x = append(x, xs[i].Num)
			y = append(y, ys[i].Num)
		}
	}
	return x, y
}

// Trend computes the grouped mean per period and orders periods with a
// numeric-if-parseable, else lexicographic comparator: "2021" < "2022"
// numerically, "Sem1" < "Sem2" lexicographically. Periods with no usable
// value are omitted. The caller decides whether the point count is
// sufficient to chart.
func Trend(periods []string, vals []model.Value) []TrendPoint {
	keys, byGroup := groupUsable(periods, vals)
	points := make([]TrendPoint, 0, len(keys))
	for _, key := range keys {
		obs := byGroup[key]
		points = append(points, TrendPoint{Period: key, Mean: mean(obs), Count: len(obs)})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return periodLess(points[i].Period, points[j].Period)
	})
	return points
}

// CrossTab counts co-occurrences of two categorical columns as a nested
// outer -> inner -> count mapping. Rows where either value is absent are
// excluded.
func CrossTab(outer, inner []string) map[string]map[string]int {
	n := len(outer)
	if len(inner) < n {
		n = len(inner)
	}
	tab := make(map[string]map[string]int)
	for i := 0; i < n; i++ {
		o, in := outer[i], inner[i]
		if o == "" || in == "" {
			continue
		}
		if tab[o] == nil {
			tab[o] = make(map[string]int)
		}
		tab[o][in]++
	}
	return tab
}

// RoundTo2 rounds to 2 decimal places, the precision served to charts.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// groupUsable partitions usable observations by group key, preserving
// first-seen key order. Absent keys and unusable values are dropped.
func groupUsable(groups []string, vals []model.Value) ([]string, map[string][]float64) {
	n := len(groups)
	if len(vals) < n {
		n = len(vals)
	}
	byGroup := make(map[string][]float64)
	var order []string
	for i := 0; i < n; i++ {
		key := groups[i]
		if key == "" || !vals[i].Usable() {
			continue
		}
		if _, seen := byGroup[key]; !seen {
			order = append(order, key)
		}
		byGroup[key] = append(byGroup[key], vals[i].Num)
	}
	return order, byGroup
}

// groupFlags partitions present flags by group key, preserving first-seen
// key order.
func groupFlags(groups []string, flags []model.Flag) ([]string, map[string][]bool) {
	n := len(groups)
	if len(flags) < n {
		n = len(flags)
	}
	byGroup := make(map[string][]bool)
	var order []string
	for i := 0; i < n; i++ {
		key := groups[i]
		if key == "" || !flags[i].Present {
			continue
		}
		if _, seen := byGroup[key]; !seen {
			order = append(order, key)
		}
		byGroup[key] = append(byGroup[key], flags[i].Bool)
	}
	return order, byGroup
}

func mean(obs []float64) float64 {
	var sum float64
	for _, v := range obs {
		sum += v
	}
	return sum / float64(len(obs))
}

// limitRanked stable-sorts descending by value and truncates to n.
func limitRanked(ranked []Ranked, n int) []Ranked {
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Value > ranked[j].Value })
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// periodLess compares two period labels: numerically when both parse as
// numbers, lexicographically otherwise.
func periodLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}
