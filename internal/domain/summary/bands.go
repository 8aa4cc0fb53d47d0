package summary

import (
	"math"

	"github.com/campuslens/campuslens/internal/domain/aggregate"
	"github.com/campuslens/campuslens/internal/domain/model"
)

// Grade band thresholds, inclusive lower bounds on marks. Monotonic by
// construction: a mark lands in the first band whose threshold it meets.
//
//	A+ >= 90, A >= 80, B >= 70, C >= 60, D >= 50, F otherwise
var gradeBands = []struct {
	Label string
	Min   float64
}{
	{"A+", 90},
	{"A", 80},
	{"B", 70},
	{"C", 60},
	{"D", 50},
	{"F", 0},
}

// cgpaBinLabels and cgpaBinUpper define the fixed CGPA buckets: below
// 7.0, then whole-point bands up to 9.0, then 9.0 and above. Edges are
// lower-inclusive, so exactly 7.0 lands in "7.0-8.0" and exactly 9.0
// in "9.0+".
var (
	cgpaBinLabels = []string{"<7.0", "7.0-8.0", "8.0-9.0", "9.0+"}
	cgpaBinUpper  = []float64{7.0, 8.0, 9.0, math.Inf(1)}
)

// marksBinLabels and marksBinUpper define the fixed marks buckets.
// Upper bounds are inclusive: a mark of 25 lands in "0-25".
var (
	marksBinLabels = []string{"0-25", "26-50", "51-75", "76-100"}
	marksBinUpper  = []float64{25, 50, 75, 100}
)

// gradeBand maps a mark to its band label.
func gradeBand(marks float64) string {
	for _, band := range gradeBands {
		if marks >= band.Min {
			return band.Label
		}
	}
	return gradeBands[len(gradeBands)-1].Label
}

// gradeDistribution counts usable marks per grade band. All bands appear
// in the output, zero-count bands included, so charts keep a stable axis.
func gradeDistribution(marks []model.Value) Binned {
	out := Binned{
		Labels: make([]string, len(gradeBands)),
		Data:   make([]int, len(gradeBands)),
	}
	index := make(map[string]int, len(gradeBands))
	for i, band := range gradeBands {
		out.Labels[i] = band.Label
		index[band.Label] = i
	}
	for _, m := range marks {
		if m.Usable() {
			out.Data[index[gradeBand(m.Num)]]++
		}
	}
	return out
}

// binByUpper counts usable values into fixed buckets delimited by
// inclusive upper bounds.
func binByUpper(vals []model.Value, labels []string, upper []float64) Binned {
	out := Binned{Labels: labels, Data: make([]int, len(labels))}
	for _, v := range vals {
		if !v.Usable() {
			continue
		}
		for i, hi := range upper {
			if v.Num <= hi {
				out.Data[i]++
				break
			}
		}
	}
	return out
}

// binHalfOpen counts usable values into fixed buckets delimited by
// exclusive upper bounds: bucket i covers [upper[i-1], upper[i]). The
// last bound is +Inf, so values at or above the final edge land there.
func binHalfOpen(vals []model.Value, labels []string, upper []float64) Binned {
	out := Binned{Labels: labels, Data: make([]int, len(labels))}
	for _, v := range vals {
		if !v.Usable() {
			continue
		}
		for i, hi := range upper {
			if v.Num < hi {
				out.Data[i]++
				break
			}
		}
	}
	return out
}

// ratingDistribution counts usable ratings per whole-star label 1..5,
// rounding half-stars to the nearest whole.
func ratingDistribution(ratings []model.Value) Binned {
	out := Binned{
		Labels: []string{"1", "2", "3", "4", "5"},
		Data:   make([]int, 5),
	}
	for _, r := range ratings {
		if !r.Usable() {
			continue
		}
		star := int(math.Round(r.Num))
		if star < 1 {
			star = 1
		}
		if star > 5 {
			star = 5
		}
		out.Data[star-1]++
	}
	return out
}

// roundMap rounds every value of a grouped result to chart precision.
func roundMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = aggregate.RoundTo2(v)
	}
	return out
}

// trendSeries converts ordered trend points into a chart-ready series.
func trendSeries(points []aggregate.TrendPoint) Series {
	s := Series{
		Labels: make([]string, len(points)),
		Data:   make([]float64, len(points)),
	}
	for i, p := range points {
		s.Labels[i] = p.Period
		s.Data[i] = aggregate.RoundTo2(p.Mean)
	}
	return s
}
