package aggregate_test

import (
	"reflect"
	"testing"

	"github.com/campuslens/campuslens/internal/domain/aggregate"
	"github.com/campuslens/campuslens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func usable(n float64) model.Value  { return model.Value{Num: n, Present: true, Valid: true} }
func invalid(n float64) model.Value { return model.Value{Num: n, Present: true} }

func TestDistribution(t *testing.T) {
	Convey("Given categorical values with absences", t, func() {
		values := []string{"CSE", "ECE", "CSE", "", "CSE", "ECE"}

		Convey("When counting the distribution", func() {
			counts := aggregate.Distribution(values)

			Convey("Then absent values are excluded and the rest counted", func() {
				So(counts, ShouldResemble, map[string]int{"CSE": 3, "ECE": 2})
			})
		})

		Convey("When the input is empty", func() {
			Convey("Then the result is an empty mapping, not nil panic", func() {
				So(aggregate.Distribution(nil), ShouldResemble, map[string]int{})
			})
		})

		Convey("When casing differs", func() {
			counts := aggregate.Distribution([]string{"cse", "CSE"})

			Convey("Then distinct-casing variants stay distinct categories", func() {
				So(counts, ShouldResemble, map[string]int{"cse": 1, "CSE": 1})
			})
		})
	})
}

func TestGroupedMean(t *testing.T) {
	Convey("Given groups with mixed validity", t, func() {
		groups := []string{"CSE", "CSE", "ECE", "ME", "ME"}
		vals := []model.Value{usable(80), usable(60), invalid(200), {}, usable(90)}

		Convey("When computing the grouped mean", func() {
			means := aggregate.GroupedMean(groups, vals)

			Convey("Then groups with zero usable values are omitted entirely", func() {
				So(means, ShouldResemble, map[string]float64{"CSE": 70, "ME": 90})
				_, hasECE := means["ECE"]
				So(hasECE, ShouldBeFalse)
			})
		})

		Convey("When rows have an absent group key", func() {
			means := aggregate.GroupedMean([]string{"", "CSE"}, []model.Value{usable(10), usable(20)})

			Convey("Then those rows are excluded", func() {
				So(means, ShouldResemble, map[string]float64{"CSE": 20})
			})
		})
	})
}

func TestMeanAndRate(t *testing.T) {
	Convey("Given numeric values", t, func() {
		Convey("When no value is usable", func() {
			_, ok := aggregate.Mean([]model.Value{{}, invalid(500)})

			Convey("Then the mean reports absence instead of zero", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When some values are usable", func() {
			m, ok := aggregate.Mean([]model.Value{usable(10), {}, usable(20)})

			So(ok, ShouldBeTrue)
			So(m, ShouldEqual, 15)
		})
	})

	Convey("Given boolean flags", t, func() {
		flags := []model.Flag{
			{Bool: true, Present: true},
			{Bool: true, Present: true},
			{Bool: false, Present: true},
			{}, // absent, excluded from denominator
		}

		Convey("When computing the rate", func() {
			r, ok := aggregate.Rate(flags)

			Convey("Then absent flags are excluded from the denominator", func() {
				So(ok, ShouldBeTrue)
				So(r, ShouldAlmostEqual, 2.0/3.0, 1e-9)
				So(r, ShouldBeBetweenOrEqual, 0, 1)
			})
		})

		Convey("When all flags are absent", func() {
			_, ok := aggregate.Rate([]model.Flag{{}, {}})
			So(ok, ShouldBeFalse)
		})
	})
}

func TestGroupedRate(t *testing.T) {
	Convey("Given flags partitioned by department", t, func() {
		groups := []string{"CSE", "CSE", "ECE", "ME"}
		flags := []model.Flag{
			{Bool: true, Present: true},
			{Bool: false, Present: true},
			{Bool: true, Present: true},
			{}, // ME has no present flag
		}

		Convey("When computing grouped rates", func() {
			rates := aggregate.GroupedRate(groups, flags)

			Convey("Then groups without present flags are omitted", func() {
				So(rates, ShouldResemble, map[string]float64{"CSE": 0.5, "ECE": 1})
			})
		})
	})
}

func TestTopN(t *testing.T) {
	Convey("Given values to rank by count", t, func() {
		values := []string{"Go", "SQL", "Go", "Java", "SQL", "Go", "React"}

		Convey("When ranking the top 2", func() {
			ranked := aggregate.TopNByCount(values, 2)

			Convey("Then at most N entries come back, sorted descending", func() {
				So(ranked, ShouldHaveLength, 2)
				So(ranked[0].Key, ShouldEqual, "Go")
				So(ranked[0].Count, ShouldEqual, 3)
				So(ranked[1].Key, ShouldEqual, "SQL")
			})
		})

		Convey("When counts tie", func() {
			ranked := aggregate.TopNByCount([]string{"b", "a", "b", "a"}, 0)

			Convey("Then ties keep first-seen order", func() {
				So(ranked[0].Key, ShouldEqual, "b")
				So(ranked[1].Key, ShouldEqual, "a")
			})
		})
	})

	Convey("Given groups to rank by mean", t, func() {
		groups := []string{"Maths", "Maths", "Physics", "Chemistry"}
		vals := []model.Value{usable(90), usable(70), usable(85), {}}

		Convey("When ranking by mean", func() {
			ranked := aggregate.TopNByMean(groups, vals, 5)

			Convey("Then groups without usable values are omitted", func() {
				So(ranked, ShouldHaveLength, 2)
				So(ranked[0].Key, ShouldEqual, "Physics")
				So(ranked[0].Value, ShouldEqual, 85)
				So(ranked[1].Key, ShouldEqual, "Maths")
				So(ranked[1].Value, ShouldEqual, 80)
			})
		})
	})
}

func TestPairedSeries(t *testing.T) {
	Convey("Given two columns with a partially missing row", t, func() {
		xs := []model.Value{usable(8.1), usable(7.2), usable(9.0)}
		ys := []model.Value{usable(10), {}, usable(24)}

		Convey("When extracting the paired series", func() {
			x, y := aggregate.PairedSeries(xs, ys)

			Convey("Then only rows with both values survive, row-aligned", func() {
				So(x, ShouldHaveLength, 2)
				So(y, ShouldHaveLength, 2)
				So(x, ShouldResemble, []float64{8.1, 9.0})
				So(y, ShouldResemble, []float64{10, 24})
			})
		})

		Convey("When no row is complete", func() {
			x, y := aggregate.PairedSeries([]model.Value{{}}, []model.Value{usable(1)})

			So(x, ShouldBeEmpty)
			So(y, ShouldBeEmpty)
		})
	})
}

func TestTrend(t *testing.T) {
	Convey("Given out-of-order numeric periods", t, func() {
		periods := []string{"2022", "2021", "2023"}
		vals := []model.Value{usable(70), usable(60), usable(80)}

		Convey("When computing the trend", func() {
			points := aggregate.Trend(periods, vals)

			Convey("Then periods sort numerically with aligned means", func() {
				So(points, ShouldHaveLength, 3)
				So(points[0].Period, ShouldEqual, "2021")
				So(points[0].Mean, ShouldEqual, 60)
				So(points[1].Period, ShouldEqual, "2022")
				So(points[1].Mean, ShouldEqual, 70)
				So(points[2].Period, ShouldEqual, "2023")
				So(points[2].Mean, ShouldEqual, 80)
			})
		})
	})

	Convey("Given non-numeric period labels", t, func() {
		points := aggregate.Trend(
			[]string{"Sem2", "Sem1"},
			[]model.Value{usable(4), usable(3)},
		)

		Convey("Then periods sort lexicographically", func() {
			So(points[0].Period, ShouldEqual, "Sem1")
			So(points[1].Period, ShouldEqual, "Sem2")
		})
	})
}

func TestCrossTab(t *testing.T) {
	Convey("Given two categorical columns", t, func() {
		outer := []string{"Male", "Female", "Male", "Female", ""}
		inner := []string{"Placed", "Placed", "Not Placed", "Placed", "Placed"}

		Convey("When cross-tabulating", func() {
			tab := aggregate.CrossTab(outer, inner)

			Convey("Then counts nest outer then inner, absences excluded", func() {
				So(tab, ShouldResemble, map[string]map[string]int{
					"Male":   {"Placed": 1, "Not Placed": 1},
					"Female": {"Placed": 2},
				})
			})
		})
	})
}

func TestTokenCounts(t *testing.T) {
	Convey("Given a list-valued column", t, func() {
		lists := [][]string{{"Go", "SQL"}, {"Go"}, nil, {"SQL", "Go"}}

		Convey("When counting tokens", func() {
			So(aggregate.TokenCounts(lists), ShouldResemble, map[string]int{"Go": 3, "SQL": 2})
		})

		Convey("When ranking tokens", func() {
			ranked := aggregate.TopNTokens(lists, 1)
			So(ranked, ShouldHaveLength, 1)
			So(ranked[0].Key, ShouldEqual, "Go")
		})
	})
}

func TestIdempotence(t *testing.T) {
	Convey("Given any fixed input", t, func() {
		groups := []string{"b", "a", "b", "c"}
		vals := []model.Value{usable(1), usable(2), usable(3), usable(4)}

		Convey("When running the same aggregation twice", func() {
			first := aggregate.TopNByMean(groups, vals, 3)
			second := aggregate.TopNByMean(groups, vals, 3)

			Convey("Then results are identical", func() {
				So(reflect.DeepEqual(first, second), ShouldBeTrue)
			})
		})
	})
}
