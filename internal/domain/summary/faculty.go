package summary

import (
	"fmt"

	"github.com/campuslens/campuslens/internal/domain/aggregate"
	"github.com/campuslens/campuslens/internal/domain/model"
	"github.com/campuslens/campuslens/internal/domain/normalize"
)

// Faculty assembles the faculty review bundle: rating distribution,
// department/semester/year breakdowns, top faculty and courses, and the
// year trend.
func (a *Assembler) Faculty(t normalize.FacultyTable) Bundle {
	var (
		ratings   = make([]model.Value, len(t.Records))
		names     = make([]string, len(t.Records))
		depts     = make([]string, len(t.Records))
		courses   = make([]string, len(t.Records))
		semesters = make([]string, len(t.Records))
		years     = make([]string, len(t.Records))
	)
	for i, r := range t.Records {
		ratings[i] = r.Rating
		names[i] = r.FacultyName
		depts[i] = r.Department
		courses[i] = r.Course
		semesters[i] = r.Semester
		years[i] = r.Year
	}

	b := Bundle{
		"kpi_total_reviews": len(t.Records),
		"kpi_rejected_rows": t.Rejected,
	}

	overall, hasRatings := aggregate.Mean(ratings)
	b.put("kpi_overall_rating", func() (interface{}, error) {
		if !hasRatings {
			return nil, fmt.Errorf("%w: rating", ErrNoValidRows)
		}
		return aggregate.RoundTo2(overall), nil
	})

	b.put("rating_distribution", func() (interface{}, error) {
		return ratingDistribution(ratings), nil
	})

	b.put("rating_by_department", func() (interface{}, error) {
		means := aggregate.GroupedMean(depts, ratings)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: rating by department", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("rating_by_semester", func() (interface{}, error) {
		if t.MissingColumns["semester"] {
			return nil, fmt.Errorf("%w: semester", ErrColumnMissing)
		}
		means := aggregate.GroupedMean(semesters, ratings)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: rating by semester", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("rating_by_year", func() (interface{}, error) {
		if t.MissingColumns["year"] {
			return nil, fmt.Errorf("%w: year", ErrColumnMissing)
		}
		means := aggregate.GroupedMean(years, ratings)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: rating by year", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("top_faculty", func() (interface{}, error) {
		ranked := aggregate.TopNByMean(names, ratings, a.topN)
		if len(ranked) == 0 {
			return nil, fmt.Errorf("%w: rating by faculty", ErrNoValidRows)
		}
		return rounded(ranked), nil
	})

	b.put("top_courses", func() (interface{}, error) {
		if t.MissingColumns["course"] {
			return nil, fmt.Errorf("%w: course", ErrColumnMissing)
		}
		ranked := aggregate.TopNByMean(courses, ratings, a.topN)
		if len(ranked) == 0 {
			return nil, fmt.Errorf("%w: rating by course", ErrNoValidRows)
		}
		return rounded(ranked), nil
	})

	b.put("year_trend", func() (interface{}, error) {
		if t.MissingColumns["year"] {
			return nil, fmt.Errorf("%w: year", ErrColumnMissing)
		}
		points := aggregate.Trend(years, ratings)
		if len(points) < 2 {
			return nil, fmt.Errorf("%w: year trend", ErrInsufficientTrend)
		}
		return trendSeries(points), nil
	})

	return b
}
