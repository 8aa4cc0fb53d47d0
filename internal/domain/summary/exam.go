package summary

import (
	"fmt"

	"github.com/campuslens/campuslens/internal/domain/aggregate"
	"github.com/campuslens/campuslens/internal/domain/model"
	"github.com/campuslens/campuslens/internal/domain/normalize"
)

// Exam assembles the exam result bundle: grade and marks distributions,
// department and subject performance, internal/external comparison,
// gender split and the period trend, plus scalar KPIs.
func (a *Assembler) Exam(t normalize.ExamTable) Bundle {
	var (
		marks     = make([]model.Value, len(t.Records))
		subjects  = make([]string, len(t.Records))
		depts     = make([]string, len(t.Records))
		examTypes = make([]string, len(t.Records))
		genders   = make([]string, len(t.Records))
		periods   = make([]string, len(t.Records))
	)
	for i, r := range t.Records {
		marks[i] = r.Marks
		subjects[i] = r.Subject
		depts[i] = r.Department
		examTypes[i] = r.ExamType
		genders[i] = r.Gender
		periods[i] = r.Period
	}

	b := Bundle{
		"kpi_total_records": len(t.Records),
		"kpi_rejected_rows": t.Rejected,
	}

	overall, hasMarks := aggregate.Mean(marks)
	b.put("kpi_overall_average", func() (interface{}, error) {
		if !hasMarks {
			return nil, fmt.Errorf("%w: marks", ErrNoValidRows)
		}
		return aggregate.RoundTo2(overall), nil
	})

	b.put("grade_distribution", func() (interface{}, error) {
		return gradeDistribution(marks), nil
	})

	b.put("marks_distribution", func() (interface{}, error) {
		return binByUpper(marks, marksBinLabels, marksBinUpper), nil
	})

	b.put("performance_by_department", func() (interface{}, error) {
		means := aggregate.GroupedMean(depts, marks)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: marks by department", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("subject_performance", func() (interface{}, error) {
		means := aggregate.GroupedMean(subjects, marks)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: marks by subject", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("top_subjects", func() (interface{}, error) {
		ranked := aggregate.TopNByMean(subjects, marks, a.topN)
		if len(ranked) == 0 {
			return nil, fmt.Errorf("%w: marks by subject", ErrNoValidRows)
		}
		return rounded(ranked), nil
	})

	b.put("exam_type_comparison", func() (interface{}, error) {
		if t.MissingColumns["exam_type"] {
			return nil, fmt.Errorf("%w: exam_type", ErrColumnMissing)
		}
		means := aggregate.GroupedMean(examTypes, marks)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: marks by exam type", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("gender_distribution", func() (interface{}, error) {
		if t.MissingColumns["gender"] {
			return nil, fmt.Errorf("%w: gender", ErrColumnMissing)
		}
		return aggregate.Distribution(genders), nil
	})

	b.put("period_trend", func() (interface{}, error) {
		if t.MissingColumns["period"] {
			return nil, fmt.Errorf("%w: period", ErrColumnMissing)
		}
		points := aggregate.Trend(periods, marks)
		if len(points) < 2 {
			return nil, fmt.Errorf("%w: period trend", ErrInsufficientTrend)
		}
		return trendSeries(points), nil
	})

	return b
}

// rounded rounds ranking values to chart precision.
func rounded(ranked []aggregate.Ranked) []aggregate.Ranked {
	out := make([]aggregate.Ranked, len(ranked))
	for i, r := range ranked {
		r.Value = aggregate.RoundTo2(r.Value)
		out[i] = r
	}
	return out
}
