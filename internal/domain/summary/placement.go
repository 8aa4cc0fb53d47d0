package summary

import (
	"fmt"

	"github.com/campuslens/campuslens/internal/domain/aggregate"
	"github.com/campuslens/campuslens/internal/domain/model"
	"github.com/campuslens/campuslens/internal/domain/normalize"
)

// Placed-status labels used for cross-tabs and grouped comparisons.
const (
	labelPlaced    = "Placed"
	labelNotPlaced = "Not Placed"
)

// Placement assembles the placement outcome bundle: placement rates,
// package statistics, gender comparison, CGPA distribution and pairing,
// and company/skill rankings.
func (a *Assembler) Placement(t normalize.PlacementTable) Bundle {
	var (
		flags     = make([]model.Flag, len(t.Records))
		depts     = make([]string, len(t.Records))
		cgpas     = make([]model.Value, len(t.Records))
		packages  = make([]model.Value, len(t.Records))
		companies = make([]string, len(t.Records))
		skills    = make([][]string, len(t.Records))
		genders   = make([]string, len(t.Records))
		years     = make([]string, len(t.Records))
		statuses  = make([]string, len(t.Records))
	)
	for i, r := range t.Records {
		flags[i] = r.Placed
		depts[i] = r.Department
		cgpas[i] = r.CGPA
		packages[i] = r.Package
		companies[i] = r.Company
		skills[i] = r.Skills
		genders[i] = r.Gender
		years[i] = r.Year
		statuses[i] = placedLabel(r.Placed)
	}

	b := Bundle{
		"kpi_total_records": len(t.Records),
		"kpi_rejected_rows": t.Rejected,
	}

	rate, hasFlags := aggregate.Rate(flags)
	b.put("kpi_overall_rate", func() (interface{}, error) {
		if !hasFlags {
			return nil, fmt.Errorf("%w: placed", ErrNoValidRows)
		}
		return aggregate.RoundTo2(rate), nil
	})

	b.put("kpi_average_package", func() (interface{}, error) {
		if t.MissingColumns["package_lpa"] {
			return nil, fmt.Errorf("%w: package_lpa", ErrColumnMissing)
		}
		avg, ok := aggregate.Mean(packages)
		if !ok {
			return nil, fmt.Errorf("%w: package_lpa", ErrNoValidRows)
		}
		return aggregate.RoundTo2(avg), nil
	})

	b.put("placement_rate_by_department", func() (interface{}, error) {
		rates := aggregate.GroupedRate(depts, flags)
		if len(rates) == 0 {
			return nil, fmt.Errorf("%w: placed by department", ErrNoValidRows)
		}
		return roundMap(rates), nil
	})

	b.put("package_by_department", func() (interface{}, error) {
		if t.MissingColumns["package_lpa"] {
			return nil, fmt.Errorf("%w: package_lpa", ErrColumnMissing)
		}
		means := aggregate.GroupedMean(depts, packages)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: package_lpa by department", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("gender_placement", func() (interface{}, error) {
		if t.MissingColumns["gender"] {
			return nil, fmt.Errorf("%w: gender", ErrColumnMissing)
		}
		tab := aggregate.CrossTab(genders, statuses)
		if len(tab) == 0 {
			return nil, fmt.Errorf("%w: gender and placed", ErrNoValidRows)
		}
		return tab, nil
	})

	b.put("cgpa_distribution", func() (interface{}, error) {
		if t.MissingColumns["cgpa"] {
			return nil, fmt.Errorf("%w: cgpa", ErrColumnMissing)
		}
		return binHalfOpen(cgpas, cgpaBinLabels, cgpaBinUpper), nil
	})

	b.put("cgpa_by_placement", func() (interface{}, error) {
		if t.MissingColumns["cgpa"] {
			return nil, fmt.Errorf("%w: cgpa", ErrColumnMissing)
		}
		means := aggregate.GroupedMean(statuses, cgpas)
		if len(means) == 0 {
			return nil, fmt.Errorf("%w: cgpa by placement status", ErrNoValidRows)
		}
		return roundMap(means), nil
	})

	b.put("cgpa_package_correlation", func() (interface{}, error) {
		if t.MissingColumns["cgpa"] || t.MissingColumns["package_lpa"] {
			return nil, fmt.Errorf("%w: cgpa and package_lpa", ErrColumnMissing)
		}
		x, y := aggregate.PairedSeries(cgpas, packages)
		return Pairs{X: x, Y: y}, nil
	})

	b.put("top_companies", func() (interface{}, error) {
		if t.MissingColumns["company"] {
			return nil, fmt.Errorf("%w: company", ErrColumnMissing)
		}
		ranked := aggregate.TopNByCount(companies, a.topN)
		if len(ranked) == 0 {
			return nil, fmt.Errorf("%w: company", ErrNoValidRows)
		}
		return ranked, nil
	})

	b.put("top_skills", func() (interface{}, error) {
		if t.MissingColumns["skills"] {
			return nil, fmt.Errorf("%w: skills", ErrColumnMissing)
		}
		ranked := aggregate.TopNTokens(skills, a.topN)
		if len(ranked) == 0 {
			return nil, fmt.Errorf("%w: skills", ErrNoValidRows)
		}
		return ranked, nil
	})

	b.put("year_distribution", func() (interface{}, error) {
		if t.MissingColumns["year"] {
			return nil, fmt.Errorf("%w: year", ErrColumnMissing)
		}
		return aggregate.Distribution(years), nil
	})

	return b
}

// placedLabel converts a tri-state placed flag to its display category.
// Absent flags map to the empty string and fall out of categorical
// aggregations.
func placedLabel(f model.Flag) string {
	switch {
	case !f.Present:
		return ""
	case f.Bool:
		return labelPlaced
	default:
		return labelNotPlaced
	}
}
