// Package normalize coerces raw tabular cells into canonical typed records.
//
// The normalizer is the only place loose input (strings from CSV or SQL
// text columns) is interpreted. One bad row never fails a dataset: the row
// degrades to absent fields or is dropped and counted. The whole dataset
// fails only when required columns are missing from the header (ErrSchema).
package normalize

import (
	"fmt"
	"math"
	"strings"

	"github.com/campuslens/campuslens/internal/domain/model"
)

// RawTable is a loosely typed table: a header plus string cells.
// Sources (CSV readers, SQL adapters) produce it; the normalizer consumes it.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// index returns the position of a named column, matched case-insensitively,
// or -1 when the column is not present.
func (t RawTable) index(name string) int {
	for i, col := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

// cell returns the raw cell at idx, tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// requireColumns verifies all named columns exist, returning ErrSchema
// naming the missing ones otherwise.
func (t RawTable) requireColumns(kind model.Kind, names ...string) error {
	var missing []string
	for _, name := range names {
		if t.index(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s dataset missing columns %s",
			ErrSchema, kind, strings.Join(missing, ", "))
	}
	return nil
}

// optional tracks which non-required columns were absent from the header,
// so the assembler can fail just the summaries that need them.
func (t RawTable) optional(names ...string) map[string]bool {
	missing := make(map[string]bool)
	for _, name := range names {
		if t.index(name) < 0 {
			missing[name] = true
		}
	}
	return missing
}

// ExamTable is the normalized exam dataset.
type ExamTable struct {
	Records  []model.ExamRecord
	Rejected int
	// MissingColumns names optional columns absent from the raw header.
	MissingColumns map[string]bool
}

// PlacementTable is the normalized placement dataset.
type PlacementTable struct {
	Records        []model.PlacementRecord
	Rejected       int
	MissingColumns map[string]bool
}

// FacultyTable is the normalized faculty review dataset.
type FacultyTable struct {
	Records        []model.FacultyReview
	Rejected       int
	MissingColumns map[string]bool
}

// Exam normalizes raw exam rows. Requires student_id, subject, marks and
// department columns; exam_type, gender and period are optional.
func Exam(t RawTable) (ExamTable, error) {
	if err := t.requireColumns(model.KindExam, "student_id", "subject", "marks", "department"); err != nil {
		return ExamTable{}, err
	}

	var (
		idxStudent = t.index("student_id")
		idxSubject = t.index("subject")
		idxMarks   = t.index("marks")
		idxDept    = t.index("department")
		idxType    = t.index("exam_type")
		idxGender  = t.index("gender")
		idxPeriod  = periodIndex(t)
	)

	out := ExamTable{
		Records:        make([]model.ExamRecord, 0, len(t.Rows)),
		MissingColumns: t.optional("exam_type", "gender"),
	}
	// Either header satisfies the period column.
	if idxPeriod < 0 {
		out.MissingColumns["period"] = true
	}
	for _, row := range t.Rows {
		rec := model.ExamRecord{
			StudentID:  parseCategory(cell(row, idxStudent)),
			Subject:    parseCategory(cell(row, idxSubject)),
			Marks:      parseNumeric(cell(row, idxMarks), 0, 100),
			ExamType:   parseCategory(cell(row, idxType)),
			Department: parseCategory(cell(row, idxDept)),
			Gender:     parseCategory(cell(row, idxGender)),
			Period:     parseCategory(cell(row, idxPeriod)),
		}
		if rec.StudentID == "" {
			out.Rejected++
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// Placement normalizes raw placement rows. Requires student_id, department
// and placed columns; the rest are optional.
func Placement(t RawTable) (PlacementTable, error) {
	if err := t.requireColumns(model.KindPlacement, "student_id", "department", "placed"); err != nil {
		return PlacementTable{}, err
	}

	var (
		idxStudent = t.index("student_id")
		idxDept    = t.index("department")
		idxPlaced  = t.index("placed")
		idxCGPA    = t.index("cgpa")
		idxPackage = t.index("package_lpa")
		idxCompany = t.index("company")
		idxSkills  = t.index("skills")
		idxGender  = t.index("gender")
		idxYear    = t.index("year")
	)

	out := PlacementTable{
		Records:        make([]model.PlacementRecord, 0, len(t.Rows)),
		MissingColumns: t.optional("cgpa", "package_lpa", "company", "skills", "gender", "year"),
	}
	for _, row := range t.Rows {
		rec := model.PlacementRecord{
			StudentID:  parseCategory(cell(row, idxStudent)),
			Department: parseCategory(cell(row, idxDept)),
			Placed:     parseFlag(cell(row, idxPlaced)),
			CGPA:       parseNumeric(cell(row, idxCGPA), 0, 10),
			Package:    parseNumeric(cell(row, idxPackage), 0, math.Inf(1)),
			Company:    parseCategory(cell(row, idxCompany)),
			Skills:     parseList(cell(row, idxSkills)),
			Gender:     parseCategory(cell(row, idxGender)),
			Year:       parseCategory(cell(row, idxYear)),
		}
		if rec.StudentID == "" {
			out.Rejected++
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// Faculty normalizes raw faculty review rows. Requires faculty_name,
// department and rating columns; course, semester and year are optional.
func Faculty(t RawTable) (FacultyTable, error) {
	if err := t.requireColumns(model.KindFaculty, "faculty_name", "department", "rating"); err != nil {
		return FacultyTable{}, err
	}

	var (
		idxName     = t.index("faculty_name")
		idxDept     = t.index("department")
		idxCourse   = t.index("course")
		idxRating   = t.index("rating")
		idxSemester = t.index("semester")
		idxYear     = t.index("year")
	)

	out := FacultyTable{
		Records:        make([]model.FacultyReview, 0, len(t.Rows)),
		MissingColumns: t.optional("course", "semester", "year"),
	}
	for _, row := range t.Rows {
		rec := model.FacultyReview{
			FacultyName: parseCategory(cell(row, idxName)),
			Department:  parseCategory(cell(row, idxDept)),
			Course:      parseCategory(cell(row, idxCourse)),
			Rating:      parseNumeric(cell(row, idxRating), 1, 5),
			Semester:    parseCategory(cell(row, idxSemester)),
			Year:        parseCategory(cell(row, idxYear)),
		}
		if rec.FacultyName == "" {
			out.Rejected++
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// periodIndex resolves the exam period column, accepting either
// "period" or "date" headers.
func periodIndex(t RawTable) int {
	if idx := t.index("period"); idx >= 0 {
		return idx
	}
	return t.index("date")
}
