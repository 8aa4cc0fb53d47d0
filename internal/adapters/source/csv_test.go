package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/campuslens/campuslens/internal/adapters/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReadTable(t *testing.T) {
	Convey("Given well-formed CSV content", t, func() {
		content := "student_id,subject,marks\ns1,Maths,90\ns2,Physics,40\n"

		Convey("When reading the table", func() {
			table, err := source.ReadTable(strings.NewReader(content))

			Convey("Then header and rows are split", func() {
				So(err, ShouldBeNil)
				So(table.Columns, ShouldResemble, []string{"student_id", "subject", "marks"})
				So(table.Rows, ShouldHaveLength, 2)
				So(table.Rows[0], ShouldResemble, []string{"s1", "Maths", "90"})
			})
		})
	})

	Convey("Given ragged rows", t, func() {
		content := "student_id,subject,marks\ns1,Maths\n"

		Convey("When reading the table", func() {
			table, err := source.ReadTable(strings.NewReader(content))

			Convey("Then short rows pass through untouched", func() {
				So(err, ShouldBeNil)
				So(table.Rows[0], ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given empty content", t, func() {
		Convey("When reading the table", func() {
			_, err := source.ReadTable(strings.NewReader(""))

			Convey("Then the empty-table sentinel is returned", func() {
				So(errors.Is(err, source.ErrEmptyTable), ShouldBeTrue)
			})
		})
	})

	Convey("Given a header-only file", t, func() {
		Convey("When reading the table", func() {
			table, err := source.ReadTable(strings.NewReader("student_id,marks\n"))

			Convey("Then the table has columns and zero rows", func() {
				So(err, ShouldBeNil)
				So(table.Columns, ShouldHaveLength, 2)
				So(table.Rows, ShouldBeEmpty)
			})
		})
	})
}

func TestCSVProvider(t *testing.T) {
	Convey("Given a data directory with all three datasets", t, func() {
		dir := t.TempDir()
		write := func(name, content string) {
			So(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644), ShouldBeNil)
		}
		write("exam_data.csv", "student_id,subject,marks,department\ns1,Maths,90,CSE\n")
		write("placement_data.csv", "student_id,department,placed\ns1,CSE,yes\n")
		write("faculty_reviews.csv", "faculty_name,department,rating\nDr. Rao,CSE,4\n")

		p := source.NewCSVProvider(dir)
		ctx := context.Background()

		Convey("When loading each dataset", func() {
			exam, examErr := p.Exam(ctx)
			placement, placementErr := p.Placement(ctx)
			faculty, facultyErr := p.Faculty(ctx)

			Convey("Then all three tables load", func() {
				So(examErr, ShouldBeNil)
				So(placementErr, ShouldBeNil)
				So(facultyErr, ShouldBeNil)
				So(exam.Rows, ShouldHaveLength, 1)
				So(placement.Columns, ShouldContain, "placed")
				So(faculty.Columns, ShouldContain, "faculty_name")
			})
		})
	})

	Convey("Given a directory without datasets", t, func() {
		p := source.NewCSVProvider(t.TempDir())

		Convey("When loading the exam dataset", func() {
			_, err := p.Exam(context.Background())

			Convey("Then the open sentinel is returned", func() {
				So(errors.Is(err, source.ErrOpenDataset), ShouldBeTrue)
			})
		})
	})
}
