// Package datagen produces sample dataset CSVs so the dashboard can run
// without a live database.
package datagen

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/campuslens/campuslens/pkg/logger"
)

// randomFloatDivisor scales crypto/rand integers into [0,1).
const randomFloatDivisor = 1000000

// Catalog values sampled when generating rows.
var (
	departments = []string{"CSE", "ECE", "ME", "CE", "EEE"}
	subjects    = []string{"Mathematics", "Physics", "Data Structures", "Thermodynamics", "Circuits", "Algorithms"}
	examTypes   = []string{"Internal", "External"}
	genders     = []string{"Male", "Female"}
	periods     = []string{"2021", "2022", "2023", "2024"}
	semesters   = []string{"Sem1", "Sem2"}
	companies   = []string{"TCS", "Infosys", "Wipro", "Amazon", "Microsoft", "Zoho"}
	skillPool   = []string{"Python", "Java", "Go", "SQL", "C++", "Machine Learning", "React"}
	faculty     = []string{"Dr. Rao", "Dr. Iyer", "Prof. Menon", "Dr. Das", "Prof. Kulkarni", "Dr. Singh"}
	courses     = []string{"CS101", "CS202", "EC110", "ME150", "EE201"}
)

// Options controls how many rows each dataset gets.
type Options struct {
	Dir      string
	Students int
	Reviews  int
}

// Generate writes the three sample CSVs into opts.Dir.
func Generate(ctx context.Context, opts Options) error {
	if opts.Students <= 0 {
		opts.Students = 200
	}
	if opts.Reviews <= 0 {
		opts.Reviews = 150
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("datagen: create dir: %w", err)
	}

	if err := writeExam(opts); err != nil {
		return err
	}
	if err := writePlacement(opts); err != nil {
		return err
	}
	if err := writeFaculty(opts); err != nil {
		return err
	}

	logger.Get().Info(ctx, "sample datasets generated",
		logger.String("dir", opts.Dir),
		logger.Int("students", opts.Students),
		logger.Int("reviews", opts.Reviews))
	return nil
}

func writeExam(opts Options) error {
	header := []string{"student_id", "subject", "marks", "exam_type", "department", "gender", "period"}
	rows := make([][]string, 0, opts.Students*2)
	for i := 0; i < opts.Students; i++ {
		id := uuid.New().String()
		dept := pick(departments)
		gender := pick(genders)
		// Two exam rows per student, different subjects.
		for j := 0; j < 2; j++ {
			rows = append(rows, []string{
				id,
				pick(subjects),
				strconv.Itoa(30 + intn(70)),
				pick(examTypes),
				dept,
				gender,
				pick(periods),
			})
		}
	}
	return writeCSV(filepath.Join(opts.Dir, "exam_data.csv"), header, rows)
}

func writePlacement(opts Options) error {
	header := []string{"student_id", "department", "placed", "cgpa", "package_lpa", "company", "skills", "gender", "year"}
	rows := make([][]string, 0, opts.Students)
	for i := 0; i < opts.Students; i++ {
		cgpa := 5.0 + randFloat()*5.0
		placed := randFloat() < (cgpa-4.0)/6.0 // stronger CGPA, better odds
		var pkg, company string
		if placed {
			pkg = fmt.Sprintf("%.1f", 3.0+randFloat()*cgpa*2.5)
			company = pick(companies)
		}
		rows = append(rows, []string{
			uuid.New().String(),
			pick(departments),
			boolWord(placed),
			fmt.Sprintf("%.2f", cgpa),
			pkg,
			company,
			pick(skillPool) + "," + pick(skillPool),
			pick(genders),
			pick(periods),
		})
	}
	return writeCSV(filepath.Join(opts.Dir, "placement_data.csv"), header, rows)
}

func writeFaculty(opts Options) error {
	header := []string{"faculty_name", "department", "course", "rating", "semester", "year"}
	rows := make([][]string, 0, opts.Reviews)
	for i := 0; i < opts.Reviews; i++ {
		rows = append(rows, []string{
			pick(faculty),
			pick(departments),
			pick(courses),
			strconv.Itoa(1 + intn(5)),
			pick(semesters),
			pick(periods),
		})
	}
	return writeCSV(filepath.Join(opts.Dir, "faculty_reviews.csv"), header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datagen: create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // flushed below

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("datagen: write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("datagen: write rows: %w", err)
	}
	w.Flush()
	return w.Error()
}

// randFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func intn(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func pick(values []string) string {
	return values[intn(len(values))]
}

func boolWord(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
