package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // postgres driver

	"github.com/campuslens/campuslens/internal/domain/normalize"
)

// Dataset queries. Every column is selected as text; interpretation is the
// normalizer's job, so NULLs and odd encodings degrade per-row instead of
// failing the scan.
const (
	examQuery = `
		SELECT student_id::text, subject, marks::text, exam_type, department, gender, period
		FROM exam_results
		ORDER BY id`
	placementQuery = `
		SELECT student_id::text, department, placed::text, cgpa::text, package_lpa::text,
		       company, skills, gender, year::text
		FROM placement_records
		ORDER BY id`
	facultyQuery = `
		SELECT faculty_name, department, course, rating::text, semester, year::text
		FROM faculty_reviews
		ORDER BY id`
)

// PostgresProvider reads the three datasets from PostgreSQL tables.
type PostgresProvider struct {
	db *sql.DB
}

// NewPostgresProvider opens a connection to PostgreSQL and verifies it.
func NewPostgresProvider(ctx context.Context, dsn string) (*PostgresProvider, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return &PostgresProvider{db: db}, nil
}

// Exam reads the exam results table.
func (p *PostgresProvider) Exam(ctx context.Context) (normalize.RawTable, error) {
	return p.query(ctx, examQuery,
		"student_id", "subject", "marks", "exam_type", "department", "gender", "period")
}

// Placement reads the placement records table.
func (p *PostgresProvider) Placement(ctx context.Context) (normalize.RawTable, error) {
	return p.query(ctx, placementQuery,
		"student_id", "department", "placed", "cgpa", "package_lpa",
		"company", "skills", "gender", "year")
}

// Faculty reads the faculty reviews table.
func (p *PostgresProvider) Faculty(ctx context.Context) (normalize.RawTable, error) {
	return p.query(ctx, facultyQuery,
		"faculty_name", "department", "course", "rating", "semester", "year")
}

// Close releases the database connection pool.
func (p *PostgresProvider) Close() error {
	return p.db.Close()
}

func (p *PostgresProvider) query(ctx context.Context, q string, columns ...string) (normalize.RawTable, error) {
	rows, err := p.db.QueryContext(ctx, q)
	if err != nil {
		return normalize.RawTable{}, fmt.Errorf("%w: %v", ErrReadDataset, err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	t := normalize.RawTable{Columns: columns}
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return normalize.RawTable{}, fmt.Errorf("%w: scan: %v", ErrReadDataset, err)
		}
		row := make([]string, len(columns))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return normalize.RawTable{}, fmt.Errorf("%w: %v", ErrReadDataset, err)
	}
	return t, nil
}
