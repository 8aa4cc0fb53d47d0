// Package types contains common types used across the application
package types

import "github.com/campuslens/campuslens/internal/domain/summary"

// Dashboard is the full /api/data payload: one summary bundle per
// dataset kind.
type Dashboard struct {
	Exam      summary.Bundle `json:"exam_data"`
	Placement summary.Bundle `json:"placement_data"`
	Faculty   summary.Bundle `json:"faculty_data"`
}
