// Package model contains domain models passed between layers.
package model

// Kind identifies one of the three fixed dataset kinds.
type Kind string

// Dataset kinds served by the dashboard.
const (
	KindExam      Kind = "exam"
	KindPlacement Kind = "placement"
	KindFaculty   Kind = "faculty"
)

// Value is a numeric field observation. Present reports whether the source
// cell held a parseable number at all; Valid reports whether that number
// also falls inside the field's declared domain. A Value is never silently
// zeroed: absent and out-of-domain observations keep their flags so that
// aggregations can exclude them explicitly.
type Value struct {
	Num     float64
	Present bool
	Valid   bool
}

// Usable reports whether the value may participate in domain-bound
// aggregations (means, pairings, trends).
func (v Value) Usable() bool { return v.Present && v.Valid }

// Flag is a tri-state boolean field: present or absent, never defaulted.
type Flag struct {
	Bool    bool
	Present bool
}

// ExamRecord is one normalized exam result row.
type ExamRecord struct {
	StudentID  string
	Subject    string
	Marks      Value // expected domain [0,100]
	ExamType   string
	Department string
	Gender     string
	Period     string
}

// PlacementRecord is one normalized placement outcome row.
type PlacementRecord struct {
	StudentID  string
	Department string
	Placed     Flag
	CGPA       Value // expected domain [0,10]
	Package    Value // LPA, expected >= 0
	Company    string
	Skills     []string
	Gender     string
	Year       string
}

// FacultyReview is one normalized faculty review row.
type FacultyReview struct {
	FacultyName string
	Department  string
	Course      string
	Rating      Value // expected domain [1,5]
	Semester    string
	Year        string
}
