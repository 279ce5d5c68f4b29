package catalog

import (
	"context"
	"fmt"
	"sort"
)

// LearningUnit is one ordered unit of course content. Units are read-only
// to the engine; the catalog owns them.
type LearningUnit struct {
	ID               string
	Name             string
	SequencePosition int
	DurationMinutes  int
	DifficultyTier   int // 1 (intro) to 5 (hardest)
}

// Course groups an ordered unit list under a stable ID.
type Course struct {
	ID    string
	Name  string
	Units []LearningUnit
}

// Catalog supplies ordered learning-unit metadata for courses.
type Catalog interface {
	// Units returns the course's units sorted by sequence position.
	// Returns ErrCourseNotFound if the course does not exist.
	Units(ctx context.Context, courseID string) ([]LearningUnit, error)
}

// ErrCourseNotFound indicates the requested course does not exist in the catalog.
type ErrCourseNotFound struct {
	CourseID string
}

func (e *ErrCourseNotFound) Error() string {
	return fmt.Sprintf("course not found: %s", e.CourseID)
}

// SortUnits orders units by sequence position in place, with ID as a
// deterministic tiebreaker.
func SortUnits(units []LearningUnit) {
	sort.Slice(units, func(i, j int) bool {
		if units[i].SequencePosition != units[j].SequencePosition {
			return units[i].SequencePosition < units[j].SequencePosition
		}
		return units[i].ID < units[j].ID
	})
}
