package catalog

import "context"

// StaticCatalog is an in-memory Catalog seeded with a fixed course set.
// Used by the CLI for standalone operation and by tests; production
// deployments wrap the platform's content service instead.
type StaticCatalog struct {
	courses map[string]Course
}

// NewStatic builds a StaticCatalog from the given courses.
func NewStatic(courses []Course) *StaticCatalog {
	c := &StaticCatalog{courses: make(map[string]Course, len(courses))}
	for _, course := range courses {
		SortUnits(course.Units)
		c.courses[course.ID] = course
	}
	return c
}

// NewSeeded returns a StaticCatalog with the built-in demo courses.
func NewSeeded() *StaticCatalog {
	return NewStatic(seedCourses())
}

func (c *StaticCatalog) Units(_ context.Context, courseID string) ([]LearningUnit, error) {
	course, ok := c.courses[courseID]
	if !ok {
		return nil, &ErrCourseNotFound{CourseID: courseID}
	}
	units := make([]LearningUnit, len(course.Units))
	copy(units, course.Units)
	return units, nil
}

// Courses returns all seeded courses sorted by ID, for display.
func (c *StaticCatalog) Courses() []Course {
	out := make([]Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course)
	}
	SortCourses(out)
	return out
}
