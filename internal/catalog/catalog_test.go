package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestStaticCatalog_Units(t *testing.T) {
	cat := NewStatic([]Course{{
		ID:   "c1",
		Name: "Course One",
		Units: []LearningUnit{
			{ID: "u3", SequencePosition: 3, DurationMinutes: 30, DifficultyTier: 2},
			{ID: "u1", SequencePosition: 1, DurationMinutes: 45, DifficultyTier: 1},
			{ID: "u2", SequencePosition: 2, DurationMinutes: 60, DifficultyTier: 1},
		},
	}})

	units, err := cat.Units(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	for i, u := range units {
		if u.SequencePosition != i+1 {
			t.Errorf("units[%d].SequencePosition = %d, want %d", i, u.SequencePosition, i+1)
		}
	}
}

func TestStaticCatalog_UnknownCourse(t *testing.T) {
	cat := NewSeeded()
	_, err := cat.Units(context.Background(), "underwater-basket-weaving")
	if err == nil {
		t.Fatal("want error, got nil")
	}
	var nf *ErrCourseNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("error type = %T, want *ErrCourseNotFound", err)
	}
	if nf.CourseID != "underwater-basket-weaving" {
		t.Errorf("CourseID = %q", nf.CourseID)
	}
}

func TestSeededCourses(t *testing.T) {
	cat := NewSeeded()
	courses := cat.Courses()
	if len(courses) == 0 {
		t.Fatal("no seeded courses")
	}
	for _, c := range courses {
		units, err := cat.Units(context.Background(), c.ID)
		if err != nil {
			t.Fatalf("Units(%s): %v", c.ID, err)
		}
		if len(units) == 0 {
			t.Errorf("course %s has no units", c.ID)
		}
		for i, u := range units {
			if u.SequencePosition != i+1 {
				t.Errorf("%s units[%d] position = %d, want %d", c.ID, i, u.SequencePosition, i+1)
			}
			if u.DurationMinutes <= 0 {
				t.Errorf("%s unit %s has non-positive duration", c.ID, u.ID)
			}
			if u.DifficultyTier < 1 || u.DifficultyTier > 5 {
				t.Errorf("%s unit %s difficulty = %d, want 1..5", c.ID, u.ID, u.DifficultyTier)
			}
		}
	}
}
