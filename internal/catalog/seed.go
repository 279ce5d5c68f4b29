package catalog

import (
	"fmt"
	"sort"
)

// SortCourses orders courses by ID in place.
func SortCourses(courses []Course) {
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].ID < courses[j].ID
	})
}

// seedCourses returns the built-in demo catalog. Durations and difficulty
// ramps roughly mirror a typical 6-10 unit short course.
func seedCourses() []Course {
	return []Course{
		{
			ID:   "go-foundations",
			Name: "Go Foundations",
			Units: rampedUnits("gof", []unitSpec{
				{"Syntax & Tooling", 45, 1},
				{"Types & Control Flow", 60, 1},
				{"Functions & Methods", 60, 2},
				{"Slices & Maps", 75, 2},
				{"Interfaces", 90, 3},
				{"Errors", 60, 3},
				{"Goroutines & Channels", 90, 4},
				{"Testing", 60, 3},
			}),
		},
		{
			ID:   "sql-essentials",
			Name: "SQL Essentials",
			Units: rampedUnits("sql", []unitSpec{
				{"Relational Model", 30, 1},
				{"SELECT Basics", 45, 1},
				{"Joins", 60, 2},
				{"Aggregation", 60, 2},
				{"Subqueries", 60, 3},
				{"Indexes & Plans", 75, 4},
			}),
		},
		{
			ID:   "stats-101",
			Name: "Statistics 101",
			Units: rampedUnits("st", []unitSpec{
				{"Descriptive Statistics", 45, 1},
				{"Probability", 60, 2},
				{"Distributions", 60, 3},
				{"Sampling", 45, 3},
				{"Hypothesis Testing", 75, 4},
				{"Regression", 90, 5},
			}),
		},
	}
}

type unitSpec struct {
	name    string
	minutes int
	tier    int
}

func rampedUnits(prefix string, specs []unitSpec) []LearningUnit {
	units := make([]LearningUnit, len(specs))
	for i, s := range specs {
		units[i] = LearningUnit{
			ID:               fmt.Sprintf("%s-%02d", prefix, i+1),
			Name:             s.name,
			SequencePosition: i + 1,
			DurationMinutes:  s.minutes,
			DifficultyTier:   s.tier,
		}
	}
	return units
}
