package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// OnboardingConstraints is the validated form of a student's scheduling
// preferences, captured once at enrollment.
type OnboardingConstraints struct {
	StudentID             string
	CourseID              string
	AvailableHoursPerWeek float64
	TargetCompletionWeeks int
	PreferredDays         []time.Weekday // empty = no preference
	PreferredHour         int            // local hour of day for sessions, 0-23
	DailySessionCap       int            // 0 = no cap
}

// ErrInvalidConstraints reports a constraint field that failed validation.
// Malformed upstream payloads are rejected at the boundary, never coerced.
type ErrInvalidConstraints struct {
	Field  string
	Reason string
}

func (e *ErrInvalidConstraints) Error() string {
	return fmt.Sprintf("invalid constraints: %s %s", e.Field, e.Reason)
}

// Validate checks the cross-field invariants on an already-typed value.
func (c OnboardingConstraints) Validate() error {
	if c.StudentID == "" {
		return &ErrInvalidConstraints{Field: "studentId", Reason: "must not be empty"}
	}
	if c.CourseID == "" {
		return &ErrInvalidConstraints{Field: "courseId", Reason: "must not be empty"}
	}
	if c.AvailableHoursPerWeek <= 0 {
		return &ErrInvalidConstraints{Field: "availableHoursPerWeek", Reason: "must be > 0"}
	}
	if c.TargetCompletionWeeks < 1 {
		return &ErrInvalidConstraints{Field: "targetCompletionWeeks", Reason: "must be >= 1"}
	}
	if c.PreferredHour < 0 || c.PreferredHour > 23 {
		return &ErrInvalidConstraints{Field: "preferredHour", Reason: "must be between 0 and 23"}
	}
	if c.DailySessionCap < 0 {
		return &ErrInvalidConstraints{Field: "dailySessionCap", Reason: "must be >= 0"}
	}
	return nil
}

// constraintsSchemaDef is the JSON Schema for raw onboarding payloads as
// received from upstream request handlers.
const constraintsSchemaDef = `{
	"type": "object",
	"required": ["studentId", "courseId", "availableHoursPerWeek", "targetCompletionWeeks"],
	"additionalProperties": false,
	"properties": {
		"studentId": {"type": "string", "minLength": 1},
		"courseId": {"type": "string", "minLength": 1},
		"availableHoursPerWeek": {"type": "number", "exclusiveMinimum": 0},
		"targetCompletionWeeks": {"type": "integer", "minimum": 1},
		"preferredDays": {
			"type": "array",
			"items": {"type": "string", "enum": ["sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"]},
			"uniqueItems": true
		},
		"preferredHour": {"type": "integer", "minimum": 0, "maximum": 23},
		"dailySessionCap": {"type": "integer", "minimum": 0}
	}
}`

var (
	constraintsSchemaOnce sync.Once
	constraintsSchema     *jsonschema.Schema
	constraintsSchemaErr  error
)

func compiledConstraintsSchema() (*jsonschema.Schema, error) {
	constraintsSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(constraintsSchemaDef), &def); err != nil {
			constraintsSchemaErr = fmt.Errorf("parse constraints schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://onboarding-constraints.json", def); err != nil {
			constraintsSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		constraintsSchema, constraintsSchemaErr = c.Compile("schema://onboarding-constraints.json")
	})
	return constraintsSchema, constraintsSchemaErr
}

// ParseConstraints validates a loosely-typed payload against the onboarding
// schema and decodes it into OnboardingConstraints. Any schema violation is
// returned as ErrInvalidConstraints.
func ParseConstraints(raw json.RawMessage) (OnboardingConstraints, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return OnboardingConstraints{}, &ErrInvalidConstraints{Field: "payload", Reason: "is not valid JSON"}
	}

	schema, err := compiledConstraintsSchema()
	if err != nil {
		return OnboardingConstraints{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return OnboardingConstraints{}, &ErrInvalidConstraints{Field: "payload", Reason: err.Error()}
	}

	var wire struct {
		StudentID             string   `json:"studentId"`
		CourseID              string   `json:"courseId"`
		AvailableHoursPerWeek float64  `json:"availableHoursPerWeek"`
		TargetCompletionWeeks int      `json:"targetCompletionWeeks"`
		PreferredDays         []string `json:"preferredDays"`
		PreferredHour         *int     `json:"preferredHour"`
		DailySessionCap       int      `json:"dailySessionCap"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return OnboardingConstraints{}, &ErrInvalidConstraints{Field: "payload", Reason: err.Error()}
	}

	cs := OnboardingConstraints{
		StudentID:             wire.StudentID,
		CourseID:              wire.CourseID,
		AvailableHoursPerWeek: wire.AvailableHoursPerWeek,
		TargetCompletionWeeks: wire.TargetCompletionWeeks,
		PreferredHour:         DefaultPreferredHour,
		DailySessionCap:       wire.DailySessionCap,
	}
	if wire.PreferredHour != nil {
		cs.PreferredHour = *wire.PreferredHour
	}
	for _, d := range wire.PreferredDays {
		wd, ok := parseWeekday(d)
		if !ok {
			return OnboardingConstraints{}, &ErrInvalidConstraints{Field: "preferredDays", Reason: fmt.Sprintf("unknown day %q", d)}
		}
		cs.PreferredDays = append(cs.PreferredDays, wd)
	}

	if err := cs.Validate(); err != nil {
		return OnboardingConstraints{}, err
	}
	return cs, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return 0, false
}
