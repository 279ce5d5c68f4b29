package calendar

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseConstraints(t *testing.T) {
	valid := `{
		"studentId": "s1",
		"courseId": "go-foundations",
		"availableHoursPerWeek": 5,
		"targetCompletionWeeks": 4,
		"preferredDays": ["monday", "thursday"],
		"preferredHour": 7,
		"dailySessionCap": 2
	}`

	cs, err := ParseConstraints(json.RawMessage(valid))
	if err != nil {
		t.Fatalf("ParseConstraints: %v", err)
	}
	if cs.StudentID != "s1" || cs.CourseID != "go-foundations" {
		t.Errorf("identity fields = %q/%q", cs.StudentID, cs.CourseID)
	}
	if cs.AvailableHoursPerWeek != 5 || cs.TargetCompletionWeeks != 4 {
		t.Errorf("pace fields = %v/%v", cs.AvailableHoursPerWeek, cs.TargetCompletionWeeks)
	}
	if len(cs.PreferredDays) != 2 || cs.PreferredDays[0] != time.Monday || cs.PreferredDays[1] != time.Thursday {
		t.Errorf("preferred days = %v", cs.PreferredDays)
	}
	if cs.PreferredHour != 7 || cs.DailySessionCap != 2 {
		t.Errorf("hour/cap = %d/%d", cs.PreferredHour, cs.DailySessionCap)
	}
}

func TestParseConstraints_DefaultHour(t *testing.T) {
	raw := `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":3,"targetCompletionWeeks":2}`
	cs, err := ParseConstraints(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("ParseConstraints: %v", err)
	}
	if cs.PreferredHour != DefaultPreferredHour {
		t.Errorf("preferred hour = %d, want default %d", cs.PreferredHour, DefaultPreferredHour)
	}
	if len(cs.PreferredDays) != 0 {
		t.Errorf("preferred days = %v, want empty", cs.PreferredDays)
	}
}

func TestParseConstraints_Rejected(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing required", `{"studentId":"s1"}`},
		{"zero hours", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":0,"targetCompletionWeeks":4}`},
		{"negative hours", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":-2,"targetCompletionWeeks":4}`},
		{"zero weeks", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":5,"targetCompletionWeeks":0}`},
		{"fractional weeks", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":5,"targetCompletionWeeks":2.5}`},
		{"unknown day", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":5,"targetCompletionWeeks":4,"preferredDays":["funday"]}`},
		{"duplicate days", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":5,"targetCompletionWeeks":4,"preferredDays":["monday","monday"]}`},
		{"hour out of range", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":5,"targetCompletionWeeks":4,"preferredHour":24}`},
		{"unknown field", `{"studentId":"s1","courseId":"c1","availableHoursPerWeek":5,"targetCompletionWeeks":4,"snooze":true}`},
		{"empty student", `{"studentId":"","courseId":"c1","availableHoursPerWeek":5,"targetCompletionWeeks":4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConstraints(json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("want error, got nil")
			}
			var ic *ErrInvalidConstraints
			if !errors.As(err, &ic) {
				t.Fatalf("error type = %T, want *ErrInvalidConstraints", err)
			}
		})
	}
}
