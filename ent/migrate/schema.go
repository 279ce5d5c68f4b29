// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student_id", Type: field.TypeString},
		{Name: "classification", Type: field.TypeString},
		{Name: "urgency", Type: field.TypeString},
		{Name: "mutation_count", Type: field.TypeInt, Default: 0},
		{Name: "rationale", Type: field.TypeString, Default: ""},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[2]},
			},
			{
				Name:    "adaptationevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[3]},
			},
			{
				Name:    "adaptationevent_classification",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[4]},
			},
		},
	}
	// CalendarEventsColumns holds the columns for the "calendar_events" table.
	CalendarEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "student_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "unit_position", Type: field.TypeInt},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "planned_minutes", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "actual_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CalendarEventsTable holds the schema information for the "calendar_events" table.
	CalendarEventsTable = &schema.Table{
		Name:       "calendar_events",
		Columns:    CalendarEventsColumns,
		PrimaryKey: []*schema.Column{CalendarEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarevent_student_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[1], CalendarEventsColumns[5]},
			},
			{
				Name:    "calendarevent_student_id_completed",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[1], CalendarEventsColumns[8]},
			},
			{
				Name:    "calendarevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[2]},
			},
			{
				Name:    "calendarevent_unit_id",
				Unique:  false,
				Columns: []*schema.Column{CalendarEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		CalendarEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
