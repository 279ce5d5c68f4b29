// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptationEvent is the predicate function for adaptationevent builders.
type AdaptationEvent func(*sql.Selector)

// CalendarEvent is the predicate function for calendarevent builders.
type CalendarEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)
