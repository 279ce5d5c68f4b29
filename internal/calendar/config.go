package calendar

// DefaultPreferredHour is the session start hour used when the student
// expressed no time-of-day preference.
const DefaultPreferredHour = 18

// Config holds generator tuning knobs.
type Config struct {
	// SlackMinutes is the tolerance applied when checking the weekly-hours
	// cap, absorbing partial-week boundary effects.
	SlackMinutes int

	// MaxSessionsPerDay bounds how densely sessions may be packed when the
	// student set no daily cap of their own.
	MaxSessionsPerDay int

	// IntraDayGapMinutes is the minimum start-to-start spacing between
	// sessions on the same day. A session longer than the gap pushes the
	// next slot past its own end instead.
	IntraDayGapMinutes int
}

// DefaultConfig returns sensible generator defaults.
func DefaultConfig() Config {
	return Config{
		SlackMinutes:       30,
		MaxSessionsPerDay:  2,
		IntraDayGapMinutes: 180,
	}
}
