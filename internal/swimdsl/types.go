// Package swimdsl interprets the swim workout shorthand coaches write,
// e.g.
//
//	pool 25
//	warmup:
//	  400 FR easy
//	main:
//	  10x100 FR @1:30 thresh
//
// into structured sets, totals and an estimated duration.
package swimdsl

// DefaultSection is the active section until a "<name>:" line is seen.
const DefaultSection = "main"

// UnknownIntensity is the totals bucket for sets without an intensity token.
const UnknownIntensity = "unknown"

// WorkoutHeader holds the header directives found anywhere in a document.
// A nil field means the directive was never given.
type WorkoutHeader struct {
	PoolLengthMeters       *int    `json:"poolLengthMeters,omitempty"`
	PlannedDurationMinutes *int    `json:"plannedDurationMinutes,omitempty"`
	Title                  *string `json:"title,omitempty"`
	Focus                  *string `json:"focus,omitempty"`
	Profile                *string `json:"profile,omitempty"`
}

// SetInterval is one parsed set line.
type SetInterval struct {
	Section        string  `json:"section"`
	Reps           int     `json:"reps"`
	DistanceMeters int     `json:"distanceMeters"`
	Stroke         string  `json:"stroke"`
	SendOffSeconds *int    `json:"sendOffSeconds,omitempty"`
	Intensity      *string `json:"intensity,omitempty"`
	Raw            string  `json:"raw"`
	LineNumber     int     `json:"lineNumber"`
}

// Distance is the set's contribution to the workout total.
func (s SetInterval) Distance() int {
	return s.Reps * s.DistanceMeters
}

// WorkoutTotals is derived from the sets on every interpretation.
type WorkoutTotals struct {
	TotalDistanceMeters int            `json:"totalDistanceMeters"`
	DistanceBySection   map[string]int `json:"distanceBySection"`
	DistanceByIntensity map[string]int `json:"distanceByIntensity"`
	EstimatedMinutes    *float64       `json:"estimatedMinutes,omitempty"`
}

// ParseError is a non-fatal diagnostic tied to a 1-based line number.
type ParseError struct {
	LineNumber int    `json:"lineNumber"`
	Message    string `json:"message"`
}

func (e ParseError) Error() string {
	return "line " + itoa(e.LineNumber) + ": " + e.Message
}

// InterpretedWorkout is the full result of Interpret. Callers must treat it as read-only.
type InterpretedWorkout struct {
	Header   WorkoutHeader `json:"header"`
	Sets     []SetInterval `json:"sets"`
	Totals   WorkoutTotals `json:"totals"`
	Errors   []ParseError  `json:"errors"`
	Warnings []string      `json:"warnings"`
}

// HasErrors reports whether any line produced a diagnostic.
func (w *InterpretedWorkout) HasErrors() bool {
	return len(w.Errors) > 0
}
