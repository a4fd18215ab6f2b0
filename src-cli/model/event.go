// The `model` package holds the normalized event record and the
// collection shapes the CLI emits. Records are built once by the agenda
// parser, validated, marshaled, and discarded; nothing here persists.
package model

import (
	"fmt"
	"log/slog"
)

// Event is one parsed calendar entry. The JSON field names are the
// output contract; downstream consumers (including the paste command)
// decode exactly this shape.
type Event struct {
	Title    string   `json:"title"`
	Calendar string   `json:"calendar"`
	Date     string   `json:"date"`
	Notes    string   `json:"notes"`
	StartAt  *string  `json:"start_at"`
	EndAt    *string  `json:"end_at"`
	Duration int      `json:"duration"`
	URLs     []string `json:"urls"`
}

// AllDay reports whether the event has no time-of-day component.
func (e *Event) AllDay() bool {
	return e.StartAt == nil
}

// Validate checks the record invariants: a non-empty title, the
// both-or-neither rule for start/end, and zero duration on all-day
// records.
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("Event.Validate: title is empty")
	}
	if (e.StartAt == nil) != (e.EndAt == nil) {
		return fmt.Errorf("Event.Validate: start_at and end_at must be both set or both null")
	}
	if e.StartAt == nil && e.Duration != 0 {
		return fmt.Errorf("Event.Validate: all-day event with nonzero duration %d", e.Duration)
	}
	if e.Duration < 0 {
		// Inverted ranges come straight from the dump; no wraparound
		// correction is applied.
		slog.Debug("event has negative duration", "title", e.Title, "duration", e.Duration)
	}
	return nil
}
