// The `dateutil` package holds the date/time helpers for the pipeline:
// reformatting between string layouts, week/day boundary timestamps for
// the icalBuddy fetch window, and wall-clock minute arithmetic.
//
// All functions work on strings in and strings out; time.Time never
// leaks into the rest of the pipeline.
package dateutil

import "errors"

const (
	// Calendar date as emitted by the section markers.
	LayoutDate = "2006-01-02"
	// 24-hour zero-padded wall clock, the dump's time-range format.
	LayoutClock = "15:04"
	// 12-hour wall clock with lowercase meridiem, the record format.
	LayoutClock12 = "03:04pm"
	// Fixed zoned timestamp handed to icalBuddy's eventsFrom/to.
	LayoutZoned = "2006-01-02 15:04:05 -0700"
)

// ErrFormat reports a date/time string that does not match the expected
// layout. Callers up the pipeline treat it as fatal for the whole run.
var ErrFormat = errors.New("date/time value does not match layout")
