package dateutil

import (
	"fmt"
	"time"
)

// MinutesBetween returns the whole minutes from `start` to `end`, both
// given as 24-hour HH:MM strings. The result is negative when end
// precedes start; no midnight wraparound is applied, so a range like
// "23:30 - 00:15" comes out negative rather than 45.
func MinutesBetween(start, end string) (int, error) {
	startClock, err := time.Parse(LayoutClock, start)
	if err != nil {
		return 0, fmt.Errorf("MinutesBetween: %q does not match %q: %w", start, LayoutClock, ErrFormat)
	}
	endClock, err := time.Parse(LayoutClock, end)
	if err != nil {
		return 0, fmt.Errorf("MinutesBetween: %q does not match %q: %w", end, LayoutClock, ErrFormat)
	}
	return int(endClock.Sub(startClock).Minutes()), nil
}
