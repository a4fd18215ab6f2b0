package dateutil

import (
	"fmt"
	"time"
)

// Reformat a date/time string from one Go layout into another. For
// example:
//
//	Reformat("20:30", LayoutClock, LayoutClock12)
//
// returns "08:30pm".
func Reformat(value, sourceLayout, targetLayout string) (string, error) {
	parsed, err := time.Parse(sourceLayout, value)
	if err != nil {
		return "", fmt.Errorf("Reformat: %q does not match %q: %w", value, sourceLayout, ErrFormat)
	}
	return parsed.Format(targetLayout), nil
}
