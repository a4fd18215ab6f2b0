// The `tana` package renders event records as Tana Paste outline text.
package tana

import (
	"fmt"
	"strings"

	"github.com/WillPlatnick/calendar-tana/src-cli/model"
)

// AllDayLabel stands in for the start time of records without one.
const AllDayLabel = "All Day Event"

// Line renders one record as a single outline line, ready for pasting
// into Tana. All-day records keep the label where the start time would
// be and an empty end, matching what Tana expects from the importer.
func Line(event model.Event, tag string) string {
	start, end := AllDayLabel, ""
	if !event.AllDay() {
		start = *event.StartAt
		if event.EndAt != nil {
			end = *event.EndAt
		}
	}
	return fmt.Sprintf("- %s-%s %s #%s", start, end, event.Title, tag)
}

// Render renders the whole collection, one line per record, in input
// order.
func Render(events model.Collection, tag string) string {
	var sb strings.Builder
	for _, event := range events {
		sb.WriteString(Line(event, tag))
		sb.WriteByte('\n')
	}
	return sb.String()
}
