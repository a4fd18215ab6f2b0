package agenda

import (
	"regexp"
	"strings"
)

// Tokens holds the marker strings the dump was produced with. The
// fetcher passes the same values to icalBuddy, so both sides of the
// pipe always agree on where fields begin and end.
type Tokens struct {
	PropertySeparator string
	SectionSeparator  string
	NewlineToken      string
}

func DefaultTokens() Tokens {
	return Tokens{
		PropertySeparator: "#SEP#",
		SectionSeparator:  "#SS#",
		NewlineToken:      "#NNR#",
	}
}

// icalBuddy prints this single word for a day that has no events.
const emptyDayMarker = "Nothing."

// strict 24-hour range, e.g. "20:30 - 21:30"
var timeRangePattern = regexp.MustCompile(`^(\d{2}):(\d{2}) - (\d{2}):(\d{2})$`)

type lineShape int

const (
	shapeBlank lineShape = iota
	shapeSectionMarker
	shapeEmptyDay
	shapeTitleTimeNotes
	shapeTitleTime
	shapeTitleNotes
	shapeTitleOnly
)

// classifiedLine is one dump line broken into its raw fields. Which
// fields are set depends on the shape; nothing is normalized yet.
type classifiedLine struct {
	shape     lineShape
	date      string
	title     string
	timeRange string
	notes     string
}

// classify decides which of the seven line shapes a trimmed dump line
// has and slices out the raw fields. The order of the checks matters:
// a section marker wins over everything else, and a line with two or
// more property separators is always title|time|notes even when the
// middle field later turns out not to be a valid time range.
func classify(line string, tokens Tokens) classifiedLine {
	switch {
	case line == "":
		return classifiedLine{shape: shapeBlank}
	case strings.HasSuffix(line, tokens.SectionSeparator):
		date := strings.TrimSuffix(line, tokens.SectionSeparator)
		date = strings.TrimSuffix(strings.TrimSpace(date), ":")
		return classifiedLine{shape: shapeSectionMarker, date: date}
	case line == emptyDayMarker:
		return classifiedLine{shape: shapeEmptyDay}
	}

	sep := tokens.PropertySeparator
	first := strings.Index(line, sep)
	if first < 0 {
		return classifiedLine{shape: shapeTitleOnly, title: line}
	}

	if last := strings.LastIndex(line, sep); last != first {
		return classifiedLine{
			shape:     shapeTitleTimeNotes,
			title:     line[:first],
			timeRange: line[first+len(sep) : last],
			notes:     line[last+len(sep):],
		}
	}

	tail := line[first+len(sep):]
	if timeRangePattern.MatchString(tail) {
		return classifiedLine{shape: shapeTitleTime, title: line[:first], timeRange: tail}
	}
	return classifiedLine{shape: shapeTitleNotes, title: line[:first], notes: tail}
}
