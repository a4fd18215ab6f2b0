// The `agenda` package turns an icalBuddy event dump into structured
// event records.
//
// # Notes:
// - icalBuddy already expands recurring events into one line per
//   occurrence, so the parser never deals with recurrence rules.
// - A line before the first date-section marker still produces a
//   record; its date field is simply empty.
// - Lines without a title are dropped silently, everything else that
//   cannot be understood becomes an all-day record rather than an
//   error. Only unparsable time values abort the run.
//
// # Example usage:
//
// Parse lines coming out of the fetcher
//	events, err := agenda.Parse(lineCh, agenda.DefaultTokens())
//
// Parse a whole dump held in memory
//	events, err := agenda.ParseText(dump, agenda.DefaultTokens())

package agenda

import (
	"log/slog"
	"strings"

	"github.com/WillPlatnick/calendar-tana/src-cli/dateutil"
	"github.com/WillPlatnick/calendar-tana/src-cli/model"
	"github.com/WillPlatnick/calendar-tana/src-cli/utils"
	"golang.org/x/text/unicode/norm"
)

// Parser walks a dump line by line. The only state it carries between
// lines is the date of the current section; every event line inherits
// that date until the next marker replaces it.
type Parser struct {
	tokens      Tokens
	currentDate string
	lineCount   int
	dropped     int
}

func NewParser(tokens Tokens) *Parser {
	return &Parser{tokens: tokens}
}

// ParseLine consumes one dump line. A nil event with a nil error means
// the line produced no record (blank line, section marker, empty-day
// marker or a titleless line).
func (p *Parser) ParseLine(line string) (*model.Event, error) {
	p.lineCount++
	classified := classify(strings.TrimSpace(line), p.tokens)
	switch classified.shape {
	case shapeBlank, shapeEmptyDay:
		return nil, nil
	case shapeSectionMarker:
		p.currentDate = classified.date
		return nil, nil
	default:
		return p.buildEvent(classified)
	}
}

// buildEvent turns a classified event line into a validated record.
func (p *Parser) buildEvent(classified classifiedLine) (*model.Event, error) {
	title := strings.TrimSpace(classified.title)
	if title == "" {
		p.dropped++
		slog.Debug("dropping titleless line", "line", p.lineCount)
		return nil, nil
	}
	title, calendar := splitCalendarSuffix(title)

	event := &model.Event{
		Title:    norm.NFC.String(title),
		Calendar: norm.NFC.String(calendar),
		Date:     p.currentDate,
	}

	if match := timeRangePattern.FindStringSubmatch(classified.timeRange); match != nil {
		start := match[1] + ":" + match[2]
		end := match[3] + ":" + match[4]

		duration, err := dateutil.MinutesBetween(start, end)
		if err != nil {
			return nil, NewCustomError("can't compute duration", err, map[string]any{
				"line":  p.lineCount,
				"value": classified.timeRange,
			})
		}
		startAt, err := dateutil.Reformat(start, dateutil.LayoutClock, dateutil.LayoutClock12)
		if err != nil {
			return nil, NewCustomError("can't reformat start time", err, map[string]any{
				"line":  p.lineCount,
				"value": start,
			})
		}
		endAt, err := dateutil.Reformat(end, dateutil.LayoutClock, dateutil.LayoutClock12)
		if err != nil {
			return nil, NewCustomError("can't reformat end time", err, map[string]any{
				"line":  p.lineCount,
				"value": end,
			})
		}
		event.StartAt = &startAt
		event.EndAt = &endAt
		event.Duration = duration
	}

	if classified.notes != "" {
		notes := strings.ReplaceAll(classified.notes, p.tokens.NewlineToken, "\n")
		event.Notes = norm.NFC.String(notes)
	}
	event.URLs = utils.ExtractURLs(event.Notes)

	if err := event.Validate(); err != nil {
		return nil, NewCustomError("invalid event record", err, map[string]any{
			"line":  p.lineCount,
			"title": event.Title,
		})
	}
	return event, nil
}

// splitCalendarSuffix splits "Standup (Work)" into "Standup" and
// "Work". A title without the trailing parenthesized group is returned
// as-is with an empty calendar name.
func splitCalendarSuffix(title string) (string, string) {
	if !strings.HasSuffix(title, ")") {
		return title, ""
	}
	open := strings.LastIndex(title, " (")
	if open < 1 {
		return title, ""
	}
	calendar := title[open+2 : len(title)-1]
	if calendar == "" {
		return title, ""
	}
	return title[:open], calendar
}

// Parse consumes lines from the channel in order and returns one
// record per event line. The channel is expected to be closed by the
// producer once the dump is exhausted.
func Parse(lineCh <-chan string, tokens Tokens) (model.Collection, error) {
	parser := NewParser(tokens)
	events := make(model.Collection, 0)
	for line := range lineCh {
		event, err := parser.ParseLine(line)
		if err != nil {
			// drain, so the producer can finish and close the channel
			for range lineCh {
			}
			return nil, err
		}
		if event != nil {
			events = append(events, *event)
		}
	}
	if parser.dropped > 0 {
		slog.Debug("dropped titleless lines", "count", parser.dropped)
	}
	return events, nil
}

// ParseText parses a whole dump held in one string, mostly for replay
// of a saved raw dump. Lines are split without a length cap, matching
// the channel path.
func ParseText(text string, tokens Tokens) (model.Collection, error) {
	parser := NewParser(tokens)
	events := make(model.Collection, 0)

	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		event, err := parser.ParseLine(strings.TrimSuffix(line, "\r"))
		if err != nil {
			return nil, err
		}
		if event != nil {
			events = append(events, *event)
		}
	}
	if parser.dropped > 0 {
		slog.Debug("dropped titleless lines", "count", parser.dropped)
	}
	return events, nil
}
