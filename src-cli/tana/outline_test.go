package tana_test

import (
	"encoding/json"
	"testing"

	"github.com/WillPlatnick/calendar-tana/src-cli/model"
	"github.com/WillPlatnick/calendar-tana/src-cli/tana"
)

func strPtr(s string) *string { return &s }

func TestLine(t *testing.T) {
	// case: timed record
	func() {
		event := model.Event{
			Title:   "test2",
			StartAt: strPtr("08:30pm"),
			EndAt:   strPtr("09:30pm"),
		}
		if got := tana.Line(event, "meeting"); got != "- 08:30pm-09:30pm test2 #meeting" {
			t.Errorf("wrong line: %q", got)
		}
	}()

	// case: all-day record keeps the label and an empty end
	func() {
		event := model.Event{Title: "Company holiday"}
		if got := tana.Line(event, "meeting"); got != "- All Day Event- Company holiday #meeting" {
			t.Errorf("wrong line: %q", got)
		}
	}()

	// case: custom tag
	func() {
		event := model.Event{
			Title:   "1:1",
			StartAt: strPtr("02:00pm"),
			EndAt:   strPtr("02:30pm"),
		}
		if got := tana.Line(event, "call"); got != "- 02:00pm-02:30pm 1:1 #call" {
			t.Errorf("wrong line: %q", got)
		}
	}()
}

func TestRender(t *testing.T) {
	// case: one line per record, input order, trailing newline
	func() {
		events := model.Collection{
			{Title: "a", StartAt: strPtr("09:00am"), EndAt: strPtr("10:00am")},
			{Title: "b"},
		}
		want := "- 09:00am-10:00am a #meeting\n- All Day Event- b #meeting\n"
		if got := tana.Render(events, "meeting"); got != want {
			t.Errorf("wrong output:\ngot  %q\nwant %q", got, want)
		}
	}()

	// case: empty collection renders nothing
	func() {
		if got := tana.Render(model.Collection{}, "meeting"); got != "" {
			t.Errorf("empty collection should render nothing: %q", got)
		}
	}()

	// case: saved converter JSON renders after a round trip
	func() {
		payload := `[{"title":"test2","calendar":"","date":"2024-01-15",` +
			`"start_at":"08:30pm","end_at":"09:30pm","duration":60,` +
			`"notes":"notes all day2","urls":[]}]`
		var events model.Collection
		if err := json.Unmarshal([]byte(payload), &events); err != nil {
			t.Fatal(err)
		}
		if got := tana.Render(events, "meeting"); got != "- 08:30pm-09:30pm test2 #meeting\n" {
			t.Errorf("wrong output: %q", got)
		}
	}()
}
