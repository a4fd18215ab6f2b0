package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/WillPlatnick/calendar-tana/src-cli/model"
)

func strPtr(s string) *string { return &s }

func TestEventValidate(t *testing.T) {
	// case: a well-formed timed record
	event := model.Event{
		Title:    "Standup",
		Calendar: "Work",
		Date:     "2024-01-15",
		StartAt:  strPtr("08:30pm"),
		EndAt:    strPtr("09:30pm"),
		Duration: 60,
		URLs:     []string{},
	}
	if err := event.Validate(); err != nil {
		t.Error(err)
	}

	// case: a well-formed all-day record
	event = model.Event{Title: "Holiday", Date: "2024-01-15", URLs: []string{}}
	if err := event.Validate(); err != nil {
		t.Error(err)
	}
	if !event.AllDay() {
		t.Error("want all-day")
	}

	// case: empty title rejected
	event = model.Event{Date: "2024-01-15"}
	if err := event.Validate(); err == nil {
		t.Error("want error for empty title")
	}

	// case: one-sided time range rejected
	event = model.Event{Title: "Broken", StartAt: strPtr("08:30pm")}
	if err := event.Validate(); err == nil {
		t.Error("want error for start without end")
	}
	event = model.Event{Title: "Broken", EndAt: strPtr("09:30pm")}
	if err := event.Validate(); err == nil {
		t.Error("want error for end without start")
	}

	// case: all-day with leftover duration rejected
	event = model.Event{Title: "Broken", Duration: 30}
	if err := event.Validate(); err == nil {
		t.Error("want error for all-day nonzero duration")
	}
}

func TestEventJSONShape(t *testing.T) {
	// case: all-day record emits null times and an empty urls array
	event := model.Event{
		Title:    "Holiday",
		Calendar: "",
		Date:     "2024-01-15",
		URLs:     []string{},
	}
	data, err := json.Marshal(&event)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"start_at":null`, `"end_at":null`, `"duration":0`, `"urls":[]`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("marshaled %s missing %s", data, want)
		}
	}

	// case: timed record round trips through the wire shape
	event = model.Event{
		Title:    "test2",
		Date:     "2024-01-15",
		Notes:    "notes all day2",
		StartAt:  strPtr("08:30pm"),
		EndAt:    strPtr("09:30pm"),
		Duration: 60,
		URLs:     []string{"https://example.com"},
	}
	data, err = json.Marshal(&event)
	if err != nil {
		t.Fatal(err)
	}
	var decoded model.Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.StartAt == nil || *decoded.StartAt != "08:30pm" {
		t.Errorf("got %+v", decoded.StartAt)
	}
	if decoded.Duration != 60 || decoded.Title != "test2" {
		t.Errorf("got %+v", decoded)
	}
}
