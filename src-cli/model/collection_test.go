package model_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/WillPlatnick/calendar-tana/src-cli/model"
)

func TestCollectionGrouped(t *testing.T) {
	collection := model.Collection{
		{Title: "a", Date: "2024-01-15"},
		{Title: "b", Date: "2024-01-16"},
		{Title: "c", Date: "2024-01-15"},
		{Title: "d", Date: "2024-01-16"},
	}

	grouped := collection.Grouped()
	if len(grouped) != 2 {
		t.Fatalf("got %d keys, want 2", len(grouped))
	}

	// every record lands under its own date, relative order preserved
	day1 := grouped["2024-01-15"]
	if len(day1) != 2 || day1[0].Title != "a" || day1[1].Title != "c" {
		t.Errorf("got %+v", day1)
	}
	day2 := grouped["2024-01-16"]
	if len(day2) != 2 || day2[0].Title != "b" || day2[1].Title != "d" {
		t.Errorf("got %+v", day2)
	}
}

func TestCollectionFlatIdempotent(t *testing.T) {
	collection := model.Collection{
		{Title: "a", Date: "2024-01-15", URLs: []string{}},
		{Title: "b", Date: "2024-01-16", URLs: []string{"https://example.com"}},
	}

	first, err := json.Marshal(collection)
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(collection)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("flat marshal not stable:\n%s\n%s", first, second)
	}
}
