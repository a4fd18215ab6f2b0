package utils_test

import (
	"testing"

	"github.com/WillPlatnick/calendar-tana/src-cli/utils"
)

func TestExtractURLs(t *testing.T) {
	// case: mixed text, duplicate URL collapsed, first-seen order kept
	notes := "agenda: https://example.com/standup\n" +
		"zoom: https://zoom.us/j/123?pwd=abc\n" +
		"again https://example.com/standup and done"
	urls := utils.ExtractURLs(notes)
	if len(urls) != 2 {
		t.Fatalf("got %d urls, want 2: %v", len(urls), urls)
	}
	if urls[0] != "https://example.com/standup" {
		t.Errorf("got %q", urls[0])
	}
	if urls[1] != "https://zoom.us/j/123?pwd=abc" {
		t.Errorf("got %q", urls[1])
	}

	// case: plain http scheme counts too
	urls = utils.ExtractURLs("see http://example.org/page for details")
	if len(urls) != 1 || urls[0] != "http://example.org/page" {
		t.Errorf("got %v", urls)
	}

	// case: no URLs yields an empty, non-nil slice
	urls = utils.ExtractURLs("nothing to see here")
	if urls == nil {
		t.Error("want non-nil slice")
	}
	if len(urls) != 0 {
		t.Errorf("got %v, want empty", urls)
	}
}
