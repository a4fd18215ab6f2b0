package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WillPlatnick/calendar-tana/src-cli/agenda"
)

const sampleDump = "2024-01-15:#SS#\n" +
	"Standup (Work)#SEP#09:00 - 09:15\n"

func TestEmitResults(t *testing.T) {
	tokens := agenda.DefaultTokens()

	// case: default mode prints one JSON record per event
	func() {
		var out bytes.Buffer
		if err := emitResults(&out, sampleDump, tokens); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), `"title": "Standup"`) {
			t.Error("record missing from output:", out.String())
		}
	}()

	// case: --raw passes the dump through untouched
	func() {
		rawOutput = true
		defer func() { rawOutput = false }()

		var out bytes.Buffer
		if err := emitResults(&out, sampleDump, tokens); err != nil {
			t.Fatal(err)
		}
		if out.String() != sampleDump {
			t.Error("dump altered on the way through:", out.String())
		}
	}()

	// case: --dump writes the artifact even when --raw short-circuits
	func() {
		tmp := t.TempDir()
		t.Setenv("TMPDIR", tmp)
		rawOutput, saveDump = true, true
		defer func() { rawOutput, saveDump = false, false }()

		var out bytes.Buffer
		if err := emitResults(&out, sampleDump, tokens); err != nil {
			t.Fatal(err)
		}
		matches, err := filepath.Glob(filepath.Join(tmp, "calendar-tana-*.txt"))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 1 {
			t.Error("want one dump artifact, got:", matches)
		}
		if out.String() != sampleDump {
			t.Error("dump altered on the way through:", out.String())
		}
	}()
}
