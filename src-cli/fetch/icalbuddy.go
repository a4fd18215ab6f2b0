// The `fetch` package runs icalBuddy and hands its dump to the parser.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/WillPlatnick/calendar-tana/src-cli/agenda"
	"github.com/google/uuid"
)

// Request describes one icalBuddy invocation.
type Request struct {
	BuddyBin  string
	From      string // zoned timestamp, inclusive start of the window
	To        string // zoned timestamp, inclusive end of the window
	Calendars []string
	Tokens    agenda.Tokens
}

// Args builds the full icalBuddy argument list: no bullets, no
// relative dates, no property names, empty days shown, separate
// date sections, and the marker tokens the parser splits on.
func (r Request) Args() []string {
	args := []string{
		"-b", "",
		"-nrd",
		"-npn",
		"-sed",
		"-sd",
		"-df", "%Y-%m-%d",
		"-tf", "%H:%M",
		"-ps", "|" + r.Tokens.PropertySeparator + "|",
		"-ss", r.Tokens.SectionSeparator,
		"-nnr", r.Tokens.NewlineToken,
		"-iep", "title,datetime,notes",
		"-po", "title,datetime,notes",
	}
	if len(r.Calendars) > 0 {
		args = append(args, "-ic", strings.Join(r.Calendars, ","))
	}
	return append(args, "eventsFrom:"+r.From, "to:"+r.To)
}

// LookupBinary resolves the icalBuddy executable on PATH. The error
// spells out the two usual fixes since a missing binary is the most
// common first-run failure.
func LookupBinary(bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("LookupBinary: %q not found on PATH, `brew install ical-buddy` then run the install command: %w", bin, err)
	}
	return path, nil
}

// Run executes icalBuddy and returns the raw dump.
func Run(ctx context.Context, request Request) (string, error) {
	binPath, err := LookupBinary(request.BuddyBin)
	if err != nil {
		return "", fmt.Errorf("Run: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binPath, request.Args()...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running icalBuddy", "args", cmd.Args)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("Run: icalBuddy failed: %w: %s", err, stderrExcerpt(stderr.String()))
	}
	return stdout.String(), nil
}

// Lines splits a captured dump into a line channel for the parser.
// The channel is closed once the dump is exhausted. Splitting is plain
// byte scanning with no line-length cap; the newline sentinel folds a
// whole notes blob onto one line, which can run well past any fixed
// scanner buffer.
func Lines(dump string) <-chan string {
	lineCh := make(chan string)
	go func() {
		defer close(lineCh)
		for len(dump) > 0 {
			line := dump
			if i := strings.IndexByte(dump, '\n'); i >= 0 {
				line, dump = dump[:i], dump[i+1:]
			} else {
				dump = ""
			}
			lineCh <- strings.TrimSuffix(line, "\r")
		}
	}()
	return lineCh
}

// SaveDump writes the raw dump to a uniquely named file under the
// system temp dir and returns its path.
func SaveDump(dump string) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("calendar-tana-%s.txt", uuid.NewString()))
	if err := os.WriteFile(path, []byte(dump), 0600); err != nil {
		return "", fmt.Errorf("SaveDump: can't write dump file: %w", err)
	}
	return path, nil
}

func stderrExcerpt(stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return "no stderr output"
	}
	if i := strings.IndexByte(stderr, '\n'); i >= 0 {
		stderr = stderr[:i]
	}
	if len(stderr) > 200 {
		stderr = stderr[:200] + "..."
	}
	return stderr
}
