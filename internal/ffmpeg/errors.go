package ffmpeg

import (
	"fmt"
	"regexp"
	"strings"
)

// SpawnError reports that the ffmpeg process could not be started at all
// (binary missing, not executable). It is fatal for the run.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot start %s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError reports that ffmpeg ran but exited non-zero, meaning the merge
// did not produce a usable output.
type ExitError struct {
	Program  string
	ExitCode int
	Stderr   string // Last lines of ffmpeg's stderr.
	Hint     string // Known cause, empty when unrecognized.
	Err      error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Program, e.ExitCode)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// Pre-compiled regexes for classifying ffmpeg stderr into known remux
// failures. Checked in order by [Diagnose]; the first match wins.
var (
	reOutputExists = regexp.MustCompile(
		`already exists\. Overwrite\?|already exists\. Exiting\.`)

	reSubtitleCodec = regexp.MustCompile(
		`(?i)Subtitle codec .* is not supported|` +
			`Could not find tag for codec .* in stream .*subtitle|` +
			`codec not currently supported in container`)

	reInvalidInput = regexp.MustCompile(
		`Invalid data found when processing input`)

	reTimestampIssue = regexp.MustCompile(
		`(?i)Non-monotonous DTS|non monotonically increasing dts|` +
			`Timestamps are unset`)
)

// Diagnose maps ffmpeg stderr to a short human-readable cause, or "" when
// nothing known matches.
func Diagnose(stderr string) string {
	switch {
	case reOutputExists.MatchString(stderr):
		return "output exists; pass --yes to overwrite"
	case reSubtitleCodec.MatchString(stderr):
		return "subtitle codec not supported by the output container"
	case reInvalidInput.MatchString(stderr):
		return "an input is not a readable media file"
	case reTimestampIssue.MatchString(stderr):
		return "timestamp problems in the source"
	}
	return ""
}

// tailLines returns at most n trailing non-empty lines of s.
func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	kept := make([]string, 0, n)
	for i := len(lines) - 1; i >= 0 && len(kept) < n; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		kept = append(kept, lines[i])
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, "\n")
}
