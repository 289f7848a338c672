package ffmpeg

import (
	"strconv"
	"strings"

	"github.com/backmassage/submerge/internal/config"
)

// languageStreamSpec addresses the subtitle stream whose language is set.
const languageStreamSpec = "-metadata:s:s:1"

// MergeInputs names the three paths of one merge.
type MergeInputs struct {
	Video    string
	Subtitle string
	Output   string
}

// Command is a program plus its discrete argument vector. It is never joined
// into a shell string.
type Command struct {
	Program string
	Args    []string
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// String renders the command for display only, quoting arguments that
// contain spaces or quotes.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, a := range c.Argv() {
		if a == "" || strings.ContainsAny(a, " \t\"'\\$`") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Build constructs the ffmpeg command for one merge. The result is fully
// determined by cfg (Overwrite, Offset, Language, FFmpegBin) and in.
func Build(cfg *config.Config, in MergeInputs) Command {
	args := make([]string, 0, 18)

	// --- Preamble ---
	if cfg.Overwrite {
		args = append(args, "-y")
	}
	if cfg.Offset != nil {
		args = append(args, "-itsoffset", strconv.Itoa(*cfg.Offset))
	}

	// --- Inputs: video first, subtitle second ---
	args = append(args, "-i", in.Video, "-i", in.Subtitle)

	// --- Stream maps: everything from both inputs ---
	args = append(args, "-map", "0", "-map", "1")

	// --- Codec: remux only ---
	args = append(args, "-c", "copy")

	// --- Metadata ---
	if cfg.HasLanguageMetadata() {
		args = append(args, languageStreamSpec, "language="+strings.TrimSpace(cfg.Language))
	}

	// --- Output ---
	args = append(args, in.Output)

	return Command{Program: cfg.FFmpegBin, Args: args}
}
