package config

// This file binds CLI flags onto a pflag.FlagSet. Values land in FlagValues
// first and are copied into Config by ApplyFlags, so that a flag only
// overrides the defaults and the config file when the user actually passed it.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// FlagValues holds raw flag values captured during parsing.
type FlagValues struct {
	stopAfter  uint
	language   string
	offset     int
	sourceDir  string
	targetDir  string
	verbose    bool
	yes        bool
	dryRun     bool
	keepGoing  bool
	ffmpegBin  string
	configFile string
	color      ColorMode
	logFile    string
	checkOnly  bool
}

// ConfigFile returns the --config value, needed before ApplyFlags runs.
func (v *FlagValues) ConfigFile() string { return v.configFile }

// BindFlags registers every submerge flag on fs.
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	defaults := DefaultConfig()
	v := &FlagValues{color: defaults.ColorMode, ffmpegBin: defaults.FFmpegBin}

	defineMuxFlags(fs, v)
	definePathFlags(fs, v)
	defineBehaviorFlags(fs, v)
	defineDisplayFlags(fs, v)
	return v
}

// defineMuxFlags registers -e/--exit, -l/--language, -o/--offset, -y/--yes, --ffmpeg.
func defineMuxFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.UintVarP(&v.stopAfter, "exit", "e", 0, "Exit after the nth pair was processed (0 = all)")
	fs.UintVar(&v.stopAfter, "limit", 0, "Same as --exit")
	fs.StringVarP(&v.language, "language", "l", "", "Subtitle language, e.g. a 3-letter ISO 639-2 code (may be empty)")
	fs.IntVarP(&v.offset, "offset", "o", 0, "Subtitle offset in seconds; +N shows subtitles earlier, -N later")
	fs.BoolVarP(&v.yes, "yes", "y", false, "Overwrite existing merged output (adds -y to ffmpeg)")
	fs.StringVar(&v.ffmpegBin, "ffmpeg", v.ffmpegBin, "ffmpeg binary to invoke")
}

// definePathFlags registers -s/--source-dir and -t/--target-dir.
func definePathFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.StringVarP(&v.sourceDir, "source-dir", "s", "", "Directory containing the subtitle files")
	fs.StringVarP(&v.targetDir, "target-dir", "t", "", "Directory containing the video files")
}

// defineBehaviorFlags registers -n/--dry-run, --keep-going, -c/--config.
func defineBehaviorFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.BoolVarP(&v.dryRun, "dry-run", "n", false, "Print the pairing and ffmpeg commands; run nothing")
	fs.BoolVar(&v.keepGoing, "keep-going", false, "Continue with the next pair when ffmpeg fails")
	fs.StringVarP(&v.configFile, "config", "c", "", "TOML defaults file (default: "+DefaultConfigPath()+")")
}

// defineDisplayFlags registers -v/--verbose, --color, --log, --check.
func defineDisplayFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.BoolVarP(&v.verbose, "verbose", "v", false, "Verbose output including all ffmpeg output")
	fs.Var(&colorModeValue{&v.color}, "color", "Console colors: auto | always | never")
	fs.StringVar(&v.logFile, "log", "", "Append logs to file")
	fs.BoolVar(&v.checkOnly, "check", false, "Run ffmpeg diagnostics and exit")
}

// ApplyFlags copies every flag the user set on fs into cfg.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet, v *FlagValues) {
	if fs.Changed("exit") || fs.Changed("limit") {
		cfg.StopAfter = int(v.stopAfter)
	}
	if fs.Changed("language") {
		cfg.Language = v.language
		cfg.languageSet = true
	}
	if fs.Changed("offset") {
		offset := v.offset
		cfg.Offset = &offset
	}
	if fs.Changed("source-dir") {
		cfg.SourceDir = NormalizeDirArg(v.sourceDir)
	}
	if fs.Changed("target-dir") {
		cfg.TargetDir = NormalizeDirArg(v.targetDir)
	}
	if fs.Changed("yes") {
		cfg.Overwrite = v.yes
	}
	if fs.Changed("ffmpeg") {
		cfg.FFmpegBin = v.ffmpegBin
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = v.dryRun
	}
	if fs.Changed("keep-going") {
		cfg.KeepGoing = v.keepGoing
	}
	if fs.Changed("verbose") {
		cfg.Verbose = v.verbose
	}
	if fs.Changed("color") {
		cfg.ColorMode = v.color
	}
	if fs.Changed("log") {
		cfg.LogFile = v.logFile
	}
	if fs.Changed("check") {
		cfg.CheckOnly = v.checkOnly
	}
}

// pflag.Value adapter so ColorMode can be used with fs.Var.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
