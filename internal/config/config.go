// Package config holds runtime configuration: defaults, an optional TOML
// defaults file, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// MergedSuffix marks a file as the output of a previous merge. Target files
// whose stem ends with it are never paired again.
const MergedSuffix = "_merged"

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// by [LoadFile] and [ApplyFlags], validated once, and passed by pointer to
// every component. Nothing mutates it after [Config.Validate].
type Config struct {
	// Paths.
	SourceDir string // Directory of subtitle files.
	TargetDir string // Directory of video files; merged outputs land here.

	// Mux settings.
	Language  string // Subtitle language tag; empty disables the metadata flag.
	Offset    *int   // -itsoffset value in seconds. Positive shifts subtitles earlier.
	StopAfter int    // Stop after this many pairs; 0 means no limit.
	Overwrite bool   // Pass -y to ffmpeg.
	FFmpegBin string // Default: "ffmpeg".

	// Behavior flags.
	DryRun    bool // Print the pairing and commands; run nothing.
	KeepGoing bool // Continue with the next pair when ffmpeg exits non-zero.

	// Display and logging.
	Verbose    bool      // Stream ffmpeg output and enable debug logs.
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run --check diagnostics and exit.
	ConfigFile string    // Resolved TOML file, empty when none was read.

	languageSet bool // --language given on the CLI or in the config file.
}

// DefaultConfig returns a Config with built-in defaults. Used as the base
// before the config file and CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		FFmpegBin: "ffmpeg",
		ColorMode: ColorAuto,
	}
}

// HasLanguageMetadata reports whether a language metadata flag should be
// emitted, i.e. whether Language is non-empty after trimming.
func (c *Config) HasLanguageMetadata() bool {
	return strings.TrimSpace(c.Language) != ""
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and range fields. When not in CheckOnly mode it also
// requires both directories and an explicit (possibly empty) language.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.StopAfter < 0 {
		return errors.New("exit count must not be negative")
	}
	if strings.TrimSpace(c.FFmpegBin) == "" {
		return errors.New("ffmpeg binary must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.SourceDir == "" {
		return errors.New(`required flag "source-dir" not set`)
	}
	if c.TargetDir == "" {
		return errors.New(`required flag "target-dir" not set`)
	}
	if !c.languageSet {
		return errors.New(`required flag "language" not set (pass --language "" to omit the tag)`)
	}
	return nil
}
