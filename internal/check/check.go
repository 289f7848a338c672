// Package check provides system diagnostics (--check mode): whether the
// configured ffmpeg can be found and supports what a subtitle remux needs.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/submerge/internal/config"
)

// ErrFfmpegNotFound is returned by CheckDeps when the ffmpeg binary is missing.
var ErrFfmpegNotFound = errors.New("ffmpeg not found")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Formats a remux commonly needs: subtitle demuxers and container muxers.
var (
	subtitleDemuxers = []string{"srt", "ass", "webvtt"}
	containerMuxers  = []string{"matroska", "mp4"}
)

// RunCheck prints the availability of ffmpeg, its version, and the subtitle
// and container formats it reports. It returns false when ffmpeg is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	if err := CheckDeps(cfg); err != nil {
		log.Error("%v", err)
		return false
	}
	checkVersion(cfg.FFmpegBin, log)
	checkFormats(cfg.FFmpegBin, "-demuxers", "demuxer", subtitleDemuxers, log)
	checkFormats(cfg.FFmpegBin, "-muxers", "muxer", containerMuxers, log)
	return true
}

// CheckDeps verifies the configured ffmpeg binary resolves on PATH (or as a
// path).
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFmpegBin); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrFfmpegNotFound, cfg.FFmpegBin, err)
	}
	return nil
}

// checkVersion logs the first line of `ffmpeg -version`.
func checkVersion(bin string, log Logger) {
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	log.Success("ffmpeg: %s", firstLine(string(out)))
}

// checkFormats lists ffmpeg's muxers or demuxers and logs whether each
// wanted format is present.
func checkFormats(bin, flag, kind string, wanted []string, log Logger) {
	out, err := exec.Command(bin, "-hide_banner", flag).Output()
	if err != nil {
		log.Warn("Could not list %ss: %v", kind, err)
		return
	}
	have := ParseFormats(string(out))
	for _, name := range wanted {
		if have[name] {
			log.Success("%s %s available", kind, name)
		} else {
			log.Warn("%s %s not available", kind, name)
		}
	}
}

// ParseFormats extracts format names from `ffmpeg -muxers` / `-demuxers`
// output. Data lines look like " DE matroska,webm   Matroska / WebM";
// comma-separated aliases are all recorded.
func ParseFormats(out string) map[string]bool {
	formats := make(map[string]bool)
	pastHeader := false
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "--" {
			pastHeader = true
			continue
		}
		if !pastHeader || trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			continue
		}
		for _, name := range strings.Split(fields[1], ",") {
			formats[name] = true
		}
	}
	return formats
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}
