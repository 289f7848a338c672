package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/submerge/internal/config"
)

// ErrMalformedPath is returned when a path lacks the stem or extension needed
// to derive a merged output name.
var ErrMalformedPath = errors.New("malformed path")

// SplitName splits a file name (no directory) into stem and extension, the
// latter without its dot. hasExt is false when there is no extension dot.
func SplitName(base string) (stem, ext string, hasExt bool) {
	if base == "." || base == ".." {
		return "", "", false
	}
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return base, "", false
	}
	return base[:idx], base[idx+1:], true
}

// IsMerged reports whether the file name's stem ends with the reserved merged
// suffix. The match is case-sensitive and ignores the extension.
func IsMerged(base string) bool {
	stem, _, _ := SplitName(base)
	return strings.HasSuffix(stem, config.MergedSuffix)
}

// MergedOutputPath returns <parent>/<stem>_merged.<ext> for a video path.
// It fails with ErrMalformedPath when the file name has no stem or no
// (non-empty) extension.
func MergedOutputPath(video string) (string, error) {
	base := filepath.Base(video)
	stem, ext, hasExt := SplitName(base)
	if stem == "" || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q has no file stem", ErrMalformedPath, video)
	}
	if !hasExt || ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrMalformedPath, video)
	}
	return filepath.Join(filepath.Dir(video), stem+config.MergedSuffix+"."+ext), nil
}
