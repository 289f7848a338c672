package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/submerge/internal/naming"
)

// ErrList is wrapped by every directory listing failure.
var ErrList = errors.New("cannot list directory")

// Entry is one direct child of a listed directory.
type Entry struct {
	Path  string
	IsDir bool // Resolved through symlinks; dangling links count as files.
}

// Name returns the entry's file name.
func (e Entry) Name() string { return filepath.Base(e.Path) }

// List returns the direct entries of dir, unsorted and without recursion.
// Any failure wraps ErrList and is meant to abort the run before anything
// has been merged.
func List(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrList, dir, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		path := filepath.Join(dir, d.Name())
		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			fi, err := os.Stat(path)
			switch {
			case err == nil:
				isDir = fi.IsDir()
			case errors.Is(err, fs.ErrNotExist):
				isDir = false
			default:
				return nil, fmt.Errorf("%w %s: %w", ErrList, dir, err)
			}
		}
		entries = append(entries, Entry{Path: path, IsDir: isDir})
	}
	return entries, nil
}

// FilterTargets drops directories and previously merged outputs from a video
// listing, preserving order. It is idempotent.
func FilterTargets(entries []Entry) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if naming.IsMerged(e.Name()) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// countDirs returns how many entries are directories.
func countDirs(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.IsDir {
			n++
		}
	}
	return n
}
