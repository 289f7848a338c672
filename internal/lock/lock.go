// Package lock guards a target directory against two concurrent submerge
// runs writing the same merged outputs.
package lock

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("another submerge run is using this target directory")

// Lock is a held advisory lock for one target directory.
type Lock struct {
	path string
	fl   *flock.Flock
}

// PathFor returns the lock file used for dir. It lives under the OS temp
// directory, never inside dir, so it cannot show up in the video listing.
func PathFor(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(abs))
	return filepath.Join(os.TempDir(), fmt.Sprintf("submerge-%016x.lock", h.Sum64())), nil
}

// Acquire takes the lock for dir without blocking.
func Acquire(dir string) (*Lock, error) {
	path, err := PathFor(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve lock path: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.path }

// Release unlocks and removes the lock file.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return err
	}
	_ = os.Remove(l.path)
	return nil
}
