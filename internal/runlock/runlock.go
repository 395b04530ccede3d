// Package runlock enforces single-instance execution per capture directory.
//
// Two ixmatch invocations renaming files under the same directory tree
// would race each other, so the workflow takes an advisory file lock on the
// capture directory before any move.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockName = ".ixmatch.lock"

// Lock is a held advisory lock on a capture directory.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes the lock for dir without blocking. It fails when another
// process already holds it.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, lockName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("another ixmatch run holds %s", path)
	}
	return &Lock{fl: fl, path: path}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string { return l.path }

// Release drops the lock and removes the lock file.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("release run lock %s: %w", l.path, err)
	}
	// Removal is best effort; a stale empty lock file is harmless.
	_ = os.Remove(l.path)
	return nil
}
