package runlock

import (
	"os"
	"testing"
)

func TestAcquireRelease(t *testing.T) {
	dir := t.TempDir()

	lock, err := Acquire(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Acquire(dir); err == nil {
		t.Fatal("second acquire should fail while the lock is held")
	}

	if err := lock.Release(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(lock.Path()); !os.IsNotExist(err) {
		t.Error("lock file left behind after release")
	}

	relock, err := Acquire(dir)
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	if err := relock.Release(); err != nil {
		t.Fatal(err)
	}
}
