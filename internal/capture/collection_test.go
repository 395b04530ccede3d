package capture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeCapture creates a capture file named stem.iiq under dir and returns
// its path.
func writeCapture(t *testing.T, dir, stem, content string) string {
	t.Helper()
	path := filepath.Join(dir, stem+".iiq")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func stampTime(t *testing.T, stamp string) time.Time {
	t.Helper()
	ts, err := ParseStamp(stamp)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestBuildSortsByTimestamp(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeCapture(t, dir, "240101_120005000", "x"),
		writeCapture(t, dir, "240101_120001000", "x"),
		writeCapture(t, dir, "240101_120003000", "x"),
	}

	col, err := Build(paths)
	if err != nil {
		t.Fatal(err)
	}
	if col.Len() != 3 {
		t.Fatalf("len: got %d", col.Len())
	}
	for i := 1; i < col.Len(); i++ {
		if col.Frame(i).Timestamp.Before(col.Frame(i - 1).Timestamp) {
			t.Fatalf("frames out of order at %d", i)
		}
	}
	if col.Frame(0).Stem != "240101_120001000" {
		t.Errorf("first frame: got %q", col.Frame(0).Stem)
	}
}

func TestBuildStableOnEqualTimestamps(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeCapture(t, dir, "240101_120000000_0002", "x"),
		writeCapture(t, dir, "240101_120000000_0001", "x"),
	}

	col, err := Build(paths)
	if err != nil {
		t.Fatal(err)
	}
	// Identical timestamps keep input order.
	if col.Frame(0).Stem != "240101_120000000_0002" {
		t.Errorf("stable order broken: got %q first", col.Frame(0).Stem)
	}
}

func TestBuildFailsWhole(t *testing.T) {
	dir := t.TempDir()
	good := writeCapture(t, dir, "240101_120000000", "x")
	bad := writeCapture(t, dir, "not-a-stamp", "x")

	if _, err := Build([]string{good, bad}); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestNearestTo(t *testing.T) {
	dir := t.TempDir()
	col, err := Build([]string{
		writeCapture(t, dir, "240101_120000100", "x"),
		writeCapture(t, dir, "240101_120000300", "x"),
		writeCapture(t, dir, "240101_120001000", "x"),
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"exact match", "240101_120000300", 1},
		{"closest below", "240101_120000350", 1},
		{"closest above", "240101_120000900", 2},
		{"before first", "240101_115959000", 0},
		{"after last", "240101_120002000", 2},
		// Equidistant between 100ms and 300ms: the earlier frame wins.
		{"tie prefers earlier", "240101_120000200", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := col.NearestTo(stampTime(t, tc.target))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got index %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNearestToEmpty(t *testing.T) {
	var col Collection
	if _, err := col.NearestTo(time.Now()); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
}

func TestPartition(t *testing.T) {
	dir := t.TempDir()
	col, err := Build([]string{
		writeCapture(t, dir, "240101_120000000", "x"),
		writeCapture(t, dir, "240101_120001000", ""),
		writeCapture(t, dir, "240101_120002000", "x"),
		writeCapture(t, dir, "240101_120003000", ""),
	})
	if err != nil {
		t.Fatal(err)
	}

	empty, rest := col.Partition(Frame.Empty)

	if empty.Len() != 2 || rest.Len() != 2 {
		t.Fatalf("split sizes: got %d/%d", empty.Len(), rest.Len())
	}
	if empty.Len()+rest.Len() != col.Len() {
		t.Fatal("partition lost frames")
	}
	for i := 0; i < empty.Len(); i++ {
		if !empty.Frame(i).Empty() {
			t.Errorf("non-empty frame %q in empty partition", empty.Frame(i).Stem)
		}
	}
	for i := 0; i < rest.Len(); i++ {
		if rest.Frame(i).Empty() {
			t.Errorf("empty frame %q in remainder", rest.Frame(i).Stem)
		}
	}
	for _, part := range []Collection{empty, rest} {
		for i := 1; i < part.Len(); i++ {
			if part.Frame(i).Timestamp.Before(part.Frame(i - 1).Timestamp) {
				t.Fatal("partition broke sort order")
			}
		}
	}
	// The receiver is untouched.
	if col.Len() != 4 {
		t.Fatalf("original collection mutated: len %d", col.Len())
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	late := writeCapture(t, dir, "240101_120001000", "x")
	early := writeCapture(t, dir, "240101_120000000", "x")

	col, err := Build([]string{late, early})
	if err != nil {
		t.Fatal(err)
	}
	paths := col.Paths()
	if len(paths) != 2 || paths[0] != early || paths[1] != late {
		t.Fatalf("paths out of order: %v", paths)
	}
}
