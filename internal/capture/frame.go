package capture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrParse marks filenames whose stem does not carry a valid capture
// timestamp prefix.
var ErrParse = errors.New("timestamp parse error")

// stampLen is the length of the timestamp prefix: yyMMdd_HHmmssSSS.
const stampLen = 16

// stampLayout covers the prefix up to whole seconds; the trailing three
// digits are milliseconds and are parsed separately because Go's reference
// layout cannot express fractional seconds without a separator.
const stampLayout = "060102_150405"

// Frame is one capture file: its location on disk, the acquisition timestamp
// derived from the filename, and the byte size read at construction time.
// A Frame is immutable once built.
type Frame struct {
	Path      string
	Name      string
	Stem      string
	Timestamp time.Time
	Size      int64
}

// NewFrame stats path and parses the timestamp prefix from its stem.
func NewFrame(path string) (Frame, error) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	ts, err := ParseStamp(stem)
	if err != nil {
		return Frame{}, fmt.Errorf("%s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Frame{}, fmt.Errorf("read metadata for %s: %w", path, err)
	}

	return Frame{
		Path:      path,
		Name:      name,
		Stem:      stem,
		Timestamp: ts,
		Size:      info.Size(),
	}, nil
}

// Empty reports whether the file held zero bytes when the frame was built.
func (f Frame) Empty() bool { return f.Size == 0 }

// ParseStamp decodes the capture instant from the first sixteen characters
// of a filename stem.
func ParseStamp(stem string) (time.Time, error) {
	if len(stem) < stampLen {
		return time.Time{}, fmt.Errorf("%w: stem %q is shorter than %d characters", ErrParse, stem, stampLen)
	}
	prefix := stem[:stampLen]

	base, err := time.Parse(stampLayout, prefix[:len(stampLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrParse, prefix, err)
	}

	millis := 0
	for _, c := range prefix[len(stampLayout):] {
		if c < '0' || c > '9' {
			return time.Time{}, fmt.Errorf("%w: %q: milliseconds are not numeric", ErrParse, prefix)
		}
		millis = millis*10 + int(c-'0')
	}

	return base.Add(time.Duration(millis) * time.Millisecond), nil
}

// FormatStamp renders ts in the filename prefix form, the inverse of
// ParseStamp for millisecond-precision times.
func FormatStamp(ts time.Time) string {
	return fmt.Sprintf("%s%03d", ts.Format(stampLayout), ts.Nanosecond()/int(time.Millisecond))
}
