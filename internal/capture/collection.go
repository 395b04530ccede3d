package capture

import (
	"errors"
	"sort"
	"time"
)

// ErrEmptyCollection marks nearest-neighbor lookups against a collection
// with no frames.
var ErrEmptyCollection = errors.New("collection is empty")

// Collection is a channel's frames held sorted ascending by timestamp.
// Frames with identical timestamps keep their input order (the sort is
// stable), which keeps repeat runs deterministic.
type Collection struct {
	frames []Frame
}

// Build parses every path into a Frame and sorts the result by timestamp.
// Any parse or metadata failure aborts the whole build; there is no partial
// collection.
func Build(paths []string) (Collection, error) {
	frames := make([]Frame, 0, len(paths))
	for _, path := range paths {
		frame, err := NewFrame(path)
		if err != nil {
			return Collection{}, err
		}
		frames = append(frames, frame)
	}
	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].Timestamp.Before(frames[j].Timestamp)
	})
	return Collection{frames: frames}, nil
}

// Len returns the number of frames.
func (c Collection) Len() int { return len(c.frames) }

// Frame returns the frame at index i.
func (c Collection) Frame(i int) Frame { return c.frames[i] }

// Paths projects the collection onto its file paths, in timestamp order.
func (c Collection) Paths() []string {
	paths := make([]string, len(c.frames))
	for i, frame := range c.frames {
		paths[i] = frame.Path
	}
	return paths
}

// NearestTo returns the index of the frame whose timestamp is closest to
// target. On a tie in distance the earlier-in-time frame wins. Fails with
// ErrEmptyCollection when the collection has no frames.
func (c Collection) NearestTo(target time.Time) (int, error) {
	if len(c.frames) == 0 {
		return 0, ErrEmptyCollection
	}

	low, high := 0, len(c.frames)-1
	best := -1
	var bestDiff time.Duration

	for low <= high {
		mid := low + (high-low)/2
		ts := c.frames[mid].Timestamp
		diff := absDuration(ts.Sub(target))
		if diff == 0 {
			return mid, nil
		}
		if best < 0 || diff < bestDiff || (diff == bestDiff && ts.Before(target)) {
			best, bestDiff = mid, diff
		}
		if ts.Before(target) {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return best, nil
}

// Partition splits the collection into the frames satisfying pred and the
// remainder. The receiver is left untouched and both results stay sorted.
func (c Collection) Partition(pred func(Frame) bool) (matching, remainder Collection) {
	var hit, miss []Frame
	for _, frame := range c.frames {
		if pred(frame) {
			hit = append(hit, frame)
		} else {
			miss = append(miss, frame)
		}
	}
	return Collection{frames: hit}, Collection{frames: miss}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
