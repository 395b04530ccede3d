package matching

import (
	"time"

	"ixmatch/internal/capture"
)

// Pair associates one frame from channel A with one from channel B by index
// into the respective collection. An index of -1 means that side has no
// partner; Delta is meaningful only when both sides are present.
type Pair struct {
	A     int
	B     int
	Delta time.Duration
}

// HasA reports whether the pair carries an A-side frame.
func (p Pair) HasA() bool { return p.A >= 0 }

// HasB reports whether the pair carries a B-side frame.
func (p Pair) HasB() bool { return p.B >= 0 }

// Complete reports whether both sides are present.
func (p Pair) Complete() bool { return p.A >= 0 && p.B >= 0 }

// Join computes a greedy one-to-one nearest-neighbor assignment between the
// two channels. The shorter collection drives the lookups; the longer (on a
// length tie, B) is the target, and every target frame appears in exactly one
// returned pair.
//
// A driver frame claims a target slot only when its delta is strictly smaller
// than the slot's current best, so on exact ties the earliest-processed
// driver keeps the claim. Driver frames that never win a slot are absent from
// the result entirely; they are not reported as unmatched. Callers that need
// both-side totals must take them from the input collections.
//
// When both channels are empty the result is empty. When exactly one is
// empty the join cannot proceed and fails with capture.ErrEmptyCollection.
func Join(a, b capture.Collection) ([]Pair, error) {
	if a.Len() == 0 && b.Len() == 0 {
		return nil, nil
	}
	if a.Len() == 0 || b.Len() == 0 {
		return nil, capture.ErrEmptyCollection
	}

	driver, target := a, b
	aDrives := true
	if a.Len() > b.Len() {
		driver, target = b, a
		aDrives = false
	}

	type slot struct {
		driver int
		delta  time.Duration
	}
	slots := make([]slot, target.Len())
	for i := range slots {
		slots[i].driver = -1
	}

	for di := 0; di < driver.Len(); di++ {
		ts := driver.Frame(di).Timestamp
		ti, err := target.NearestTo(ts)
		if err != nil {
			return nil, err
		}
		delta := ts.Sub(target.Frame(ti).Timestamp)
		if delta < 0 {
			delta = -delta
		}
		if slots[ti].driver < 0 || delta < slots[ti].delta {
			slots[ti] = slot{driver: di, delta: delta}
		}
	}

	pairs := make([]Pair, len(slots))
	for ti, s := range slots {
		pair := Pair{Delta: s.delta}
		if aDrives {
			pair.A, pair.B = s.driver, ti
		} else {
			pair.A, pair.B = ti, s.driver
		}
		if s.driver < 0 {
			pair.Delta = 0
		}
		pairs[ti] = pair
	}
	return pairs, nil
}
