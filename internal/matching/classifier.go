package matching

import (
	"time"

	"ixmatch/internal/capture"
)

// Matched returns the frames of each channel whose pair is complete and
// whose delta is at or below threshold (the boundary is inclusive). The two
// slices are aligned: aSide[i] and bSide[i] form one matched pair, in the
// order of the joined sequence.
func Matched(pairs []Pair, a, b capture.Collection, threshold time.Duration) (aSide, bSide []capture.Frame) {
	for _, pair := range pairs {
		if !pair.Complete() || pair.Delta > threshold {
			continue
		}
		aSide = append(aSide, a.Frame(pair.A))
		bSide = append(bSide, b.Frame(pair.B))
	}
	return aSide, bSide
}

// Unmatched returns, per channel, the frames present in the joined result
// that did not qualify as matched: their partner is missing or the delta
// exceeds threshold. A pair with one side absent contributes only to the
// present side's set.
func Unmatched(pairs []Pair, a, b capture.Collection, threshold time.Duration) (aSide, bSide []capture.Frame) {
	for _, pair := range pairs {
		if pair.Complete() && pair.Delta <= threshold {
			continue
		}
		if pair.HasA() {
			aSide = append(aSide, a.Frame(pair.A))
		}
		if pair.HasB() {
			bSide = append(bSide, b.Frame(pair.B))
		}
	}
	return aSide, bSide
}
