package domain

import (
	m "github.com/mouse-blink/docslice/internal/model"
)

// MergeIntervals merges the ordered raw intervals into the minimal list of
// output intervals. The running accumulator holds its end exclusive; two
// adjacent intervals join only when the gap table maps the accumulator's
// boundary line to exactly the line before the next interval's start, i.e.
// the whole space between them is one registered gap. Emitted intervals are
// inclusive on both ends.
//
// An empty input produces no output.
func MergeIntervals(raw []m.Interval, gaps m.GapTable) []m.Interval {
	if len(raw) == 0 {
		return nil
	}

	merged := make([]m.Interval, 0, len(raw))

	start := raw[0].Start
	end := raw[0].End + 1

	for _, next := range raw[1:] {
		if gapEnd, ok := gaps[end]; ok && gapEnd == next.Start-1 {
			end = next.End + 1
			continue
		}

		merged = append(merged, m.Interval{Start: start, End: end - 1})
		start, end = next.Start, next.End+1
	}

	return append(merged, m.Interval{Start: start, End: end - 1})
}
