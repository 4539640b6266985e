package domain

import (
	m "github.com/mouse-blink/docslice/internal/model"
)

// DeriveGaps returns the uncovered regions between consecutive raw
// intervals: each entry runs from the first line after one interval to the
// last line before the next. Feeding the result back into MergeIntervals
// bridges exactly those boundaries, so a derived table merges every chain
// of documented intervals unless the user prunes entries first.
func DeriveGaps(raw []m.Interval) []m.Interval {
	var gaps []m.Interval

	for i := 0; i+1 < len(raw); i++ {
		start := raw[i].End + 1
		end := raw[i+1].Start - 1

		if start <= end {
			gaps = append(gaps, m.Interval{Start: start, End: end})
		}
	}

	return gaps
}
