package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	m "github.com/mouse-blink/docslice/internal/model"
)

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name string
		raw  []m.Interval
		gaps m.GapTable
		want []m.Interval
	}{
		{
			name: "empty input",
			raw:  nil,
			gaps: m.GapTable{},
			want: nil,
		},
		{
			name: "single interval",
			raw:  []m.Interval{{Start: 5, End: 10}},
			gaps: m.GapTable{},
			want: []m.Interval{{Start: 5, End: 10}},
		},
		{
			name: "no table keeps intervals separate",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 20, End: 25}},
			gaps: m.GapTable{},
			want: []m.Interval{{Start: 1, End: 9}, {Start: 20, End: 25}},
		},
		{
			name: "single line gap joins",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 11, End: 15}},
			gaps: m.GapTable{10: 10},
			want: []m.Interval{{Start: 1, End: 15}},
		},
		{
			name: "multi line gap joins",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 13, End: 20}},
			gaps: m.GapTable{10: 12},
			want: []m.Interval{{Start: 1, End: 20}},
		},
		{
			name: "gap not reaching next interval stays separate",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 14, End: 20}},
			gaps: m.GapTable{10: 12},
			want: []m.Interval{{Start: 1, End: 9}, {Start: 14, End: 20}},
		},
		{
			name: "gap starting past the boundary stays separate",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 13, End: 20}},
			gaps: m.GapTable{11: 12},
			want: []m.Interval{{Start: 1, End: 9}, {Start: 13, End: 20}},
		},
		{
			name: "chain of gaps joins across",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 11, End: 15}, {Start: 18, End: 20}},
			gaps: m.GapTable{10: 10, 16: 17},
			want: []m.Interval{{Start: 1, End: 20}},
		},
		{
			name: "join then break",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 11, End: 15}, {Start: 30, End: 40}},
			gaps: m.GapTable{10: 10},
			want: []m.Interval{{Start: 1, End: 15}, {Start: 30, End: 40}},
		},
		{
			name: "abutting intervals without a gap entry stay separate",
			raw:  []m.Interval{{Start: 1, End: 9}, {Start: 10, End: 20}},
			gaps: m.GapTable{},
			want: []m.Interval{{Start: 1, End: 9}, {Start: 10, End: 20}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeIntervals(tt.raw, tt.gaps)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeIntervals() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
