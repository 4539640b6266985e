package model

// Interval is a line range, inclusive on both ends.
type Interval struct {
	Start int
	End   int
}

// GapTable maps a line L to a line G, meaning: a merge boundary landing on
// line L may be bridged when the following interval starts exactly at G+1.
// The table is injected configuration; the merger consults it read-only.
type GapTable map[int]int

// DocumentedFunction pairs a registered function with its raw interval,
// running from the first line of the attached doc comment to the last line
// of the function body.
type DocumentedFunction struct {
	Function *Function
	Interval Interval
}

// Candidate describes one registry entry for inspection output.
type Candidate struct {
	Function   *Function
	Internal   bool // reached via the dependency walk rather than the header
	Documented bool
}

// Slice is one merged output interval together with the documented
// functions it covers.
type Slice struct {
	Interval  Interval
	Functions []*Function
}
