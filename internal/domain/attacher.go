package domain

import (
	m "github.com/mouse-blink/docslice/internal/model"
)

// AttachDocumentation scans the comment tokens in source order and pairs
// each one whose last line directly abuts a registered function start with
// that function. The raw interval runs from the comment's first line to the
// function body's last line.
//
// A blank line between comment and function breaks the attachment, and
// candidates with no preceding comment are left out entirely. Both are
// deliberate: only documented functions are selected.
func AttachDocumentation(comments []m.Comment, reg *Registry) []m.DocumentedFunction {
	var docs []m.DocumentedFunction

	for _, comment := range comments {
		fn, ok := reg.Lookup(comment.EndLine + 1)
		if !ok {
			continue
		}

		docs = append(docs, m.DocumentedFunction{
			Function: fn,
			Interval: m.Interval{Start: comment.StartLine, End: fn.EndLine},
		})
	}

	return docs
}
