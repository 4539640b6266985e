// Package controller provides output adapters for displaying extraction results.
package controller

import (
	m "github.com/mouse-blink/docslice/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePlain StartMode = iota
	ModeBrowse
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithBrowseMode sets the UI to interactive browse mode.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// UI defines the interface for displaying extraction results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() error // Wait for UI to finish (user closes it)
	DisplayDirectives(intervals []m.Interval) error
	DisplayFunctions(docs []m.DocumentedFunction) error
	DisplayGaps(gaps []m.Interval) error
	DisplayCandidates(candidates []m.Candidate) error
	DisplaySlices(slices []m.Slice) error
	DisplayKindCounts(kinds map[string]int) error
}
