package controller

import (
	m "github.com/mouse-blink/docslice/internal/model"
)

// Message types.
type candidatesMsg struct {
	candidates []m.Candidate
}

type slicesMsg struct {
	slices []m.Slice
}

// List item types.
type candidateItem struct {
	name       string
	storage    string
	lines      string
	origin     string
	documented bool
}

func (c candidateItem) FilterValue() string {
	return c.name
}

type sliceItem struct {
	lines     string
	functions string
}

func (s sliceItem) FilterValue() string {
	return s.functions
}
