// Package domain implements the extraction pipeline: candidate
// registration, the static dependency walk, documentation attachment and
// gap-aware interval merging.
package domain

import (
	"sort"

	"github.com/mouse-blink/docslice/internal/adapter"
	m "github.com/mouse-blink/docslice/internal/model"
)

// Registry holds candidate functions keyed by definition start line, split
// by how they were reached. A start line lives in at most one of the two
// maps, and every key is written at most once per run.
type Registry struct {
	exported map[int]*m.Function
	internal map[int]*m.Function
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		exported: make(map[int]*m.Function),
		internal: make(map[int]*m.Function),
	}
}

// AddExported registers a header-exported candidate.
func (r *Registry) AddExported(fn *m.Function) {
	r.exported[fn.StartLine] = fn
}

// AddInternal registers a candidate reached by the dependency walk.
func (r *Registry) AddInternal(fn *m.Function) {
	r.internal[fn.StartLine] = fn
}

// Contains reports whether a start line is registered in either map.
func (r *Registry) Contains(line int) bool {
	_, exported := r.exported[line]
	_, internal := r.internal[line]

	return exported || internal
}

// Lookup returns the candidate starting at line, preferring the exported
// registry.
func (r *Registry) Lookup(line int) (*m.Function, bool) {
	if fn, ok := r.exported[line]; ok {
		return fn, true
	}

	fn, ok := r.internal[line]

	return fn, ok
}

// Exported returns the header-exported candidates in source order.
func (r *Registry) Exported() []*m.Function {
	return sortedByStart(r.exported)
}

// Internal returns the walk-discovered candidates in source order.
func (r *Registry) Internal() []*m.Function {
	return sortedByStart(r.internal)
}

func sortedByStart(fns map[int]*m.Function) []*m.Function {
	out := make([]*m.Function, 0, len(fns))
	for _, fn := range fns {
		out = append(out, fn)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartLine < out[j].StartLine })

	return out
}

// BuildRegistry registers every function definition whose name the header
// exports, then walks each one for internal static dependencies. Functions
// already registered by an earlier walk keep their entry; their own
// dependencies were covered when they were discovered.
func BuildRegistry(tu *m.TranslationUnit, filter adapter.ExportFilter) *Registry {
	reg := NewRegistry()

	for _, fn := range tu.Functions {
		if reg.Contains(fn.StartLine) {
			continue
		}

		if !filter.Exports(fn.Name) {
			continue
		}

		reg.AddExported(fn)
		CollectInternalDependencies(fn, reg)
	}

	return reg
}
