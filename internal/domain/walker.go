package domain

import (
	m "github.com/mouse-blink/docslice/internal/model"
)

// CollectInternalDependencies walks fn's call sites and registers every
// static function reached, directly or transitively. The registry doubles
// as the visited set: a target already present in either map is not
// re-walked, which terminates self-recursive and mutually recursive chains
// and deduplicates diamond dependencies.
//
// Unresolved call sites and calls to non-static functions contribute
// nothing.
func CollectInternalDependencies(fn *m.Function, reg *Registry) {
	for _, call := range fn.Calls {
		target := call.Target
		if target == nil || target.Storage != m.StorageStatic {
			continue
		}

		if reg.Contains(target.StartLine) {
			continue
		}

		reg.AddInternal(target)
		CollectInternalDependencies(target, reg)
	}
}
