//go:build !debug

// Package debug exposes the debug build flag and assertions that are compiled
// out of release builds.
package debug

// Debug reports whether the debug build tag is set.
const Debug = false

// Assert does nothing unless the debug build tag is provided.
func Assert(condition bool, message ...string) {}
