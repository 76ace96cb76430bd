//go:build !lc3debug

package lc3

// traceAddOverflowHook is a no-op in the default build; see trace_debug.go.
func traceAddOverflowHook(a, b, sum uint16) {}
