//go:build lc3debug

package lc3

import (
	"log"

	"lc3vm/internal/utils"
)

// traceAddOverflowHook logs (never fails) when an ADD wrapped, using the
// teacher's own generic overflow detectors (internal/utils/overflow.go),
// otherwise unused anywhere in the pack. Instruction semantics always wrap
// silently per spec.md §4.4/§9 — this is diagnostic only, compiled in
// solely under `-tags lc3debug`.
func traceAddOverflowHook(a, b, sum uint16) {
	if utils.CheckAdditionOverflow(int16(a), int16(b), int16(sum)) {
		log.Printf("lc3: ADD wrapped: %#04x + %#04x -> %#04x", a, b, sum)
	}
}
