package lc3

import "lc3vm/internal/utils"

// signExtend widens the low n bits of x into a signed 16-bit value,
// replicating bit n-1 into bits [15:n]. Delegates to the generic helper the
// teacher already carries for its MIPS decoders (internal/utils.SignExtend)
// instead of reintroducing a second, non-generic copy.
func signExtend(x uint16, n int) uint16 {
	if n < 16 {
		x &= 1<<n - 1
	}
	return utils.SignExtend(x, n)
}
