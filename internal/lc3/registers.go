package lc3

// Condition flags. Exactly one is ever set in Registers.Cond.
const (
	FlPos = 1 << 0 // P
	FlZro = 1 << 1 // Z
	FlNeg = 1 << 2 // N
)

// PCStart is the address execution begins at. The loader does not change
// it: an image's origin only decides where its words are placed.
const PCStart = 0x3000

// Registers holds the eight general-purpose registers plus PC and COND.
//
// The teacher models this as a single [R_COUNT]uint16 array indexed by
// iota pseudo-registers (R_PC, R_COND alias into the same array as
// R0..R7). Named fields drop the need for those aliases while keeping the
// same flat, fixed-size shape.
type Registers struct {
	R    [8]uint16
	PC   uint16
	Cond uint16
}

// NewRegisters returns a Registers value with PC at PCStart and COND at ZRO,
// matching the reset state spec.md §3 requires before the first instruction
// fetch.
func NewRegisters() *Registers {
	return &Registers{
		PC:   PCStart,
		Cond: FlZro,
	}
}

// UpdateFlags sets COND from the two's-complement sign of R[dr].
func (r *Registers) UpdateFlags(dr uint16) {
	switch {
	case r.R[dr] == 0:
		r.Cond = FlZro
	case r.R[dr]>>15 == 1:
		r.Cond = FlNeg
	default:
		r.Cond = FlPos
	}
}
