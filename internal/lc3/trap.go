package lc3

// Trap vectors, the low byte of a TRAP instruction word.
const (
	TrapGetc  = 0x20 // get character from keyboard, not echoed
	TrapOut   = 0x21 // output a character
	TrapPuts  = 0x22 // output a word string
	TrapIn    = 0x23 // get character from keyboard, echoed
	TrapPutsp = 0x24 // output a byte string
	TrapHalt  = 0x25 // halt the program
)

const inPrompt = "Enter a character: "

// TrapService implements the six recognized LC-3 service calls by
// orchestrating Console and the register file. Grounded on the `switch
// trapVect8` block in cmd/lc3/main.go, restructured as methods taking an
// explicit *CPU instead of reaching into package globals.
//
// Per spec.md §4.5 and the open-question decision recorded in DESIGN.md,
// TRAP entry here does not save PC into R7 — a deliberate divergence from
// the teacher, which does.
type TrapService struct {
	console *Console
}

// NewTrapService binds a TrapService to console. console may be nil only
// for tests that never dispatch a TRAP.
func NewTrapService(console *Console) *TrapService {
	return &TrapService{console: console}
}

// Dispatch executes the TRAP identified by vector (instr & 0xFF).
func (t *TrapService) Dispatch(cpu *CPU, vector uint16) error {
	switch vector {
	case TrapGetc:
		t.getc(cpu)
	case TrapOut:
		t.out(cpu)
	case TrapPuts:
		t.puts(cpu)
	case TrapIn:
		t.in(cpu)
	case TrapPutsp:
		t.putsp(cpu)
	case TrapHalt:
		t.halt(cpu)
	default:
		return &FatalError{Opcode: 0xF000 | vector, PC: cpu.Reg.PC - 1, Reason: "unrecognized TRAP vector"}
	}
	return nil
}

func (t *TrapService) getc(cpu *CPU) {
	b := t.console.ReadByte()
	cpu.Reg.R[0] = uint16(b)
}

func (t *TrapService) out(cpu *CPU) {
	t.console.WriteByte(byte(cpu.Reg.R[0] & 0xFF))
	t.console.Flush()
}

func (t *TrapService) puts(cpu *CPU) {
	addr := cpu.Reg.R[0]
	for {
		w := cpu.Mem.Read(addr)
		if w == 0 {
			break
		}
		t.console.WriteByte(byte(w & 0xFF))
		addr++
	}
	t.console.Flush()
}

func (t *TrapService) in(cpu *CPU) {
	t.console.Prompt(inPrompt)
	b := t.console.ReadByte()
	t.console.WriteByte(b)
	t.console.Flush()
	cpu.Reg.R[0] = uint16(b)
}

func (t *TrapService) putsp(cpu *CPU) {
	addr := cpu.Reg.R[0]
	for {
		w := cpu.Mem.Read(addr)
		if w == 0 {
			break
		}
		lo := byte(w & 0xFF)
		hi := byte(w >> 8)
		t.console.WriteByte(lo)
		if hi != 0 {
			t.console.WriteByte(hi)
		}
		addr++
	}
	t.console.Flush()
}

func (t *TrapService) halt(cpu *CPU) {
	for _, b := range []byte("HALT\n") {
		t.console.WriteByte(b)
	}
	t.console.Flush()
	cpu.Halt()
}
