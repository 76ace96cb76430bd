package lc3

// CPU couples the register file, memory, console, and TRAP service behind a
// single fetch-decode-execute loop. spec.md §9 asks implementations to
// collect the process-wide state the teacher keeps as package globals
// (memory, reg, running) into one context value passed to every handler;
// CPU is that value, and dispatch's opHandler signature is the "handler
// takes (context, instruction)" shape the spec describes.
type CPU struct {
	Reg     *Registers
	Mem     *Memory
	Console *Console
	Traps   *TrapService
	running bool
}

// NewCPU wires a CPU from reg, mem and console, and builds its TrapService
// from console. console may be nil for tests that only exercise
// instructions with no device or TRAP interaction.
func NewCPU(reg *Registers, mem *Memory, console *Console) *CPU {
	cpu := &CPU{Reg: reg, Mem: mem, Console: console}
	cpu.Traps = NewTrapService(console)
	return cpu
}

// Step performs one fetch-decode-execute cycle: fetch from PC, post-
// increment PC, decode the top nibble, dispatch. Returns a *FatalError for
// RES, RTI, or (impossible, since dispatch is fully populated) an undecoded
// opcode.
func (cpu *CPU) Step() error {
	instr := cpu.Mem.Read(cpu.Reg.PC)
	cpu.Reg.PC++
	op := instr >> 12
	return dispatch[op](cpu, instr)
}

// Run executes Step until the TRAP HALT handler clears the running flag or
// Step returns an error (a fatal guest fault). Run sets the running flag
// itself on entry; it always returns with running false.
func (cpu *CPU) Run() error {
	cpu.running = true
	for cpu.running {
		if err := cpu.Step(); err != nil {
			cpu.running = false
			return err
		}
	}
	return nil
}

// Halt clears the running flag, ending Run's loop after the current Step
// returns. Called by TrapService on TRAP HALT (spec.md §9's open question:
// "a conforming implementation should simply clear the running flag" — no
// double indirection, no bug reproduced).
func (cpu *CPU) Halt() {
	cpu.running = false
}
