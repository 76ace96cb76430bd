package lc3

import (
	"bufio"
	"strings"
	"testing"
)

func TestMemoryReadWrite(t *testing.T) {
	mem := NewMemory(nil)
	mem.Write(0x3000, 0xBEEF)
	if got := mem.Read(0x3000); got != 0xBEEF {
		t.Errorf("Read(0x3000) = %#04x, want 0xBEEF", got)
	}
}

func TestMemoryKbsrNoConsole(t *testing.T) {
	mem := NewMemory(nil)
	if got := mem.Read(MRKbsr); got != 0 {
		t.Errorf("Read(KBSR) with nil console = %#04x, want 0", got)
	}
}

func TestMemoryKbsrLatchesOnAvailableByte(t *testing.T) {
	console := NewConsole(&strings.Builder{})
	console.fallback = bufio.NewReader(strings.NewReader("A"))
	mem := NewMemory(console)

	if got := mem.Read(MRKbsr); got != 0x8000 {
		t.Errorf("Read(KBSR) = %#04x, want 0x8000", got)
	}
	if got := mem.Read(MRKbdr); got != uint16('A') {
		t.Errorf("Read(KBDR) = %#04x, want %#04x", got, uint16('A'))
	}
}

func TestMemoryKbsrReportsZeroWhenNoByteAvailable(t *testing.T) {
	console := NewConsole(&strings.Builder{})
	console.fallback = bufio.NewReader(strings.NewReader(""))
	mem := NewMemory(console)

	if got := mem.Read(MRKbsr); got != 0 {
		t.Errorf("Read(KBSR) = %#04x, want 0", got)
	}
}

func TestMemoryKbsrConsecutiveReadsCanDiffer(t *testing.T) {
	console := NewConsole(&strings.Builder{})
	console.fallback = bufio.NewReader(strings.NewReader("A"))
	mem := NewMemory(console)

	first := mem.Read(MRKbsr)
	second := mem.Read(MRKbsr)
	if first != 0x8000 {
		t.Errorf("first Read(KBSR) = %#04x, want 0x8000", first)
	}
	if second != 0 {
		t.Errorf("second Read(KBSR) = %#04x, want 0 (byte already consumed)", second)
	}
}
