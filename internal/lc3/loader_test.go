package lc3

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func buildImage(origin uint16, words []uint16) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, origin)
	for _, w := range words {
		binary.Write(buf, binary.BigEndian, w)
	}
	return buf.Bytes()
}

func TestLoadImageRoundTrip(t *testing.T) {
	words := []uint16{0x1111, 0x2222, 0x3333}
	img := buildImage(0x3000, words)

	mem := NewMemory(nil)
	if err := loadImage(bytes.NewReader(img), mem); err != nil {
		t.Fatalf("loadImage: %v", err)
	}
	for i, w := range words {
		if got := mem.Read(0x3000 + uint16(i)); got != w {
			t.Errorf("mem[%#04x] = %#04x, want %#04x", 0x3000+i, got, w)
		}
	}
}

func TestLoadImageTruncatedWord(t *testing.T) {
	img := buildImage(0x3000, []uint16{0x1111})
	img = append(img, 0x01) // trailing odd byte

	mem := NewMemory(nil)
	if err := loadImage(bytes.NewReader(img), mem); err == nil {
		t.Fatal("loadImage: expected error for trailing odd byte, got nil")
	}
}

func TestLoadImageNoOriginWord(t *testing.T) {
	mem := NewMemory(nil)
	if err := loadImage(bytes.NewReader(nil), mem); err == nil {
		t.Fatal("loadImage: expected error for empty image, got nil")
	}
}

func TestLoadImageOverflowsAddressSpace(t *testing.T) {
	// origin near the top of memory, enough words to wrap past 0xFFFF.
	words := make([]uint16, 4)
	img := buildImage(0xFFFE, words)

	mem := NewMemory(nil)
	err := loadImage(bytes.NewReader(img), mem)
	if err != ErrImageOverflow {
		t.Errorf("loadImage overflow: got %v, want ErrImageOverflow", err)
	}
}
