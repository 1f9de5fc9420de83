package mem

import (
	"fmt"
	"log"
	"strings"
)

// A Word is a fixed-width bit vector. The width can be any positive number
// of bits and does not need to be a multiple of 8. Bit 0 is the least
// significant bit.
type Word struct {
	width int
	bits  []byte
}

// NewWord creates an all-zero word of the given width.
func NewWord(width int) Word {
	if width < 1 {
		log.Panicf("word width must be positive, got %d", width)
	}
	return Word{
		width: width,
		bits:  make([]byte, (width+7)/8),
	}
}

// FilledWord creates a word with every bit set to the given value.
func FilledWord(width int, one bool) Word {
	w := NewWord(width)
	if !one {
		return w
	}

	for i := range w.bits {
		w.bits[i] = 0xff
	}
	w.maskTop()

	return w
}

// WordFromUint64 creates a word of the given width holding the low bits of
// v. Bits beyond the width are dropped.
func WordFromUint64(width int, v uint64) Word {
	w := NewWord(width)
	for i := 0; i < len(w.bits); i++ {
		w.bits[i] = byte(v)
		v >>= 8
	}
	w.maskTop()
	return w
}

// WordFromHex parses a hex string (most significant nibble first, optional
// "0x" prefix) into a word of the given width.
func WordFromHex(width int, s string) (Word, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return Word{}, fmt.Errorf("empty hex word")
	}

	w := NewWord(width)
	nibble := 0
	for i := len(s) - 1; i >= 0; i-- {
		v, err := hexDigit(s[i])
		if err != nil {
			return Word{}, err
		}

		for b := 0; b < 4; b++ {
			pos := nibble*4 + b
			if pos >= width {
				if v&(1<<b) != 0 {
					return Word{}, fmt.Errorf(
						"hex word %q does not fit in %d bits", s, width)
				}
				continue
			}
			if v&(1<<b) != 0 {
				w.setBit(pos, true)
			}
		}
		nibble++
	}

	return w, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", c)
}

// Width returns the number of bits in the word.
func (w Word) Width() int {
	return w.width
}

// IsZeroWidth reports whether the word was never initialized.
func (w Word) IsZeroWidth() bool {
	return w.width == 0
}

// Clone returns an independent copy of the word.
func (w Word) Clone() Word {
	c := Word{width: w.width, bits: make([]byte, len(w.bits))}
	copy(c.bits, w.bits)
	return c
}

// Equal reports whether two words have the same width and contents.
func (w Word) Equal(o Word) bool {
	if w.width != o.width {
		return false
	}
	for i := range w.bits {
		if w.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Bit returns the value of bit i.
func (w Word) Bit(i int) bool {
	if i < 0 || i >= w.width {
		log.Panicf("bit index %d out of range for %d-bit word", i, w.width)
	}
	return w.bits[i/8]&(1<<(i%8)) != 0
}

func (w *Word) setBit(i int, v bool) {
	if v {
		w.bits[i/8] |= 1 << (i % 8)
	} else {
		w.bits[i/8] &^= 1 << (i % 8)
	}
}

// SetBit sets the value of bit i.
func (w *Word) SetBit(i int, v bool) {
	if i < 0 || i >= w.width {
		log.Panicf("bit index %d out of range for %d-bit word", i, w.width)
	}
	w.setBit(i, v)
}

// Uint64 returns the low 64 bits of the word.
func (w Word) Uint64() uint64 {
	var v uint64
	n := len(w.bits)
	if n > 8 {
		n = 8
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(w.bits[i])
	}
	return v
}

// Hex formats the word as a hex string, most significant nibble first.
func (w Word) Hex() string {
	numNibbles := (w.width + 3) / 4
	var sb strings.Builder
	for n := numNibbles - 1; n >= 0; n-- {
		var v byte
		for b := 0; b < 4; b++ {
			pos := n*4 + b
			if pos < w.width && w.Bit(pos) {
				v |= 1 << b
			}
		}
		fmt.Fprintf(&sb, "%x", v)
	}
	return sb.String()
}

// CopyLane copies one byte lane of laneWidth bits from src into w. Both
// words must have the same width.
func (w *Word) CopyLane(src Word, lane, laneWidth int) {
	if src.width != w.width {
		log.Panicf("lane copy width mismatch: %d vs %d", src.width, w.width)
	}

	lo := lane * laneWidth
	hi := lo + laneWidth
	if lo < 0 || hi > w.width {
		log.Panicf("lane %d (width %d) out of range for %d-bit word",
			lane, laneWidth, w.width)
	}

	// Whole-byte lanes copy directly.
	if lo%8 == 0 && laneWidth%8 == 0 {
		copy(w.bits[lo/8:hi/8], src.bits[lo/8:hi/8])
		return
	}

	for i := lo; i < hi; i++ {
		w.setBit(i, src.Bit(i))
	}
}

// maskTop clears the unused bits of the top byte.
func (w *Word) maskTop() {
	if w.width%8 == 0 {
		return
	}
	w.bits[len(w.bits)-1] &= byte(1<<(w.width%8)) - 1
}
