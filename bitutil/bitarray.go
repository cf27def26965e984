// Package bitutil provides packed bit rows and matrices used to rasterize
// encoded symbols.
package bitutil

// BitArray is a simple, fast array of bits represented compactly by an array
// of uint32 values internally.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with the given size.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: make([]uint32, (size+31)/32),
		size: size,
	}
}

// SetRange sets a range of bits [start, end).
func (ba *BitArray) SetRange(start, end int) {
	if end < start || start < 0 || end > ba.size {
		panic("bitarray: invalid range")
	}
	if end == start {
		return
	}
	end-- // treat as last set bit (inclusive)
	firstInt := start / 32
	lastInt := end / 32
	for i := firstInt; i <= lastInt; i++ {
		firstBit := 0
		if i == firstInt {
			firstBit = start & 0x1F
		}
		lastBit := 31
		if i == lastInt {
			lastBit = end & 0x1F
		}
		mask := uint32((2 << uint(lastBit)) - (1 << uint(firstBit)))
		ba.bits[i] |= mask
	}
}

// BitData returns the underlying words, bit i of the array at bit i%32 of
// word i/32.
func (ba *BitArray) BitData() []uint32 {
	return ba.bits
}
