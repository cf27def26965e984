package bitutil

import "strings"

// BitMatrix represents a 2D matrix of bits.
// x is the column position, y is the row position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new BitMatrix with the given width and height.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// SetRow copies row into row y. The row must be as wide as the matrix.
func (bm *BitMatrix) SetRow(y int, row *BitArray) {
	if row.size != bm.width {
		panic("bitmatrix: row width does not match the matrix")
	}
	copy(bm.data[y*bm.rowSize:(y+1)*bm.rowSize], row.BitData())
}

// Width returns the width of the matrix.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height of the matrix.
func (bm *BitMatrix) Height() int { return bm.height }

// StringWithChars returns one line per row, drawing set bits with setString
// and unset bits with unsetString. Every line ends with '\n'.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
