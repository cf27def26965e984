package oned

import (
	"fmt"

	"github.com/ericlevine/linecode"
)

// Supplement guard 1011 and the 01 delineator between digits.
const (
	eanSupplementGuard     = 0xB
	eanSupplementDelimiter = 0x1
)

// Parity rows for the two digit supplement, indexed by value mod 4. A set
// entry draws the digit with its G pattern.
var ean2Parities = [4][2]int{
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 1},
}

// Parity rows for the five digit supplement, indexed by its checksum.
var ean5Parities = [10][5]int{
	{0, 0, 1, 1, 1},
	{1, 0, 1, 0, 0},
	{1, 0, 0, 1, 0},
	{1, 0, 0, 0, 1},
	{0, 1, 1, 0, 0},
	{0, 0, 1, 1, 0},
	{0, 0, 0, 1, 1},
	{0, 1, 0, 1, 0},
	{0, 1, 0, 0, 1},
	{0, 0, 1, 0, 1},
}

// EANSupplement is a validated two (EAN-2) or five (EAN-5) digit add-on
// symbol, printed to the right of an EAN-13 or UPC-A symbol.
type EANSupplement struct {
	digits []int
}

// NewEANSupplement validates a two or five digit supplement.
func NewEANSupplement(contents string) (*EANSupplement, error) {
	digits, err := parse("eansupp", contents, digitAlphabet, 2, 5)
	if err != nil {
		return nil, err
	}
	if n := len(digits); n != 2 && n != 5 {
		return nil, fmt.Errorf("eansupp: contents should be 2 or 5 long, but got %d: %w", n, linecode.ErrLength)
	}
	return &EANSupplement{digits: digits}, nil
}

// Symbology returns linecode.SymbologyEANSupplemental.
func (e *EANSupplement) Symbology() linecode.Symbology { return linecode.SymbologyEANSupplemental }

func (e *EANSupplement) parities() []int {
	if len(e.digits) == 2 {
		row := ean2Parities[(e.digits[0]*10+e.digits[1])%4]
		return row[:]
	}
	row := ean5Parities[eanSupplementChecksum(e.digits)]
	return row[:]
}

// Encode returns the supplement guard followed by the digits, separated by
// a 01 delineator. No check digit is encoded.
func (e *EANSupplement) Encode() linecode.Pattern {
	parities := e.parities()
	result := make(linecode.Pattern, 0, 4+len(e.digits)*9)
	result = appendBits(result, eanSupplementGuard, 4)
	for i, d := range e.digits {
		if i > 0 {
			result = appendBits(result, eanSupplementDelimiter, 2)
		}
		if parities[i] == 1 {
			d += 10
		}
		result = appendPattern(result, LAndGPatterns[d], false)
	}
	return result
}
