package oned

import "github.com/ericlevine/linecode"

// Narrow/wide element widths of digits 0-9, wide elements three modules.
var twoOfFivePatterns = [10][5]int{
	{1, 1, 3, 3, 1}, // 0
	{3, 1, 1, 1, 3}, // 1
	{1, 3, 1, 1, 3}, // 2
	{3, 3, 1, 1, 1}, // 3
	{1, 1, 3, 1, 3}, // 4
	{3, 1, 3, 1, 1}, // 5
	{1, 3, 3, 1, 1}, // 6
	{1, 1, 1, 3, 3}, // 7
	{3, 1, 1, 3, 1}, // 8
	{1, 3, 1, 3, 1}, // 9
}

// Start and stop module patterns.
const (
	itfStart = 0xA  // 1010
	itfStop  = 0xD  // 1101
	stfStart = 0xDA // 11011010
	stfStop  = 0xD6 // 11010110
)

// TwoOfFive is a validated 2 of 5 symbol in either its standard
// (industrial) or interleaved form.
type TwoOfFive struct {
	digits      []int
	interleaved bool
}

// NewStandardTwoOfFive validates contents for standard 2 of 5, which draws
// every element of every digit as a bar.
func NewStandardTwoOfFive(contents string) (*TwoOfFive, error) {
	digits, err := parse("stf", contents, digitAlphabet, 1, maxLength)
	if err != nil {
		return nil, err
	}
	return &TwoOfFive{digits: digits}, nil
}

// NewInterleavedTwoOfFive validates contents for interleaved 2 of 5. An odd
// number of digits is made even by appending a modulo 10 check digit.
func NewInterleavedTwoOfFive(contents string) (*TwoOfFive, error) {
	digits, err := parse("itf", contents, digitAlphabet, 1, maxLength)
	if err != nil {
		return nil, err
	}
	if len(digits)%2 != 0 {
		digits = append(digits, modulo10(digits, false))
	}
	return &TwoOfFive{digits: digits, interleaved: true}, nil
}

// Symbology returns linecode.SymbologyInterleavedTwoOfFive or
// linecode.SymbologyStandardTwoOfFive.
func (t *TwoOfFive) Symbology() linecode.Symbology {
	if t.interleaved {
		return linecode.SymbologyInterleavedTwoOfFive
	}
	return linecode.SymbologyStandardTwoOfFive
}

// Digits returns the encoded digits, including an appended check digit.
func (t *TwoOfFive) Digits() string {
	out := make([]byte, len(t.digits))
	for i, d := range t.digits {
		out[i] = byte('0' + d)
	}
	return string(out)
}

// Encode returns the start pattern, the digits and the stop pattern.
func (t *TwoOfFive) Encode() linecode.Pattern {
	if t.interleaved {
		return t.encodeInterleaved()
	}
	result := make(linecode.Pattern, 0, 16+len(t.digits)*14)
	result = appendBits(result, stfStart, 8)
	for _, d := range t.digits {
		for _, w := range twoOfFivePatterns[d] {
			result = appendPattern(result, []int{w, 1}, true)
		}
	}
	return appendBits(result, stfStop, 8)
}

// encodeInterleaved draws each digit pair as five bars from the first digit
// interleaved with five spaces from the second.
func (t *TwoOfFive) encodeInterleaved() linecode.Pattern {
	result := make(linecode.Pattern, 0, 8+len(t.digits)*9)
	result = appendBits(result, itfStart, 4)
	encoding := make([]int, 10)
	for i := 0; i+1 < len(t.digits); i += 2 {
		d1, d2 := t.digits[i], t.digits[i+1]
		for j := 0; j < 5; j++ {
			encoding[2*j] = twoOfFivePatterns[d1][j]
			encoding[2*j+1] = twoOfFivePatterns[d2][j]
		}
		result = appendPattern(result, encoding, true)
	}
	return appendBits(result, itfStop, 4)
}
