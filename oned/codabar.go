package oned

import "github.com/ericlevine/linecode"

const codabarAlphabet = "0123456789-$:/.+ABCD"

// Character widths: each character has 7 elements (4 bars + 3 spaces).
var codabarCharacterEncodings = [20][7]int{
	{1, 1, 1, 1, 1, 2, 2}, // 0
	{1, 1, 1, 1, 2, 2, 1}, // 1
	{1, 1, 1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1, 1, 1}, // 3
	{1, 1, 2, 1, 1, 2, 1}, // 4
	{2, 1, 1, 1, 1, 2, 1}, // 5
	{1, 2, 1, 1, 1, 1, 2}, // 6
	{1, 2, 1, 1, 2, 1, 1}, // 7
	{1, 2, 2, 1, 1, 1, 1}, // 8
	{2, 1, 1, 2, 1, 1, 1}, // 9
	{1, 1, 1, 2, 2, 1, 1}, // -
	{1, 1, 2, 2, 1, 1, 1}, // $
	{2, 1, 1, 1, 2, 1, 2}, // :
	{2, 1, 2, 1, 1, 1, 2}, // /
	{2, 1, 2, 1, 2, 1, 1}, // .
	{1, 1, 2, 2, 2, 2, 2}, // +
	{1, 1, 2, 2, 1, 2, 1}, // A
	{1, 1, 1, 2, 1, 2, 2}, // B
	{1, 2, 1, 2, 1, 1, 2}, // C
	{1, 1, 1, 2, 2, 2, 1}, // D
}

// Codabar is a validated Codabar symbol. Start and stop characters (A-D)
// are part of the caller's text and are not added or checked.
type Codabar struct {
	units []int
}

// NewCodabar validates contents and returns a Codabar symbol.
func NewCodabar(contents string) (*Codabar, error) {
	units, err := parse("codabar", contents, codabarAlphabet, 1, maxLength)
	if err != nil {
		return nil, err
	}
	return &Codabar{units: units}, nil
}

// Symbology returns linecode.SymbologyCodabar.
func (c *Codabar) Symbology() linecode.Symbology { return linecode.SymbologyCodabar }

// Encode returns the characters joined by single narrow spaces.
func (c *Codabar) Encode() linecode.Pattern {
	result := make(linecode.Pattern, 0, len(c.units)*13)
	for i, u := range c.units {
		if i > 0 {
			result = appendGap(result)
		}
		result = appendPattern(result, codabarCharacterEncodings[u][:], true)
	}
	return result
}
