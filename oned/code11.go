package oned

import "github.com/ericlevine/linecode"

const code11Alphabet = "0123456789-"

var code11CharacterEncodings = [11][5]int{
	{1, 1, 1, 1, 2}, // 0
	{2, 1, 1, 1, 2}, // 1
	{1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1}, // 3
	{1, 1, 2, 1, 2}, // 4
	{2, 1, 2, 1, 1}, // 5
	{1, 2, 2, 1, 1}, // 6
	{1, 1, 1, 2, 2}, // 7
	{2, 1, 1, 2, 1}, // 8
	{2, 1, 1, 1, 1}, // 9
	{1, 1, 2, 1, 1}, // -
}

var code11GuardPattern = []int{1, 1, 2, 2, 1}

// Code 11 appends a second (K) check character above this many data
// characters.
const code11KThreshold = 10

// Code11 is a validated Code 11 symbol.
type Code11 struct {
	units []int
}

// NewCode11 validates contents and returns a Code 11 symbol.
func NewCode11(contents string) (*Code11, error) {
	units, err := parse("code11", contents, code11Alphabet, 1, maxLength)
	if err != nil {
		return nil, err
	}
	return &Code11{units: units}, nil
}

// Symbology returns linecode.SymbologyCode11.
func (c *Code11) Symbology() linecode.Symbology { return linecode.SymbologyCode11 }

// CheckCharacters returns the C check character, followed by the K check
// character when the data is longer than ten characters.
func (c *Code11) CheckCharacters() string {
	checks := c.checks()
	out := make([]byte, len(checks))
	for i, idx := range checks {
		out[i] = code11Alphabet[idx]
	}
	return string(out)
}

// Both check characters reduce modulo 11.
func (c *Code11) checks() []int {
	check1 := weightedChecksum(c.units, 10, 11)
	if len(c.units) <= code11KThreshold {
		return []int{check1}
	}
	extended := append(append(make([]int, 0, len(c.units)+1), c.units...), check1)
	return []int{check1, weightedChecksum(extended, 9, 11)}
}

// Encode returns guard, data, check characters and guard, each followed by
// a narrow space except the final guard.
func (c *Code11) Encode() linecode.Pattern {
	result := make(linecode.Pattern, 0, 8+(len(c.units)+2)*8+7)
	result = appendPattern(result, code11GuardPattern, true)
	result = appendGap(result)
	for _, u := range append(append([]int(nil), c.units...), c.checks()...) {
		result = appendPattern(result, code11CharacterEncodings[u][:], true)
		result = appendGap(result)
	}
	return appendPattern(result, code11GuardPattern, true)
}
