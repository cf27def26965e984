package oned

import (
	"fmt"

	"github.com/ericlevine/linecode"
)

// UPC/EAN guard patterns.
var (
	UPCEANStartEndPattern = []int{1, 1, 1}
	UPCEANMiddlePattern   = []int{1, 1, 1, 1, 1}
)

// LPatterns contains the "odd" or "L" patterns for encoding UPC/EAN digits.
// Drawn starting with a space they are the L side, starting with a bar the
// R side.
var LPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// LAndGPatterns includes both the L and G patterns.
// Indices 0-9 are L patterns, 10-19 are G patterns (reversed L patterns).
var LAndGPatterns [20][]int

func init() {
	for i := 0; i < 10; i++ {
		LAndGPatterns[i] = LPatterns[i]
	}
	for i := 10; i < 20; i++ {
		widths := LPatterns[i-10]
		reversed := make([]int, len(widths))
		for j := 0; j < len(widths); j++ {
			reversed[j] = widths[len(widths)-j-1]
		}
		LAndGPatterns[i] = reversed
	}
}

// parseUPCEAN validates a digit string that is either payloadLen long or
// carries one extra check digit, and returns the payload followed by the
// check digit. A supplied check digit must match the computed one.
func parseUPCEAN(name, contents string, payloadLen int, evenStart bool) ([]int, error) {
	digits, err := parse(name, contents, digitAlphabet, payloadLen, payloadLen+1)
	if err != nil {
		return nil, err
	}
	check := modulo10(digits[:payloadLen], evenStart)
	if len(digits) > payloadLen {
		if digits[payloadLen] != check {
			return nil, fmt.Errorf("%s: check digit %d does not match computed %d: %w",
				name, digits[payloadLen], check, linecode.ErrChecksum)
		}
		return digits, nil
	}
	return append(digits, check), nil
}

// appendUPCEANDigits appends digits on the L side (starting with a space)
// or the R side (starting with a bar). parities, when non-zero, selects the
// G pattern for digit i when bit len(digits)-1-i is set.
func appendUPCEANDigits(dst linecode.Pattern, digits []int, parities int, right bool) linecode.Pattern {
	for i, d := range digits {
		if (parities>>uint(len(digits)-1-i))&1 == 1 {
			d += 10
		}
		dst = appendPattern(dst, LAndGPatterns[d], right)
	}
	return dst
}
