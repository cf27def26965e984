package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/linecode"
)

// maxLength bounds the input length of the variable-length symbologies.
const maxLength = 255

const digitAlphabet = "0123456789"

// parse validates contents against an inclusive byte-length range and an
// alphabet, in that order, and returns the alphabet index of every rune.
func parse(name, contents, alphabet string, minLen, maxLen int) ([]int, error) {
	if n := len(contents); n < minLen || n > maxLen {
		if minLen == maxLen {
			return nil, fmt.Errorf("%s: contents should be %d long, but got %d: %w", name, minLen, n, linecode.ErrLength)
		}
		return nil, fmt.Errorf("%s: contents should be %d to %d long, but got %d: %w", name, minLen, maxLen, n, linecode.ErrLength)
	}
	units := make([]int, 0, len(contents))
	for i, r := range contents {
		idx := strings.IndexRune(alphabet, r)
		if idx < 0 {
			return nil, fmt.Errorf("%s: cannot encode %q at offset %d: %w", name, r, i, linecode.ErrCharacter)
		}
		units = append(units, idx)
	}
	return units, nil
}

// appendPattern appends runs of modules with the given widths, alternating
// colors. The first run is a bar if bar is true, otherwise a space.
func appendPattern(dst linecode.Pattern, widths []int, bar bool) linecode.Pattern {
	var color byte
	if bar {
		color = 1
	}
	for _, w := range widths {
		for j := 0; j < w; j++ {
			dst = append(dst, color)
		}
		color ^= 1
	}
	return dst
}

// appendBits appends the n low bits of a, most significant first.
func appendBits(dst linecode.Pattern, a uint32, n int) linecode.Pattern {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(a>>uint(i)&1))
	}
	return dst
}

// appendGap appends a single-module inter-character space.
func appendGap(dst linecode.Pattern) linecode.Pattern {
	return append(dst, 0)
}
