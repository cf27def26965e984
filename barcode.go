// Package linecode encodes text into the bar/space module patterns of linear
// barcode symbologies.
package linecode

import (
	"fmt"
	"strings"
)

// Symbology identifies a linear barcode symbology.
type Symbology int

const (
	SymbologyCodabar Symbology = iota
	SymbologyCode11
	SymbologyCode39
	SymbologyCode93
	SymbologyCode128
	SymbologyEAN13
	SymbologyEAN8
	SymbologyUPCA
	SymbologyEANSupplemental
	SymbologyStandardTwoOfFive
	SymbologyInterleavedTwoOfFive
)

var symbologyNames = [...]string{
	SymbologyCodabar:              "CODABAR",
	SymbologyCode11:               "CODE_11",
	SymbologyCode39:               "CODE_39",
	SymbologyCode93:               "CODE_93",
	SymbologyCode128:              "CODE_128",
	SymbologyEAN13:                "EAN_13",
	SymbologyEAN8:                 "EAN_8",
	SymbologyUPCA:                 "UPC_A",
	SymbologyEANSupplemental:      "EAN_SUPPLEMENTAL",
	SymbologyStandardTwoOfFive:    "STANDARD_2_OF_5",
	SymbologyInterleavedTwoOfFive: "INTERLEAVED_2_OF_5",
}

// Symbologies lists every known symbology in declaration order.
func Symbologies() []Symbology {
	out := make([]Symbology, len(symbologyNames))
	for i := range out {
		out[i] = Symbology(i)
	}
	return out
}

// String returns the name of the symbology.
func (s Symbology) String() string {
	if s < 0 || int(s) >= len(symbologyNames) {
		return "UNKNOWN"
	}
	return symbologyNames[s]
}

// ParseSymbology looks a symbology up by name. Matching ignores case and
// the '_' and '-' separators, so "code39", "CODE_39" and "Code-39" all match.
// "bookland" and "jan" are accepted as EAN-13, "itf" and "stf" as the two
// 2 of 5 variants.
func ParseSymbology(name string) (Symbology, error) {
	key := foldName(name)
	switch key {
	case "BOOKLAND", "JAN", "EAN":
		return SymbologyEAN13, nil
	case "UPC":
		return SymbologyUPCA, nil
	case "ITF":
		return SymbologyInterleavedTwoOfFive, nil
	case "STF":
		return SymbologyStandardTwoOfFive, nil
	case "EAN2", "EAN5":
		return SymbologyEANSupplemental, nil
	}
	for i, n := range symbologyNames {
		if foldName(n) == key {
			return Symbology(i), nil
		}
	}
	return 0, fmt.Errorf("unknown symbology %q: %w", name, ErrGenerate)
}

func foldName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToUpper(name))
}

// Pattern is an encoded symbol: one element per module, 1 for a bar and 0
// for a space.
type Pattern []byte

// String collapses the pattern into a string of '1' and '0'.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		if b != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParsePattern parses a string of '1' and '0'.
func ParsePattern(s string) (Pattern, error) {
	p := make(Pattern, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			p[i] = 1
		case '0':
		default:
			return nil, fmt.Errorf("invalid module %q at %d: %w", s[i], i, ErrConversion)
		}
	}
	return p, nil
}
