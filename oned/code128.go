package oned

import (
	"fmt"
	"strconv"

	"github.com/ericlevine/linecode"
	"golang.org/x/text/unicode/norm"
)

// Set selectors and function characters accepted in Code 128 input.
const (
	Code128SelectA = 'À' // U+00C0
	Code128SelectB = 'Ɓ' // U+0181
	Code128SelectC = 'Ć' // U+0106
	Code128FNC1    = 'Ź' // U+0179
	Code128FNC2    = 'ź' // U+017A
	Code128FNC3    = 'Ż' // U+017B
	Code128FNC4    = 'ż' // U+017C
	Code128Shift   = 'Ž' // U+017D
)

// Code 128 unit values.
const (
	code128StartA = 103
	code128StartB = 104
	code128StartC = 105
	code128Stop   = 106
)

// CharacterSet is a Code 128 character set.
type CharacterSet int

const (
	// CharacterSetNone means the text names its own start set with a
	// leading selector character.
	CharacterSetNone CharacterSet = iota
	CharacterSetA
	CharacterSetB
	CharacterSetC
)

// String returns "A", "B", "C" or "None".
func (s CharacterSet) String() string {
	switch s {
	case CharacterSetA:
		return "A"
	case CharacterSetB:
		return "B"
	case CharacterSetC:
		return "C"
	default:
		return "None"
	}
}

// ParseCharacterSet maps "A", "B", "C" (either case) or "" to a
// CharacterSet.
func ParseCharacterSet(s string) (CharacterSet, error) {
	switch s {
	case "":
		return CharacterSetNone, nil
	case "A", "a":
		return CharacterSetA, nil
	case "B", "b":
		return CharacterSetB, nil
	case "C", "c":
		return CharacterSetC, nil
	}
	return CharacterSetNone, fmt.Errorf("code128: unsupported character set %q: %w", s, linecode.ErrCharacter)
}

var code128Selectors = map[rune]CharacterSet{
	Code128SelectA: CharacterSetA,
	Code128SelectB: CharacterSetB,
	Code128SelectC: CharacterSetC,
}

func (s CharacterSet) selector() rune {
	switch s {
	case CharacterSetA:
		return Code128SelectA
	case CharacterSetB:
		return Code128SelectB
	default:
		return Code128SelectC
	}
}

// code128Sets maps each set's symbols (a single character, or a digit pair
// in set C) to unit values 0-102.
var code128Sets [3]map[string]int

func init() {
	for set := range code128Sets {
		m := make(map[string]int, code128Stop)
		for v := 0; v < code128StartA; v++ {
			m[code128Symbol(CharacterSetA+CharacterSet(set), v)] = v
		}
		code128Sets[set] = m
	}
}

// code128Symbol returns the symbol a unit value stands for in a set.
func code128Symbol(set CharacterSet, v int) string {
	switch {
	case v < 64:
		if set == CharacterSetC {
			return fmt.Sprintf("%02d", v)
		}
		return string(rune(' ' + v))
	case v < 96:
		switch set {
		case CharacterSetA:
			return string(rune(v - 64))
		case CharacterSetB:
			if v == 95 {
				return "÷"
			}
			return string(rune(' ' + v))
		default:
			return strconv.Itoa(v)
		}
	}
	var specials [3]rune
	switch v {
	case 96:
		specials = [3]rune{Code128FNC3, Code128FNC3, 0}
	case 97:
		specials = [3]rune{Code128FNC2, Code128FNC2, 0}
	case 98:
		specials = [3]rune{Code128Shift, Code128Shift, 0}
	case 99:
		specials = [3]rune{Code128SelectC, Code128SelectC, 0}
	case 100:
		specials = [3]rune{Code128SelectB, Code128FNC4, Code128SelectB}
	case 101:
		specials = [3]rune{Code128FNC4, Code128SelectA, Code128SelectA}
	case 102:
		specials = [3]rune{Code128FNC1, Code128FNC1, Code128FNC1}
	default:
		panic(fmt.Sprintf("code128: no symbol for unit %d", v))
	}
	r := specials[set-CharacterSetA]
	if r == 0 {
		return strconv.Itoa(v)
	}
	return string(r)
}

func (s CharacterSet) lookup(symbol string) (int, bool) {
	if s < CharacterSetA || s > CharacterSetC {
		return 0, false
	}
	v, ok := code128Sets[s-CharacterSetA][symbol]
	return v, ok
}

// Code128Patterns contains the bar patterns for Code 128.
var Code128Patterns = [107][]int{
	{2, 1, 2, 2, 2, 2}, // 0
	{2, 2, 2, 1, 2, 2},
	{2, 2, 2, 2, 2, 1},
	{1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2},
	{1, 3, 1, 2, 2, 2}, // 5
	{1, 2, 2, 2, 1, 3},
	{1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2},
	{2, 2, 1, 2, 1, 3},
	{2, 2, 1, 3, 1, 2}, // 10
	{2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2},
	{1, 2, 2, 1, 3, 2},
	{1, 2, 2, 2, 3, 1},
	{1, 1, 3, 2, 2, 2}, // 15
	{1, 2, 3, 1, 2, 2},
	{1, 2, 3, 2, 2, 1},
	{2, 2, 3, 2, 1, 1},
	{2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, // 20
	{2, 1, 3, 2, 1, 2},
	{2, 2, 3, 1, 1, 2},
	{3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2},
	{3, 2, 1, 1, 2, 2}, // 25
	{3, 2, 1, 2, 2, 1},
	{3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2},
	{3, 2, 2, 2, 1, 1},
	{2, 1, 2, 1, 2, 3}, // 30
	{2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1},
	{1, 1, 1, 3, 2, 3},
	{1, 3, 1, 1, 2, 3},
	{1, 3, 1, 3, 2, 1}, // 35
	{1, 1, 2, 3, 1, 3},
	{1, 3, 2, 1, 1, 3},
	{1, 3, 2, 3, 1, 1},
	{2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, // 40
	{2, 3, 1, 3, 1, 1},
	{1, 1, 2, 1, 3, 3},
	{1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1},
	{1, 1, 3, 1, 2, 3}, // 45
	{1, 1, 3, 3, 2, 1},
	{1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1},
	{2, 1, 1, 3, 3, 1},
	{2, 3, 1, 1, 3, 1}, // 50
	{2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1},
	{2, 1, 3, 1, 3, 1},
	{3, 1, 1, 1, 2, 3},
	{3, 1, 1, 3, 2, 1}, // 55
	{3, 3, 1, 1, 2, 1},
	{3, 1, 2, 1, 1, 3},
	{3, 1, 2, 3, 1, 1},
	{3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, // 60
	{2, 2, 1, 4, 1, 1},
	{4, 3, 1, 1, 1, 1},
	{1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2},
	{1, 2, 1, 1, 2, 4}, // 65
	{1, 2, 1, 4, 2, 1},
	{1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1},
	{1, 1, 2, 2, 1, 4},
	{1, 1, 2, 4, 1, 2}, // 70
	{1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1},
	{1, 4, 2, 1, 1, 2},
	{1, 4, 2, 2, 1, 1},
	{2, 4, 1, 2, 1, 1}, // 75
	{2, 2, 1, 1, 1, 4},
	{4, 1, 3, 1, 1, 1},
	{2, 4, 1, 1, 1, 2},
	{1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, // 80
	{1, 2, 1, 1, 4, 2},
	{1, 2, 1, 2, 4, 1},
	{1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2},
	{1, 2, 4, 2, 1, 1}, // 85
	{4, 1, 1, 2, 1, 2},
	{4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1},
	{2, 1, 2, 1, 4, 1},
	{2, 1, 4, 1, 2, 1}, // 90
	{4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3},
	{1, 1, 1, 3, 4, 1},
	{1, 3, 1, 1, 4, 1},
	{1, 1, 4, 1, 1, 3}, // 95
	{1, 1, 4, 3, 1, 1},
	{4, 1, 1, 1, 1, 3},
	{4, 1, 1, 3, 1, 1},
	{1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, // 100
	{3, 1, 1, 1, 4, 1},
	{4, 1, 1, 1, 3, 1},
	{2, 1, 1, 4, 1, 2}, // START_A
	{2, 1, 1, 2, 1, 4}, // START_B
	{2, 1, 1, 2, 3, 2}, // START_C
	{2, 3, 3, 1, 1, 1, 2}, // STOP
}

// Code128 is a validated Code 128 symbol.
type Code128 struct {
	units []int
}

// NewCode128 validates contents and returns a Code 128 symbol starting in
// the given set. The text may switch sets with the selector characters and
// carry function characters. With CharacterSetNone the text must begin with
// a selector. The length bounds apply to contents as given; the text is
// NFC-normalized before tokenizing.
func NewCode128(contents string, set CharacterSet) (*Code128, error) {
	if n := len(contents); n < 2 || n > maxLength {
		return nil, fmt.Errorf("code128: contents should be 2 to %d long, but got %d: %w", maxLength, n, linecode.ErrLength)
	}
	contents = norm.NFC.String(contents)
	switch set {
	case CharacterSetA, CharacterSetB, CharacterSetC:
		contents = string(set.selector()) + contents
	case CharacterSetNone:
		r := []rune(contents)[0]
		if _, ok := code128Selectors[r]; !ok {
			return nil, fmt.Errorf("code128: no character set given and contents start with %q: %w", r, linecode.ErrCharacter)
		}
	default:
		return nil, fmt.Errorf("code128: unknown character set %d: %w", set, linecode.ErrCharacter)
	}
	units, err := tokenizeCode128(contents)
	if err != nil {
		return nil, err
	}
	if len(units) < 2 {
		return nil, fmt.Errorf("code128: contents hold no data after the start character: %w", linecode.ErrLength)
	}
	return &Code128{units: units}, nil
}

// Symbology returns linecode.SymbologyCode128.
func (c *Code128) Symbology() linecode.Symbology { return linecode.SymbologyCode128 }

// Units returns the unit values of the symbol, start unit first, without
// the check unit and stop.
func (c *Code128) Units() []int {
	return append([]int(nil), c.units...)
}

// Encode returns the units, the modulo 103 check unit and the stop pattern
// with its termination bar.
func (c *Code128) Encode() linecode.Pattern {
	result := make(linecode.Pattern, 0, (len(c.units)+1)*11+13)
	for _, u := range c.units {
		result = appendPattern(result, Code128Patterns[u], true)
	}
	result = appendPattern(result, Code128Patterns[code128Checksum(c.units)], true)
	return appendPattern(result, Code128Patterns[code128Stop], true)
}

// code128State is the tokenizer state between two runes: the active set
// and a digit waiting for its pair in set C.
type code128State struct {
	set     CharacterSet
	pending rune
}

func tokenizeCode128(contents string) ([]int, error) {
	var (
		st  code128State
		err error
	)
	units := make([]int, 0, len(contents)+1)
	for i, r := range contents {
		st, units, err = st.next(r, units)
		if err != nil {
			return nil, fmt.Errorf("code128: offset %d: %w", i, err)
		}
	}
	if st.pending != 0 {
		return nil, fmt.Errorf("code128: unpaired digit %q at end of set C: %w", st.pending, linecode.ErrCharacter)
	}
	return units, nil
}

// next consumes one rune and returns the following state along with units
// extended by whatever the rune produced.
func (s code128State) next(r rune, units []int) (code128State, []int, error) {
	if set, ok := code128Selectors[r]; ok {
		if len(units) == 0 {
			return code128State{set: set}, append(units, code128StartA+int(set-CharacterSetA)), nil
		}
		if s.pending != 0 {
			return s, units, fmt.Errorf("switch to set %s with unpaired digit %q: %w", set, s.pending, linecode.ErrCharacter)
		}
		v, ok := s.set.lookup(string(r))
		if !ok {
			return s, units, fmt.Errorf("cannot switch to set %s from set %s: %w", set, s.set, linecode.ErrCharacter)
		}
		return code128State{set: set}, append(units, v), nil
	}
	if s.set == CharacterSetC && r >= '0' && r <= '9' {
		if s.pending == 0 {
			return code128State{set: s.set, pending: r}, units, nil
		}
		return code128State{set: s.set}, append(units, int(s.pending-'0')*10+int(r-'0')), nil
	}
	if s.pending != 0 {
		return s, units, fmt.Errorf("%q interrupts digit pair after %q: %w", r, s.pending, linecode.ErrCharacter)
	}
	v, ok := s.set.lookup(string(r))
	if !ok {
		return s, units, fmt.Errorf("cannot encode %q in set %s: %w", r, s.set, linecode.ErrCharacter)
	}
	return s, append(units, v), nil
}
