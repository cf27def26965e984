package oned

import "github.com/ericlevine/linecode"

// The last four characters are the shift characters ($), (%), (/) and (+).
const code93Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%()[]"

// Each entry is the 9-module bit pattern of a character, most significant
// bit first.
var code93CharacterEncodings = [47]uint32{
	0x114, 0x148, 0x144, 0x142, 0x128, 0x124, 0x122, 0x150, 0x112, 0x10A, // 0-9
	0x1A8, 0x1A4, 0x1A2, 0x194, 0x192, 0x18A, 0x168, 0x164, 0x162, 0x134, // A-J
	0x11A, 0x158, 0x14C, 0x146, 0x12C, 0x116, 0x1B4, 0x1B2, 0x1AC, 0x1A6, // K-T
	0x196, 0x19A, 0x16C, 0x166, 0x136, 0x13A, // U-Z
	0x12E, 0x1D4, 0x1D2, 0x1CA, 0x16E, 0x176, 0x1AE, // - . space $ / + %
	0x126, 0x1DA, 0x1D6, 0x132, // ( ) [ ]
}

const code93AsteriskEncoding = 0x15E

// Code93 is a validated Code 93 symbol.
type Code93 struct {
	units []int
}

// NewCode93 validates contents and returns a Code 93 symbol.
func NewCode93(contents string) (*Code93, error) {
	units, err := parse("code93", contents, code93Alphabet, 1, maxLength)
	if err != nil {
		return nil, err
	}
	return &Code93{units: units}, nil
}

// Symbology returns linecode.SymbologyCode93.
func (c *Code93) Symbology() linecode.Symbology { return linecode.SymbologyCode93 }

// CheckCharacters returns the C and K check characters.
func (c *Code93) CheckCharacters() string {
	check1, check2 := c.checks()
	return string([]byte{code93Alphabet[check1], code93Alphabet[check2]})
}

func (c *Code93) checks() (int, int) {
	check1 := code93ComputeChecksumIndex(c.units, 20)
	extended := append(append(make([]int, 0, len(c.units)+1), c.units...), check1)
	return check1, code93ComputeChecksumIndex(extended, 15)
}

// Encode returns the start guard, data, both check characters, the stop
// guard and a single termination bar. Characters are not separated.
func (c *Code93) Encode() linecode.Pattern {
	check1, check2 := c.checks()
	result := make(linecode.Pattern, 0, (len(c.units)+4)*9+1)
	result = appendBits(result, code93AsteriskEncoding, 9)
	for _, u := range c.units {
		result = appendBits(result, code93CharacterEncodings[u], 9)
	}
	result = appendBits(result, code93CharacterEncodings[check1], 9)
	result = appendBits(result, code93CharacterEncodings[check2], 9)
	result = appendBits(result, code93AsteriskEncoding, 9)

	// termination bar (single black bar)
	return append(result, 1)
}

func code93ComputeChecksumIndex(indices []int, maxWeight int) int {
	return weightedChecksum(indices, maxWeight, 47)
}
