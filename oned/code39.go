package oned

import "github.com/ericlevine/linecode"

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// Each entry is a 9-bit mask of the character's elements, bar first, with a
// set bit marking a wide element.
var code39CharacterEncodings = [43]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39AsteriskEncoding = 0x094

// Code39 is a validated Code 39 symbol.
type Code39 struct {
	units    []int
	checksum bool
}

// NewCode39 validates contents and returns a Code 39 symbol without a check
// character.
func NewCode39(contents string) (*Code39, error) {
	return newCode39(contents, false)
}

// NewCode39WithChecksum is like NewCode39 but appends the modulo 43 check
// character.
func NewCode39WithChecksum(contents string) (*Code39, error) {
	return newCode39(contents, true)
}

func newCode39(contents string, checksum bool) (*Code39, error) {
	units, err := parse("code39", contents, code39Alphabet, 1, maxLength)
	if err != nil {
		return nil, err
	}
	return &Code39{units: units, checksum: checksum}, nil
}

// Symbology returns linecode.SymbologyCode39.
func (c *Code39) Symbology() linecode.Symbology { return linecode.SymbologyCode39 }

// CheckCharacter returns the modulo 43 check character. It is part of the
// encoded symbol only when the symbol was built with a checksum.
func (c *Code39) CheckCharacter() byte {
	return code39Alphabet[modulo43(c.units)]
}

// Encode returns the asterisk guards around the data characters, with a
// narrow space after the start guard and after every character.
func (c *Code39) Encode() linecode.Pattern {
	n := len(c.units) + 2
	if c.checksum {
		n++
	}
	widths := make([]int, 9)
	result := make(linecode.Pattern, 0, n*13)

	code39ToIntArray(code39AsteriskEncoding, widths)
	result = appendPattern(result, widths, true)
	result = appendGap(result)
	for _, u := range c.units {
		code39ToIntArray(code39CharacterEncodings[u], widths)
		result = appendPattern(result, widths, true)
		result = appendGap(result)
	}
	if c.checksum {
		code39ToIntArray(code39CharacterEncodings[modulo43(c.units)], widths)
		result = appendPattern(result, widths, true)
		result = appendGap(result)
	}
	code39ToIntArray(code39AsteriskEncoding, widths)
	return appendPattern(result, widths, true)
}

func code39ToIntArray(a int, toReturn []int) {
	for i := 0; i < 9; i++ {
		if a&(1<<uint(8-i)) != 0 {
			toReturn[i] = 2
		} else {
			toReturn[i] = 1
		}
	}
}
