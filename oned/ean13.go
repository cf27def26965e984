package oned

import "github.com/ericlevine/linecode"

const ean13CodeWidth = 3 + (7 * 6) + 5 + (7 * 6) + 3 // = 95

// EAN-13 first digit encodings: the first digit is encoded by the parity pattern
// used for the next 6 digits. Odd=0, Even=1.
var ean13FirstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// EAN13 is a validated EAN-13 symbol. Bookland (978/979) and JAN (45/49)
// numbers are EAN-13 numbers and need no special handling.
type EAN13 struct {
	digits []int // 12 payload digits and the check digit
}

// NewEAN13 validates a 12 digit payload, or 13 digits whose last digit is
// the check digit.
func NewEAN13(contents string) (*EAN13, error) {
	digits, err := parseUPCEAN("ean13", contents, 12, true)
	if err != nil {
		return nil, err
	}
	return &EAN13{digits: digits}, nil
}

// Symbology returns linecode.SymbologyEAN13.
func (e *EAN13) Symbology() linecode.Symbology { return linecode.SymbologyEAN13 }

// CheckDigit returns the modulo 10 check digit.
func (e *EAN13) CheckDigit() int {
	return e.digits[12]
}

// Encode returns the 95 module EAN-13 pattern. The first digit is carried
// by the L/G parities of digits two to seven.
func (e *EAN13) Encode() linecode.Pattern {
	result := make(linecode.Pattern, 0, ean13CodeWidth)
	result = appendPattern(result, UPCEANStartEndPattern, true)
	result = appendUPCEANDigits(result, e.digits[1:7], ean13FirstDigitEncodings[e.digits[0]], false)
	result = appendPattern(result, UPCEANMiddlePattern, false)
	result = appendUPCEANDigits(result, e.digits[7:13], 0, true)
	return appendPattern(result, UPCEANStartEndPattern, true)
}
