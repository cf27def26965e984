package oned

import "github.com/ericlevine/linecode"

const ean8CodeWidth = 3 + (7 * 4) + 5 + (7 * 4) + 3 // = 67

// EAN8 is a validated EAN-8 symbol.
type EAN8 struct {
	digits []int // 7 payload digits and the check digit
}

// NewEAN8 validates a 7 digit payload, or 8 digits whose last digit is the
// check digit.
func NewEAN8(contents string) (*EAN8, error) {
	digits, err := parseUPCEAN("ean8", contents, 7, false)
	if err != nil {
		return nil, err
	}
	return &EAN8{digits: digits}, nil
}

// Symbology returns linecode.SymbologyEAN8.
func (e *EAN8) Symbology() linecode.Symbology { return linecode.SymbologyEAN8 }

// CheckDigit returns the modulo 10 check digit.
func (e *EAN8) CheckDigit() int {
	return e.digits[7]
}

// Encode returns the 67 module EAN-8 pattern: four L digits, then three R
// digits and the R check digit.
func (e *EAN8) Encode() linecode.Pattern {
	result := make(linecode.Pattern, 0, ean8CodeWidth)
	result = appendPattern(result, UPCEANStartEndPattern, true)
	result = appendUPCEANDigits(result, e.digits[:4], 0, false)
	result = appendPattern(result, UPCEANMiddlePattern, false)
	result = appendUPCEANDigits(result, e.digits[4:], 0, true)
	return appendPattern(result, UPCEANStartEndPattern, true)
}
