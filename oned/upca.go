package oned

import "github.com/ericlevine/linecode"

// UPCA is a validated UPC-A symbol, encoded as the EAN-13 symbol with a
// leading zero.
type UPCA struct {
	ean13 *EAN13
}

// NewUPCA validates an 11 digit payload, or 12 digits whose last digit is
// the check digit.
func NewUPCA(contents string) (*UPCA, error) {
	if _, err := parse("upca", contents, digitAlphabet, 11, 12); err != nil {
		return nil, err
	}
	digits, err := parseUPCEAN("upca", "0"+contents, 12, true)
	if err != nil {
		return nil, err
	}
	return &UPCA{ean13: &EAN13{digits: digits}}, nil
}

// Symbology returns linecode.SymbologyUPCA.
func (u *UPCA) Symbology() linecode.Symbology { return linecode.SymbologyUPCA }

// CheckDigit returns the modulo 10 check digit.
func (u *UPCA) CheckDigit() int {
	return u.ean13.CheckDigit()
}

// Encode returns the 95 module pattern.
func (u *UPCA) Encode() linecode.Pattern {
	return u.ean13.Encode()
}
