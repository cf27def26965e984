package oned

import "github.com/ericlevine/linecode"

func init() {
	register(linecode.SymbologyCodabar, func(contents string, _ *linecode.EncodeOptions) (*Codabar, error) {
		return NewCodabar(contents)
	})
	register(linecode.SymbologyCode11, func(contents string, _ *linecode.EncodeOptions) (*Code11, error) {
		return NewCode11(contents)
	})
	register(linecode.SymbologyCode39, func(contents string, opts *linecode.EncodeOptions) (*Code39, error) {
		return newCode39(contents, opts.Checksum)
	})
	register(linecode.SymbologyCode93, func(contents string, _ *linecode.EncodeOptions) (*Code93, error) {
		return NewCode93(contents)
	})
	register(linecode.SymbologyCode128, func(contents string, opts *linecode.EncodeOptions) (*Code128, error) {
		set, err := ParseCharacterSet(opts.CharacterSet)
		if err != nil {
			return nil, err
		}
		return NewCode128(contents, set)
	})
	register(linecode.SymbologyEAN13, func(contents string, _ *linecode.EncodeOptions) (*EAN13, error) {
		return NewEAN13(contents)
	})
	register(linecode.SymbologyEAN8, func(contents string, _ *linecode.EncodeOptions) (*EAN8, error) {
		return NewEAN8(contents)
	})
	register(linecode.SymbologyUPCA, func(contents string, _ *linecode.EncodeOptions) (*UPCA, error) {
		return NewUPCA(contents)
	})
	register(linecode.SymbologyEANSupplemental, func(contents string, _ *linecode.EncodeOptions) (*EANSupplement, error) {
		return NewEANSupplement(contents)
	})
	register(linecode.SymbologyStandardTwoOfFive, func(contents string, _ *linecode.EncodeOptions) (*TwoOfFive, error) {
		return NewStandardTwoOfFive(contents)
	})
	register(linecode.SymbologyInterleavedTwoOfFive, func(contents string, _ *linecode.EncodeOptions) (*TwoOfFive, error) {
		return NewInterleavedTwoOfFive(contents)
	})
}

// register adapts a typed constructor to linecode.EncoderFactory. A failed
// construction returns a nil Encoder.
func register[T linecode.Encoder](sym linecode.Symbology, build func(string, *linecode.EncodeOptions) (T, error)) {
	linecode.RegisterEncoder(sym, func(contents string, opts *linecode.EncodeOptions) (linecode.Encoder, error) {
		enc, err := build(contents, opts)
		if err != nil {
			return nil, err
		}
		return enc, nil
	})
}
