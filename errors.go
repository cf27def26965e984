package linecode

import "errors"

var (
	// ErrLength is returned when the input length is outside the range the
	// symbology accepts.
	ErrLength = errors.New("length error")

	// ErrCharacter is returned when the input contains a character the
	// symbology cannot encode.
	ErrCharacter = errors.New("character error")

	// ErrChecksum is returned when a supplied check digit does not match the
	// computed one.
	ErrChecksum = errors.New("checksum error")

	// ErrGenerate is returned when a barcode cannot be produced for reasons
	// other than the input text.
	ErrGenerate = errors.New("generate error")

	// ErrConversion is returned when an encoded pattern cannot be converted
	// into an output representation.
	ErrConversion = errors.New("conversion error")
)
