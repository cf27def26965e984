package linecode

import "fmt"

// EncoderFactory validates contents and builds an Encoder. opts is never nil.
type EncoderFactory func(contents string, opts *EncodeOptions) (Encoder, error)

var encoderFactories = map[Symbology]EncoderFactory{}

// RegisterEncoder registers the factory for the given symbology. It is meant
// to be called from package init functions.
func RegisterEncoder(sym Symbology, factory EncoderFactory) {
	encoderFactories[sym] = factory
}

// NewEncoder validates contents for the given symbology and returns an
// Encoder for it. A nil opts is treated as the zero EncodeOptions.
func NewEncoder(sym Symbology, contents string, opts *EncodeOptions) (Encoder, error) {
	factory, ok := encoderFactories[sym]
	if !ok {
		return nil, fmt.Errorf("no encoder registered for symbology %s: %w", sym, ErrGenerate)
	}
	if opts == nil {
		opts = &EncodeOptions{}
	}
	return factory(contents, opts)
}

// Encode is a convenience function that validates and encodes contents in a
// single call.
func Encode(sym Symbology, contents string, opts *EncodeOptions) (Pattern, error) {
	enc, err := NewEncoder(sym, contents, opts)
	if err != nil {
		return nil, err
	}
	return enc.Encode(), nil
}
