package linecode

// EncodeOptions configures generic encoder construction.
type EncodeOptions struct {
	// Checksum appends the optional check character where the symbology has
	// one (Code 39).
	Checksum bool

	// CharacterSet selects the Code 128 start set: "A", "B", "C", or empty
	// when the text begins with its own set selector.
	CharacterSet string
}

// Encoder is a validated symbol ready to be encoded.
type Encoder interface {
	// Symbology reports which symbology the encoder produces.
	Symbology() Symbology

	// Encode returns the module pattern of the symbol. It never fails; all
	// validation happens when the encoder is constructed.
	Encode() Pattern
}
