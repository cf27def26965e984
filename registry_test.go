package linecode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/linecode"
	_ "github.com/ericlevine/linecode/oned"
)

func TestEveryBuiltinSymbologyIsRegistered(t *testing.T) {
	for _, sym := range linecode.Symbologies() {
		_, err := linecode.NewEncoder(sym, "", nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, linecode.ErrGenerate, sym.String())
	}
}

func TestNewEncoderUnknownSymbology(t *testing.T) {
	enc, err := linecode.NewEncoder(linecode.Symbology(99), "1234", nil)
	require.ErrorIs(t, err, linecode.ErrGenerate)
	assert.Nil(t, enc)
}

func TestEncode(t *testing.T) {
	p, err := linecode.Encode(linecode.SymbologyEAN8, "5512345", nil)
	require.NoError(t, err)
	assert.Equal(t, "1010110001011000100110010010011010101000010101110010011101000100101", p.String())

	_, err = linecode.Encode(linecode.SymbologyEAN8, "55123", nil)
	require.ErrorIs(t, err, linecode.ErrLength)
}

func TestEncodeOptions(t *testing.T) {
	plain, err := linecode.Encode(linecode.SymbologyCode39, "1234", nil)
	require.NoError(t, err)
	checked, err := linecode.Encode(linecode.SymbologyCode39, "1234", &linecode.EncodeOptions{Checksum: true})
	require.NoError(t, err)
	assert.Len(t, checked, len(plain)+13)

	_, err = linecode.Encode(linecode.SymbologyCode128, "HELLO", nil)
	require.ErrorIs(t, err, linecode.ErrCharacter)

	p, err := linecode.Encode(linecode.SymbologyCode128, "HELLO", &linecode.EncodeOptions{CharacterSet: "A"})
	require.NoError(t, err)
	assert.Equal(t, "110100001001100010100010001101000100011011101000110111010001110110110100010001100011101011", p.String())

	_, err = linecode.Encode(linecode.SymbologyCode128, "HELLO", &linecode.EncodeOptions{CharacterSet: "Q"})
	require.ErrorIs(t, err, linecode.ErrCharacter)
}
