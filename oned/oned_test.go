package oned

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/linecode"
)

type vector struct {
	contents string
	want     string
}

func checkVectors(t *testing.T, build func(string) (linecode.Encoder, error), vectors []vector) {
	t.Helper()
	for _, tc := range vectors {
		t.Run(tc.contents, func(t *testing.T) {
			enc, err := build(tc.contents)
			require.NoError(t, err)
			assert.Equal(t, tc.want, enc.Encode().String())
		})
	}
}

func checkErrors(t *testing.T, build func(string) (linecode.Encoder, error), inputs []string, want error) {
	t.Helper()
	for _, contents := range inputs {
		t.Run(contents, func(t *testing.T) {
			enc, err := build(contents)
			require.ErrorIs(t, err, want)
			assert.Nil(t, enc)
		})
	}
}

// adapt turns a typed constructor into one returning linecode.Encoder,
// preserving a nil result on error.
func adapt[T linecode.Encoder](fn func(string) (T, error)) func(string) (linecode.Encoder, error) {
	return func(s string) (linecode.Encoder, error) {
		enc, err := fn(s)
		if err != nil {
			return nil, err
		}
		return enc, nil
	}
}

// --- Codabar ---

func TestCodabarEncode(t *testing.T) {
	checkVectors(t, adapt(NewCodabar), []vector{
		{"A1234B", "1011001001010101100101010010110110010101010110100101010010011"},
		{"A40156B", "10110010010101101001010101001101010110010110101001010010101101010010011"},
		{"A0D", "1011001001010101001101010011001"},
	})
}

func TestCodabarErrors(t *testing.T) {
	checkErrors(t, adapt(NewCodabar), []string{"", strings.Repeat("1", 256)}, linecode.ErrLength)
	checkErrors(t, adapt(NewCodabar), []string{"A12345G", "a1B", "1 2"}, linecode.ErrCharacter)
}

func TestCodabarGapsBetweenCharacters(t *testing.T) {
	one, err := NewCodabar("1")
	require.NoError(t, err)
	two, err := NewCodabar("11")
	require.NoError(t, err)
	p1, p2 := one.Encode().String(), two.Encode().String()
	assert.Equal(t, p1+"0"+p1, p2)
}

// --- Code 11 ---

func TestCode11Encode(t *testing.T) {
	checkVectors(t, adapt(NewCode11), []vector{
		{"123-45", "1011001011010110100101101100101010110101011011011011010110110101011001"},
		{"666", "10110010100110101001101010011010110010101011001"},
		{"12-9", "10110010110101101001011010110101101010100110101011001"},
		{"1234-5678-4321", "101100101101011010010110110010101011011010110101101101010011010101001101101001010110101011011011001010100101101101011011011010100110101011001"},
	})
}

func TestCode11CheckCharacters(t *testing.T) {
	short, err := NewCode11("123-45")
	require.NoError(t, err)
	assert.Equal(t, "5", short.CheckCharacters())

	long, err := NewCode11("1234-5678-4321")
	require.NoError(t, err)
	// Both C and K use modulus 11, matching the established encoder output.
	assert.Equal(t, "56", long.CheckCharacters())
}

func TestCode11KAppearsAboveTenCharacters(t *testing.T) {
	ten, err := NewCode11("0123456789")
	require.NoError(t, err)
	eleven, err := NewCode11("01234567890")
	require.NoError(t, err)
	assert.Len(t, ten.CheckCharacters(), 1)
	assert.Len(t, eleven.CheckCharacters(), 2)
}

func TestCode11Errors(t *testing.T) {
	checkErrors(t, adapt(NewCode11), []string{""}, linecode.ErrLength)
	checkErrors(t, adapt(NewCode11), []string{"NOTDIGITS", "1212s", "12.3"}, linecode.ErrCharacter)
}

// --- Code 39 ---

func TestCode39Encode(t *testing.T) {
	checkVectors(t, adapt(NewCode39), []vector{
		{"1234", "10010110110101101001010110101100101011011011001010101010011010110100101101101"},
		{"983RD512", "100101101101010110010110101101001011010110110010101011010101100101010110010110110100110101011010010101101011001010110100101101101"},
		{"TEST8052", "100101101101010101101100101101011001010101101011001010101101100101101001011010101001101101011010011010101011001010110100101101101"},
	})
}

func TestCode39EncodeWithChecksum(t *testing.T) {
	checkVectors(t, adapt(NewCode39WithChecksum), []vector{
		{"1234", "100101101101011010010101101011001010110110110010101010100110101101101010010110100101101101"},
		{"983RD512", "1001011011010101100101101011010010110101101100101010110101011001010101100101101101001101010110100101011010110010101101011011010010100101101101"},
	})
}

func TestCode39CheckCharacter(t *testing.T) {
	c, err := NewCode39("1234")
	require.NoError(t, err)
	assert.Equal(t, byte('A'), c.CheckCharacter())

	c, err = NewCode39("983RD512")
	require.NoError(t, err)
	assert.Equal(t, byte('P'), c.CheckCharacter())
}

func TestCode39Framing(t *testing.T) {
	c, err := NewCode39("A")
	require.NoError(t, err)
	p := c.Encode().String()
	guard := "100101101101"
	assert.True(t, strings.HasPrefix(p, guard+"0"))
	assert.True(t, strings.HasSuffix(p, "0"+guard))
	assert.Len(t, p, 38)
}

func TestCode39Errors(t *testing.T) {
	checkErrors(t, adapt(NewCode39), []string{"", strings.Repeat("A", 256)}, linecode.ErrLength)
	checkErrors(t, adapt(NewCode39), []string{"lowerCASE", "AB*C"}, linecode.ErrCharacter)
}

// --- Code 93 ---

func TestCode93Encode(t *testing.T) {
	checkVectors(t, adapt(NewCode93), []vector{
		{"TEST93", "1010111101101001101100100101101011001101001101000010101010000101011101101001000101010111101"},
		{"FLAM", "1010111101100010101010110001101010001010011001001011001010011001010111101"},
		{"99", "1010111101000010101000010101101100101000101101010111101"},
		{"1111111111111111111111", "1010111101010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001010010001000101101110010101010111101"},
	})
}

func TestCode93CheckCharacters(t *testing.T) {
	c, err := NewCode93("TEST93")
	require.NoError(t, err)
	assert.Equal(t, "+6", c.CheckCharacters())
}

func TestCode93Framing(t *testing.T) {
	c, err := NewCode93("A")
	require.NoError(t, err)
	p := c.Encode().String()
	assert.Len(t, p, 46)
	assert.True(t, strings.HasPrefix(p, "101011110"))
	assert.True(t, strings.HasSuffix(p, "1010111101"))
}

func TestCode93Errors(t *testing.T) {
	checkErrors(t, adapt(NewCode93), []string{""}, linecode.ErrLength)
	checkErrors(t, adapt(NewCode93), []string{"lowerCASE", "A*B"}, linecode.ErrCharacter)
}

// --- EAN-13 ---

func TestEAN13Encode(t *testing.T) {
	checkVectors(t, adapt(NewEAN13), []vector{
		{"750103131130", "10101100010100111001100101001110111101011001101010100001011001101100110100001011100101110100101"},
		{"983465123499", "10101101110100001001110101011110111001001100101010110110010000101011100111010011101001000010101"},
		// Bookland
		{"978345612345", "10101110110001001010000101000110111001010111101010110011011011001000010101110010011101001110101"},
		{"978118999561", "10101110110001001011001100110010001001000101101010111010011101001001110101000011001101001110101"},
	})
}

func TestEAN13CheckDigit(t *testing.T) {
	e, err := NewEAN13("750103131130")
	require.NoError(t, err)
	assert.Equal(t, 9, e.CheckDigit())

	full, err := NewEAN13("7501031311309")
	require.NoError(t, err)
	assert.Equal(t, e.Encode(), full.Encode())
}

func TestEAN13Framing(t *testing.T) {
	e, err := NewEAN13("978345612345")
	require.NoError(t, err)
	p := e.Encode().String()
	require.Len(t, p, 95)
	assert.Equal(t, "101", p[:3])
	assert.Equal(t, "01010", p[45:50])
	assert.Equal(t, "101", p[92:])
}

func TestEAN13Errors(t *testing.T) {
	checkErrors(t, adapt(NewEAN13), []string{"", "12345678901", "1111112222222333333"}, linecode.ErrLength)
	checkErrors(t, adapt(NewEAN13), []string{"1234er123412", "12345678901A"}, linecode.ErrCharacter)
	checkErrors(t, adapt(NewEAN13), []string{"8801051294881", "7501031311305"}, linecode.ErrChecksum)
}

// --- EAN-8 ---

func TestEAN8Encode(t *testing.T) {
	checkVectors(t, adapt(NewEAN8), []vector{
		{"5512345", "1010110001011000100110010010011010101000010101110010011101000100101"},
		{"9834651", "1010001011011011101111010100011010101010000100111011001101010000101"},
	})
}

func TestEAN8CheckDigit(t *testing.T) {
	e, err := NewEAN8("5512345")
	require.NoError(t, err)
	assert.Equal(t, 7, e.CheckDigit())

	full, err := NewEAN8("55123457")
	require.NoError(t, err)
	assert.Equal(t, e.Encode(), full.Encode())
	assert.Len(t, full.Encode(), 67)
}

func TestEAN8Errors(t *testing.T) {
	checkErrors(t, adapt(NewEAN8), []string{"", "123456", "123456789"}, linecode.ErrLength)
	checkErrors(t, adapt(NewEAN8), []string{"WORDUP1"}, linecode.ErrCharacter)
	checkErrors(t, adapt(NewEAN8), []string{"88023020"}, linecode.ErrChecksum)
}

// --- UPC-A ---

func TestUPCAEncode(t *testing.T) {
	u, err := NewUPCA("03600029145")
	require.NoError(t, err)
	assert.Equal(t, 2, u.CheckDigit())
	assert.Equal(t, linecode.SymbologyUPCA, u.Symbology())

	e, err := NewEAN13("003600029145")
	require.NoError(t, err)
	assert.Equal(t, e.Encode(), u.Encode())
	assert.Equal(t, "10100011010111101010111100011010001101000110101010110110011101001100110101110010011101101100101", u.Encode().String())
}

func TestUPCAErrors(t *testing.T) {
	checkErrors(t, adapt(NewUPCA), []string{"", "0360002914", "0360002914520"}, linecode.ErrLength)
	checkErrors(t, adapt(NewUPCA), []string{"0360002914A"}, linecode.ErrCharacter)
	checkErrors(t, adapt(NewUPCA), []string{"036000291453"}, linecode.ErrChecksum)
}

// --- EAN supplementals ---

func TestEANSupplementEncode(t *testing.T) {
	checkVectors(t, adapt(NewEANSupplement), []vector{
		{"34", "10110100001010100011"},
		{"51234", "10110110001010011001010011011010111101010011101"},
	})
}

func TestEAN2ParityFollowsValueModFour(t *testing.T) {
	// residue 0: LL, 1: LG, 2: GL, 3: GG
	checkVectors(t, adapt(NewEANSupplement), []vector{
		{"00", "1011" + "0001101" + "01" + "0001101"},
		{"01", "1011" + "0001101" + "01" + "0110011"},
		{"02", "1011" + "0100111" + "01" + "0010011"},
		{"03", "1011" + "0100111" + "01" + "0100001"},
		{"96", "10110001011010101111"},
		{"99", "10110010111010010111"},
	})
}

func TestEANSupplementErrors(t *testing.T) {
	checkErrors(t, adapt(NewEANSupplement), []string{"", "1", "123", "1234", "123456"}, linecode.ErrLength)
	checkErrors(t, adapt(NewEANSupplement), []string{"AT", "1234A"}, linecode.ErrCharacter)
}

// --- 2 of 5 ---

func TestInterleavedTwoOfFiveEncode(t *testing.T) {
	checkVectors(t, adapt(NewInterleavedTwoOfFive), []vector{
		{"1234567", "10101110100010101110001110111010001010001110100011100010101010100011100011101101"},
		{"12", "10101110100010101110001101"},
	})
}

func TestInterleavedTwoOfFiveAppendsCheckDigit(t *testing.T) {
	odd, err := NewInterleavedTwoOfFive("1234567")
	require.NoError(t, err)
	assert.Equal(t, "12345670", odd.Digits())

	even, err := NewInterleavedTwoOfFive("12345670")
	require.NoError(t, err)
	assert.Equal(t, odd.Encode(), even.Encode())
}

func TestStandardTwoOfFiveEncode(t *testing.T) {
	checkVectors(t, adapt(NewStandardTwoOfFive), []vector{
		{"1234567", "110110101110101010111010111010101110111011101010101010111010111011101011101010101110111010101010101110111011010110"},
		{"0", "110110101010111011101011010110"},
	})
}

func TestTwoOfFiveErrors(t *testing.T) {
	for name, build := range map[string]func(string) (linecode.Encoder, error){
		"standard":    adapt(NewStandardTwoOfFive),
		"interleaved": adapt(NewInterleavedTwoOfFive),
	} {
		t.Run(name, func(t *testing.T) {
			checkErrors(t, build, []string{"", strings.Repeat("1", 256)}, linecode.ErrLength)
			checkErrors(t, build, []string{"1234er123412", "12 34"}, linecode.ErrCharacter)
		})
	}
}

// --- common properties ---

func TestLengthCheckedBeforeCharacters(t *testing.T) {
	_, err := NewCode39(strings.Repeat("a", 256))
	require.ErrorIs(t, err, linecode.ErrLength)

	_, err = NewEAN13("abc")
	require.ErrorIs(t, err, linecode.ErrLength)
}

func TestBoundaryLengthsAccepted(t *testing.T) {
	tests := []struct {
		sym      linecode.Symbology
		unit     string
		min, max int
	}{
		{linecode.SymbologyCodabar, "1", 1, maxLength},
		{linecode.SymbologyCode11, "1", 1, maxLength},
		{linecode.SymbologyCode39, "A", 1, maxLength},
		{linecode.SymbologyCode93, "A", 1, maxLength},
		{linecode.SymbologyCode128, "a", 2, maxLength},
		{linecode.SymbologyStandardTwoOfFive, "1", 1, maxLength},
		{linecode.SymbologyInterleavedTwoOfFive, "1", 1, maxLength},
	}
	opts := &linecode.EncodeOptions{CharacterSet: "B"}
	for _, tc := range tests {
		t.Run(tc.sym.String(), func(t *testing.T) {
			for _, n := range []int{tc.min, tc.max} {
				enc, err := linecode.NewEncoder(tc.sym, strings.Repeat(tc.unit, n), opts)
				require.NoError(t, err, "length %d", n)
				assert.NotEmpty(t, enc.Encode())
			}
			_, err := linecode.NewEncoder(tc.sym, strings.Repeat(tc.unit, tc.max+1), opts)
			require.ErrorIs(t, err, linecode.ErrLength)
			_, err = linecode.NewEncoder(tc.sym, strings.Repeat(tc.unit, tc.min-1), opts)
			require.ErrorIs(t, err, linecode.ErrLength)
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	tests := []struct {
		sym      linecode.Symbology
		contents string
	}{
		{linecode.SymbologyCodabar, "A123B"},
		{linecode.SymbologyCode11, "123-45"},
		{linecode.SymbologyCode39, "HELLO"},
		{linecode.SymbologyCode93, "HELLO"},
		{linecode.SymbologyCode128, "Hello"},
		{linecode.SymbologyEAN13, "750103131130"},
		{linecode.SymbologyEAN8, "5512345"},
		{linecode.SymbologyUPCA, "03600029145"},
		{linecode.SymbologyEANSupplemental, "51234"},
		{linecode.SymbologyStandardTwoOfFive, "1234"},
		{linecode.SymbologyInterleavedTwoOfFive, "1234"},
	}
	require.Len(t, tests, len(linecode.Symbologies()))
	for _, tc := range tests {
		t.Run(tc.sym.String(), func(t *testing.T) {
			enc, err := linecode.NewEncoder(tc.sym, tc.contents, &linecode.EncodeOptions{CharacterSet: "B"})
			require.NoError(t, err)
			assert.Equal(t, tc.sym, enc.Symbology())
			first := enc.Encode()
			first[0] ^= 1
			assert.NotEqual(t, first, enc.Encode())
			assert.Equal(t, enc.Encode(), enc.Encode())
		})
	}
}

func TestPatternsStartWithBar(t *testing.T) {
	enc, err := linecode.NewEncoder(linecode.SymbologyCode39, "A", nil)
	require.NoError(t, err)
	assert.Equal(t, byte(1), enc.Encode()[0])
}
