package render

import (
	"fmt"
	"math"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ericlevine/linecode"
)

// ASCII draws the pattern as Height identical rows of '#' (bar) and ' '
// (space), each module XDim characters wide. Rows are separated by '\n'
// with no trailing newline.
func ASCII(p linecode.Pattern, opts ...Option) (string, error) {
	cfg, err := newConfig(defaultTextHeight, 0, opts)
	if err != nil {
		return "", err
	}
	cfg.Margin = 0
	m, err := rasterize(p, cfg)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(m.StringWithChars("#", " "), "\n"), nil
}

type jsonSymbol struct {
	Height   int   `json:"height"`
	XDim     int   `json:"xdim"`
	Encoding []int `json:"encoding"`
}

// JSON returns {"height":H,"xdim":X,"encoding":[1,0,...]}.
func JSON(p linecode.Pattern, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(defaultTextHeight, 0, opts)
	if err != nil {
		return nil, err
	}
	if err := checkDimensions(p, cfg); err != nil {
		return nil, err
	}
	encoding := make([]int, len(p))
	for i, m := range p {
		if m != 0 {
			encoding[i] = 1
		}
	}
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	return json.Marshal(jsonSymbol{Height: cfg.Height, XDim: cfg.XDim, Encoding: encoding})
}

// SVG returns a black-on-white SVG document with one rect per bar module
// over a background rect.
func SVG(p linecode.Pattern, opts ...Option) (string, error) {
	cfg, err := newConfig(defaultSVGHeight, 0, opts)
	if err != nil {
		return "", err
	}
	if err := checkDimensions(p, cfg); err != nil {
		return "", err
	}
	width := len(p) * cfg.XDim

	var sb strings.Builder
	sb.WriteString(`<svg version="1.1" `)
	if cfg.XMLNS != "" {
		fmt.Fprintf(&sb, `xmlns="%s" `, cfg.XMLNS)
	}
	fmt.Fprintf(&sb, `viewBox="0 0 %d %d">`, width, cfg.Height)
	writeRect(&sb, 0, width, cfg.Height, "ffffff")
	for i, m := range p {
		if m != 0 {
			writeRect(&sb, i*cfg.XDim, cfg.XDim, cfg.Height, "000000")
		}
	}
	sb.WriteString("</svg>")
	return sb.String(), nil
}

func writeRect(sb *strings.Builder, x, width, height int, fill string) {
	fmt.Fprintf(sb, `<rect x="%d" y="0" width="%d" height="%d" fill="#%s"/>`, x, width, height, fill)
}

// checkDimensions rejects sizes that do not fit the 32-bit unsigned
// dimensions of the text and vector formats.
func checkDimensions(p linecode.Pattern, cfg *Config) error {
	if uint64(len(p))*uint64(cfg.XDim) > math.MaxUint32 || uint64(cfg.Height) > math.MaxUint32 {
		return fmt.Errorf("render: %d modules at xdim %d and height %d exceed 32-bit dimensions: %w",
			len(p), cfg.XDim, cfg.Height, linecode.ErrConversion)
	}
	return nil
}
