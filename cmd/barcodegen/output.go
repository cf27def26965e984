package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ericlevine/linecode"
	"github.com/ericlevine/linecode/render"
)

const (
	formatASCII = "ascii"
	formatJSON  = "json"
	formatSVG   = "svg"
	formatPNG   = "png"
	formatBMP   = "bmp"
	formatBits  = "bits"
)

// renderPattern renders p in the named format. Zero height or xdim keeps
// the renderer default.
func renderPattern(p linecode.Pattern, format string, height, xdim int) ([]byte, error) {
	var opts []render.Option
	if height != 0 {
		opts = append(opts, render.WithHeight(height))
	}
	if xdim != 0 {
		opts = append(opts, render.WithXDim(xdim))
	}

	switch format {
	case formatASCII, "":
		s, err := render.ASCII(p, opts...)
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	case formatJSON:
		b, err := render.JSON(p, opts...)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case formatSVG:
		s, err := render.SVG(p, opts...)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case formatPNG, formatBMP:
		m, err := render.Raster(p, opts...)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		write := render.WritePNG
		if format == formatBMP {
			write = render.WriteBMP
		}
		if err := write(&buf, render.NewImage(m)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatBits:
		return []byte(p.String() + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
