// Package render turns encoded patterns into text, vector and raster
// output.
package render

import (
	"fmt"

	"github.com/ericlevine/linecode"
	"github.com/ericlevine/linecode/internal/options"
)

// Config holds the output dimensions shared by all renderers.
type Config struct {
	// Height of the symbol in rows, pixels or SVG user units.
	Height int
	// XDim is the width of a single module.
	XDim int
	// Margin is the quiet zone in modules on each side. Only raster output
	// draws it.
	Margin int
	// XMLNS is written as the SVG xmlns attribute when non-empty.
	XMLNS string
}

// Option configures a renderer.
type Option = options.Option[*Config]

// Default heights per output kind.
const (
	defaultTextHeight   = 10
	defaultSVGHeight    = 80
	defaultRasterHeight = 50
	defaultOneDMargin   = 10 // quiet zone in modules
)

// WithHeight sets the symbol height.
func WithHeight(height int) Option {
	return options.New(func(c *Config) error {
		if height < 1 {
			return fmt.Errorf("render: height must be at least 1, got %d: %w", height, linecode.ErrGenerate)
		}
		c.Height = height
		return nil
	})
}

// WithXDim sets the module width.
func WithXDim(xdim int) Option {
	return options.New(func(c *Config) error {
		if xdim < 1 {
			return fmt.Errorf("render: xdim must be at least 1, got %d: %w", xdim, linecode.ErrGenerate)
		}
		c.XDim = xdim
		return nil
	})
}

// WithMargin sets the raster quiet zone in modules.
func WithMargin(margin int) Option {
	return options.New(func(c *Config) error {
		if margin < 0 {
			return fmt.Errorf("render: margin must not be negative, got %d: %w", margin, linecode.ErrGenerate)
		}
		c.Margin = margin
		return nil
	})
}

// WithXMLNS sets the SVG namespace attribute.
func WithXMLNS(uri string) Option {
	return options.NoError(func(c *Config) { c.XMLNS = uri })
}

func newConfig(height, margin int, opts []Option) (*Config, error) {
	cfg := &Config{Height: height, XDim: 1, Margin: margin}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
