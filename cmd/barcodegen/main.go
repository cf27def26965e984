// Command barcodegen encodes text as linear barcodes and writes them as
// ASCII art, JSON, SVG, PNG, BMP or raw module bits.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ericlevine/linecode"

	// Register all symbology encoders.
	_ "github.com/ericlevine/linecode/oned"
)

func main() {
	app := newApp(os.Stdout, nil)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// newApp builds the CLI. When logger is nil one is created from the
// --verbose flag before any command runs.
func newApp(stdout io.Writer, logger *zap.Logger) *cli.App {
	renderFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: formatASCII,
			Usage: "Output format: ascii, json, svg, png, bmp or bits",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "Symbol height; 0 uses the format default",
		},
		&cli.IntFlag{
			Name:  "xdim",
			Usage: "Module width; 0 uses the format default",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write to `FILE` instead of standard output",
		},
	}

	return &cli.App{
		Name:      "barcodegen",
		Usage:     "Encode text as linear barcodes",
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log with the development configuration",
			},
		},
		Before: func(c *cli.Context) error {
			if logger != nil {
				return nil
			}
			var err error
			if c.Bool("verbose") {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		After: func(*cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode a single text",
				ArgsUsage: "<text>",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "symbology",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Symbology name, for example code128 or ean13",
					},
					&cli.BoolFlag{
						Name:  "checksum",
						Usage: "Append the optional check character (Code 39)",
					},
					&cli.StringFlag{
						Name:  "charset",
						Usage: "Initial Code 128 character set: A, B or C",
					},
				}, renderFlags...),
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("encode: expected exactly one text argument, got %d", c.NArg())
					}
					j := &job{
						Name:      "encode",
						Symbology: c.String("symbology"),
						Data:      c.Args().First(),
						Checksum:  c.Bool("checksum"),
						Charset:   c.String("charset"),
						Format:    c.String("format"),
						Height:    c.Int("height"),
						XDim:      c.Int("xdim"),
						Output:    c.String("output"),
					}
					modules, err := j.run(c.App.Writer)
					if err != nil {
						return err
					}
					logger.Debug("encoded", zap.String("symbology", j.Symbology), zap.Int("modules", modules))
					return nil
				},
			},
			{
				Name:      "batch",
				Usage:     "Run the encode jobs listed in a YAML file",
				ArgsUsage: "<jobs.yaml>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("batch: expected exactly one job file, got %d", c.NArg())
					}
					f, err := os.Open(c.Args().First())
					if err != nil {
						return err
					}
					defer f.Close()

					jobs, err := loadJobs(f)
					if err != nil {
						return err
					}
					return runJobs(logger, jobs, c.App.Writer)
				},
			},
			{
				Name:      "render",
				Usage:     "Render a raw module pattern of 1s and 0s",
				ArgsUsage: "<bits>",
				Flags:     renderFlags,
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("render: expected exactly one bit string, got %d", c.NArg())
					}
					p, err := linecode.ParsePattern(c.Args().First())
					if err != nil {
						return err
					}
					out, err := renderPattern(p, c.String("format"), c.Int("height"), c.Int("xdim"))
					if err != nil {
						return err
					}
					return writeOutput(c.String("output"), out, c.App.Writer)
				},
			},
			{
				Name:  "list",
				Usage: "List supported symbologies",
				Action: func(c *cli.Context) error {
					for _, sym := range linecode.Symbologies() {
						fmt.Fprintln(c.App.Writer, sym)
					}
					return nil
				},
			},
		},
	}
}
