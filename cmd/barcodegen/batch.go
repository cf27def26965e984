package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ericlevine/linecode"
)

// job is one entry of a batch file.
type job struct {
	Name      string `yaml:"name"`
	Symbology string `yaml:"symbology"`
	Data      string `yaml:"data"`
	Checksum  bool   `yaml:"checksum"`
	Charset   string `yaml:"charset"`
	Format    string `yaml:"format"`
	Height    int    `yaml:"height"`
	XDim      int    `yaml:"xdim"`
	Output    string `yaml:"output"`
}

// run encodes, renders and writes the job, returning the module count.
func (j *job) run(stdout io.Writer) (int, error) {
	sym, err := linecode.ParseSymbology(j.Symbology)
	if err != nil {
		return 0, err
	}
	p, err := linecode.Encode(sym, j.Data, &linecode.EncodeOptions{
		Checksum:     j.Checksum,
		CharacterSet: j.Charset,
	})
	if err != nil {
		return 0, err
	}
	out, err := renderPattern(p, j.Format, j.Height, j.XDim)
	if err != nil {
		return 0, err
	}
	if err := writeOutput(j.Output, out, stdout); err != nil {
		return 0, fmt.Errorf("write %s: %w", j.Output, err)
	}
	return len(p), nil
}

// loadJobs decodes a YAML list of jobs. Unknown keys are rejected.
func loadJobs(r io.Reader) ([]*job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var jobs []*job
	if err := dec.Decode(&jobs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("batch: job file is empty")
		}
		return nil, fmt.Errorf("batch: decode jobs: %w", err)
	}
	for i, j := range jobs {
		if j.Name == "" {
			j.Name = fmt.Sprintf("#%d", i+1)
		}
	}
	return jobs, nil
}

// runJobs runs every job. A failing job is logged and does not stop the
// rest; the returned error counts the failures.
func runJobs(logger *zap.Logger, jobs []*job, stdout io.Writer) error {
	failed := 0
	for _, j := range jobs {
		modules, err := j.run(stdout)
		if err != nil {
			failed++
			logger.Error("job failed",
				zap.String("job", j.Name),
				zap.String("symbology", j.Symbology),
				zap.Error(err))
			continue
		}
		logger.Info("job done",
			zap.String("job", j.Name),
			zap.String("symbology", j.Symbology),
			zap.Int("modules", modules),
			zap.String("output", j.Output))
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d jobs failed", failed, len(jobs))
	}
	return nil
}
