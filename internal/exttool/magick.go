package exttool

import (
	"context"
	"strconv"

	"github.com/ironsheep/image-convert/internal/format"
)

// Magick drives the ImageMagick CLI as the general vector-graphics
// engine for EPS, AI, PSD, ICO and the legacy formats.
type Magick struct {
	// Binary is the ImageMagick entry point, normally "magick".
	Binary string

	Runner *Runner
}

// Open prepares a conversion job for one input file. Nothing runs
// until Save.
func (m *Magick) Open(path string) *Job {
	return &Job{magick: m, input: path}
}

// Job accumulates output parameters for a single opened input.
type Job struct {
	magick  *Magick
	input   string
	format  format.ID
	dpi     int
	quality int
}

// SetFormat forces the output format instead of deriving it from the
// output filename extension.
func (j *Job) SetFormat(f format.ID) { j.format = f }

// SetResolution sets the rasterization density in DPI. Only meaningful
// for vector inputs.
func (j *Job) SetResolution(dpi int) { j.dpi = dpi }

// SetCompressionQuality sets the lossy compression quality (1-100).
func (j *Job) SetCompressionQuality(q int) { j.quality = q }

// Save runs the conversion, writing the result to outPath.
func (j *Job) Save(ctx context.Context, outPath string) error {
	return j.magick.Runner.Run(ctx, j.magick.Binary, j.args(outPath)...)
}

// args assembles the CLI invocation. Density precedes the input so it
// applies to vector rasterization; an explicit format becomes an
// output-prefix so the extension of outPath is irrelevant.
func (j *Job) args(outPath string) []string {
	var args []string
	if j.dpi > 0 {
		args = append(args, "-density", strconv.Itoa(j.dpi))
	}
	args = append(args, j.input)
	if j.quality > 0 {
		args = append(args, "-quality", strconv.Itoa(j.quality))
	}
	out := outPath
	if j.format != "" {
		out = string(j.format) + ":" + outPath
	}
	return append(args, out)
}
