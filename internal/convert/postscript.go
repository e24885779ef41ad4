package convert

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/exttool"
	"github.com/ironsheep/image-convert/internal/format"
)

// postscriptDPI is the fixed rasterization density for EPS/AI inputs.
const postscriptDPI = 300

// postscriptStrategy handles EPS and Illustrator inputs. The
// vector-graphics engine saves vector targets directly and renders
// raster targets at a fixed density through an intermediate PNG. When
// the engine fails, Ghostscript converts to an intermediate PDF and
// the paged-document strategy takes over.
type postscriptStrategy struct {
	std    *standardStrategy
	magick *exttool.Magick
	tools  *exttool.Tools
	paged  *pagedStrategy
	log    logrus.FieldLogger
}

func (s *postscriptStrategy) Convert(ctx context.Context, req Request) error {
	return runTechniques(ctx, s.log, req, []technique{
		{"vector-graphics engine", s.viaEngine},
		{"ghostscript", s.viaGhostscript},
	})
}

func (s *postscriptStrategy) viaEngine(ctx context.Context, req Request) error {
	switch req.Target {
	case format.SVG, format.PDF, format.EPS:
		job := s.magick.Open(req.InputPath)
		job.SetFormat(req.Target)
		return job.Save(ctx, req.OutputPath)
	default:
		tmp, cleanup, err := tempFile("ps-*.png")
		if err != nil {
			return err
		}
		defer cleanup()

		job := s.magick.Open(req.InputPath)
		job.SetResolution(postscriptDPI)
		job.SetFormat(format.PNG)
		if err := job.Save(ctx, tmp); err != nil {
			return err
		}
		next := req
		next.InputPath = tmp
		return s.std.Convert(ctx, next)
	}
}

func (s *postscriptStrategy) viaGhostscript(ctx context.Context, req Request) error {
	tmp, cleanup, err := tempFile("ps-*.pdf")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := s.tools.ToPDF(ctx, req.InputPath, tmp); err != nil {
		return err
	}
	next := req
	next.InputPath = tmp
	next.Input = format.PDF
	return s.paged.Convert(ctx, next)
}
