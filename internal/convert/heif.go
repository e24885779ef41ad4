package convert

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/exttool"
)

// heifStrategy handles HEIF/HEIC inputs. The in-process codec is tried
// first in case a HEIF decoder is registered; the external
// heif-convert tool is the fallback, producing an intermediate PNG
// that funnels through the standard re-encode.
type heifStrategy struct {
	std   *standardStrategy
	tools *exttool.Tools
	log   logrus.FieldLogger
}

func (s *heifStrategy) Convert(ctx context.Context, req Request) error {
	return runTechniques(ctx, s.log, req, []technique{
		{"raster codec", s.std.Convert},
		{"heif-convert", s.viaTool},
	})
}

func (s *heifStrategy) viaTool(ctx context.Context, req Request) error {
	tmp, cleanup, err := tempFile("heif-*.png")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := s.tools.HeifToPNG(ctx, req.InputPath, tmp); err != nil {
		return err
	}
	next := req
	next.InputPath = tmp
	return s.std.Convert(ctx, next)
}
