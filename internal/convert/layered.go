package convert

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/exttool"
	"github.com/ironsheep/image-convert/internal/format"
)

// layeredStrategy handles Photoshop documents: in-process codec first,
// then a direct save through the vector-graphics engine, which honors
// the quality hint as compression level for JPEG targets.
type layeredStrategy struct {
	std    *standardStrategy
	magick *exttool.Magick
	log    logrus.FieldLogger
}

func (s *layeredStrategy) Convert(ctx context.Context, req Request) error {
	return runTechniques(ctx, s.log, req, []technique{
		{"raster codec", s.std.Convert},
		{"vector-graphics engine", s.viaEngine},
	})
}

func (s *layeredStrategy) viaEngine(ctx context.Context, req Request) error {
	return engineDirectSave(ctx, s.magick, req)
}

// engineDirectSave is the shared "open, set format, save" path for
// families whose fallback is a plain engine re-encode.
func engineDirectSave(ctx context.Context, m *exttool.Magick, req Request) error {
	job := m.Open(req.InputPath)
	job.SetFormat(req.Target)
	if req.Target == format.JPG {
		job.SetCompressionQuality(req.Quality)
	}
	return job.Save(ctx, req.OutputPath)
}
