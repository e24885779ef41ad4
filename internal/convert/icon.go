package convert

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/exttool"
)

// iconStrategy handles ICO containers: in-process codec first, then a
// direct save through the vector-graphics engine.
type iconStrategy struct {
	std    *standardStrategy
	magick *exttool.Magick
	log    logrus.FieldLogger
}

func (s *iconStrategy) Convert(ctx context.Context, req Request) error {
	return runTechniques(ctx, s.log, req, []technique{
		{"raster codec", s.std.Convert},
		{"vector-graphics engine", s.viaEngine},
	})
}

func (s *iconStrategy) viaEngine(ctx context.Context, req Request) error {
	return engineDirectSave(ctx, s.magick, req)
}
