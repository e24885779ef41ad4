package convert

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/exttool"
	"github.com/ironsheep/image-convert/internal/format"
)

// legacyStrategy handles the specialized and legacy formats (pcx, jxr,
// tga, ppm, xcf, dxf): in-process codec first, then the
// vector-graphics engine. DXF gets one more fallback: the external
// dxf2svg tool produces an intermediate SVG the vector strategy
// finishes.
type legacyStrategy struct {
	std    *standardStrategy
	magick *exttool.Magick
	tools  *exttool.Tools
	vector *vectorStrategy
	log    logrus.FieldLogger
}

func (s *legacyStrategy) Convert(ctx context.Context, req Request) error {
	techs := []technique{
		{"raster codec", s.std.Convert},
		{"vector-graphics engine", s.viaEngine},
	}
	if req.Input == format.DXF {
		techs = append(techs, technique{"dxf2svg", s.viaDXF2SVG})
	}
	return runTechniques(ctx, s.log, req, techs)
}

func (s *legacyStrategy) viaEngine(ctx context.Context, req Request) error {
	return engineDirectSave(ctx, s.magick, req)
}

func (s *legacyStrategy) viaDXF2SVG(ctx context.Context, req Request) error {
	// An SVG target needs no second hop.
	if req.Target == format.SVG {
		return s.tools.DXFToSVG(ctx, req.InputPath, req.OutputPath)
	}

	tmp, cleanup, err := tempFile("dxf-*.svg")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := s.tools.DXFToSVG(ctx, req.InputPath, tmp); err != nil {
		return err
	}
	next := req
	next.InputPath = tmp
	next.Input = format.SVG
	return s.vector.Convert(ctx, next)
}
