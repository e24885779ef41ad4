package convert

import (
	"context"

	"github.com/ironsheep/image-convert/internal/raster"
)

// standardStrategy handles the common raster containers (jpg, png,
// gif, webp, tiff, bmp) with a direct in-process re-encode. It is also
// the terminal step every other family funnels its raster
// intermediates through.
type standardStrategy struct {
	opts func(quality int) raster.Options
}

func (s *standardStrategy) Convert(_ context.Context, req Request) error {
	return raster.ReEncode(req.InputPath, req.OutputPath, req.Target, s.opts(req.Quality))
}
