package convert

import (
	"context"
	"fmt"
	"os"

	"github.com/ironsheep/image-convert/internal/exttool"
)

// rawStrategy handles camera RAW inputs. The demosaic engine runs with
// camera white balance, full resolution and automatic brightening,
// producing an intermediate lossless TIFF that funnels through the
// standard re-encode. Demosaic failure is terminal; there is no
// fallback path for sensor data.
type rawStrategy struct {
	std    *standardStrategy
	engine *exttool.Raw
}

func (s *rawStrategy) Convert(ctx context.Context, req Request) error {
	tiffPath, err := s.engine.Decode(ctx, req.InputPath, exttool.DefaultRawOptions())
	if err != nil {
		return fmt.Errorf("demosaic %s: %w", req.InputPath, err)
	}
	defer os.Remove(tiffPath)

	next := req
	next.InputPath = tiffPath
	return s.std.Convert(ctx, next)
}
