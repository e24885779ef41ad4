package convert

import (
	"context"
	"fmt"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ironsheep/image-convert/internal/format"
	"github.com/ironsheep/image-convert/internal/raster"
)

// vectorStrategy handles SVG inputs. PDF and PNG targets render
// directly; every other raster target renders to an intermediate PNG
// and funnels through the standard re-encode.
type vectorStrategy struct {
	std *standardStrategy
}

func (s *vectorStrategy) Convert(ctx context.Context, req Request) error {
	switch req.Target {
	case format.PDF:
		return svgToPDF(req.InputPath, req.OutputPath)
	case format.PNG:
		return s.svgToPNG(req.InputPath, req.OutputPath, req.Quality)
	default:
		tmp, cleanup, err := tempFile("svg-*.png")
		if err != nil {
			return err
		}
		defer cleanup()

		if err := s.svgToPNG(req.InputPath, tmp, req.Quality); err != nil {
			return err
		}
		next := req
		next.InputPath = tmp
		return s.std.Convert(ctx, next)
	}
}

func parseSVG(path string) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := canvas.ParseSVG(f)
	if err != nil {
		return nil, fmt.Errorf("parse svg %s: %w", path, err)
	}
	return c, nil
}

func (s *vectorStrategy) svgToPNG(inPath, outPath string, quality int) error {
	c, err := parseSVG(inPath)
	if err != nil {
		return err
	}
	img := rasterizer.Draw(c, canvas.DPI(96), canvas.DefaultColorSpace)
	return raster.EncodeFile(img, outPath, format.PNG, s.std.opts(quality))
}

func svgToPDF(inPath, outPath string) error {
	c, err := parseSVG(inPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	// Render to PDF explicitly; the output path's extension is not
	// trusted to name the format.
	r := pdf.New(f, c.W, c.H, nil)
	c.RenderTo(r)
	if err := r.Close(); err != nil {
		f.Close()
		return fmt.Errorf("render pdf %s: %w", outPath, err)
	}
	return f.Close()
}
