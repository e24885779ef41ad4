package convert

import (
	"context"
	"fmt"
	"os"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/exttool"
	"github.com/ironsheep/image-convert/internal/format"
	"github.com/ironsheep/image-convert/internal/raster"
)

// pagedStrategy handles PDF documents. Only the first page is
// converted. SVG targets go through the document renderer's native SVG
// extraction, with the external pdf2svg tool as fallback; raster
// targets render the first page to an image and funnel through the
// standard encode, flattening for JPEG.
type pagedStrategy struct {
	std   *standardStrategy
	tools *exttool.Tools
	log   logrus.FieldLogger
}

func (s *pagedStrategy) Convert(ctx context.Context, req Request) error {
	if req.Target == format.SVG {
		return runTechniques(ctx, s.log, req, []technique{
			{"document renderer", s.svgViaRenderer},
			{"pdf2svg", s.svgViaTool},
		})
	}
	return runTechniques(ctx, s.log, req, []technique{
		{"document renderer", s.renderFirstPage},
	})
}

func (s *pagedStrategy) svgViaRenderer(_ context.Context, req Request) error {
	doc, err := fitz.New(req.InputPath)
	if err != nil {
		return fmt.Errorf("open document %s: %w", req.InputPath, err)
	}
	defer doc.Close()

	svg, err := doc.SVG(0)
	if err != nil {
		return fmt.Errorf("render page 1 as svg: %w", err)
	}
	return os.WriteFile(req.OutputPath, []byte(svg), 0o644)
}

func (s *pagedStrategy) svgViaTool(ctx context.Context, req Request) error {
	return s.tools.PDFToSVG(ctx, req.InputPath, req.OutputPath, 1)
}

func (s *pagedStrategy) renderFirstPage(_ context.Context, req Request) error {
	doc, err := fitz.New(req.InputPath)
	if err != nil {
		return fmt.Errorf("open document %s: %w", req.InputPath, err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return fmt.Errorf("document %s has no pages", req.InputPath)
	}

	img, err := doc.Image(0)
	if err != nil {
		return fmt.Errorf("render page 1: %w", err)
	}
	return raster.EncodeFile(img, req.OutputPath, req.Target, s.std.opts(req.Quality))
}
