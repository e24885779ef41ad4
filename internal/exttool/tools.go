package exttool

import (
	"context"
	"fmt"
	"strconv"
)

// Tools bundles the single-purpose external converters. Each field is
// the binary name or path of the tool it names.
type Tools struct {
	Runner *Runner

	HeifConvert string // heif-convert: HEIF/HEIC to raster
	Ghostscript string // gs: PostScript to PDF
	PDF2SVG     string // pdf2svg: one PDF page to SVG
	DXF2SVG     string // dxf2svg: CAD drawing to SVG
}

// HeifToPNG converts a HEIF/HEIC file to PNG.
func (t *Tools) HeifToPNG(ctx context.Context, inPath, outPath string) error {
	return t.Runner.Run(ctx, t.HeifConvert, inPath, outPath)
}

// ToPDF renders a PostScript or Illustrator file to PDF with
// Ghostscript.
func (t *Tools) ToPDF(ctx context.Context, inPath, outPath string) error {
	return t.Runner.Run(ctx, t.Ghostscript,
		"-dNOPAUSE", "-dBATCH", "-sDEVICE=pdfwrite",
		fmt.Sprintf("-sOutputFile=%s", outPath), inPath)
}

// PDFToSVG extracts one page (1-based) of a PDF as SVG.
func (t *Tools) PDFToSVG(ctx context.Context, inPath, outPath string, page int) error {
	return t.Runner.Run(ctx, t.PDF2SVG, inPath, outPath, strconv.Itoa(page))
}

// DXFToSVG converts a DXF drawing to SVG.
func (t *Tools) DXFToSVG(ctx context.Context, inPath, outPath string) error {
	return t.Runner.Run(ctx, t.DXF2SVG, inPath, "-o", outPath)
}
