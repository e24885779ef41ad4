package convert

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-convert/internal/config"
	"github.com/ironsheep/image-convert/internal/detect"
	"github.com/ironsheep/image-convert/internal/exttool"
	"github.com/ironsheep/image-convert/internal/format"
	"github.com/ironsheep/image-convert/internal/raster"
)

// Converter is the single entry point tying detection, normalization,
// validation and strategy dispatch together. It is stateless per call
// and safe for concurrent use; the registry and strategy table are
// read-only after New.
type Converter struct {
	reg        *format.Registry
	det        *detect.Detector
	log        logrus.FieldLogger
	strategies map[format.Family]Strategy
}

// New wires a Converter from configuration: the registry, the
// detector, the external tool engines and one strategy per format
// family.
func New(cfg *config.Config, log logrus.FieldLogger) (*Converter, error) {
	background, err := raster.ParseBackground(cfg.JPEGBackground)
	if err != nil {
		return nil, err
	}

	reg := format.New()
	runner := &exttool.Runner{Timeout: cfg.ExternalTimeout, Log: log}
	magick := &exttool.Magick{Binary: cfg.Tools.Magick, Runner: runner}
	rawEngine := &exttool.Raw{Binary: cfg.Tools.Dcraw, Runner: runner}
	tools := &exttool.Tools{
		Runner:      runner,
		HeifConvert: cfg.Tools.HeifConvert,
		Ghostscript: cfg.Tools.Ghostscript,
		PDF2SVG:     cfg.Tools.PDF2SVG,
		DXF2SVG:     cfg.Tools.DXF2SVG,
	}

	opts := func(quality int) raster.Options {
		return raster.Options{Quality: quality, Background: background}
	}

	std := &standardStrategy{opts: opts}
	vector := &vectorStrategy{std: std}
	paged := &pagedStrategy{std: std, tools: tools, log: log}

	c := &Converter{
		reg: reg,
		det: detect.New(reg),
		log: log,
		strategies: map[format.Family]Strategy{
			format.FamilyStandard:       std,
			format.FamilyVector:         vector,
			format.FamilyHighEfficiency: &heifStrategy{std: std, tools: tools, log: log},
			format.FamilyRaw:            &rawStrategy{std: std, engine: rawEngine},
			format.FamilyPostScript:     &postscriptStrategy{std: std, magick: magick, tools: tools, paged: paged, log: log},
			format.FamilyLayered:        &layeredStrategy{std: std, magick: magick, log: log},
			format.FamilyPaged:          paged,
			format.FamilyIcon:           &iconStrategy{std: std, magick: magick, log: log},
			format.FamilyLegacy:         &legacyStrategy{std: std, magick: magick, tools: tools, vector: vector, log: log},
		},
	}
	return c, nil
}

// Registry exposes the read-only format registry, for callers that
// enumerate supported conversions.
func (c *Converter) Registry() *format.Registry {
	return c.reg
}

// Convert converts the file at inputPath to targetFormat at the given
// quality, writing the result to outputPath. Quality must be in
// [1,100]; it is only consulted for lossy raster targets. Failures are
// always a typed *Error — see KindOf.
//
// The caller owns cleanup of both input and output files; Convert only
// removes the intermediates it creates itself.
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath, targetFormat string, quality int) error {
	if quality < 1 || quality > 100 {
		return failf(KindInvalidQuality, "quality %d outside [1,100]", quality)
	}

	if _, err := os.Stat(inputPath); err != nil {
		return wrapf(KindInputNotFound, err, "input file %s", inputPath)
	}

	input, err := c.det.Detect(inputPath)
	if err != nil {
		return wrapf(KindFormatUndetected, err, "could not detect format of %s", inputPath)
	}

	target, ok := c.reg.Normalize(targetFormat)
	if !ok {
		return failf(KindUnsupportedTarget, "unknown target format %q", targetFormat)
	}

	if !c.reg.CanConvert(string(input), string(target)) {
		return failf(KindUnsupportedConversion, "conversion from %s to %s is not supported", input, target)
	}

	family, ok := format.FamilyOf(input)
	if !ok {
		return failf(KindUnsupportedInput, "no strategy for input format %s", input)
	}
	strategy := c.strategies[family]

	c.log.WithFields(logrus.Fields{
		"input":   inputPath,
		"from":    input,
		"to":      target,
		"family":  family,
		"quality": quality,
	}).Info("converting")

	req := Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Input:      input,
		Target:     target,
		Quality:    quality,
	}
	if err := strategy.Convert(ctx, req); err != nil {
		if KindOf(err) == KindStrategyFailure {
			return err
		}
		return wrapf(KindStrategyFailure, err, "conversion from %s to %s failed", input, target)
	}
	return nil
}
