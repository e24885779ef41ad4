package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	"github.com/anthonynsimon/bild/blend"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp" // register decoder
	xtiff "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/ironsheep/image-convert/internal/format"
)

// DefaultQuality is used when Options.Quality is unset.
const DefaultQuality = 90

// Options control the terminal encode step.
type Options struct {
	// Quality in [1,100]; consulted only for lossy targets (jpg, webp).
	Quality int

	// Background is composited under the image when the target format
	// has no alpha channel. Nil means opaque white.
	Background color.Color
}

func (o Options) quality() int {
	if o.Quality < 1 || o.Quality > 100 {
		return DefaultQuality
	}
	return o.Quality
}

// ParseBackground parses a "#rrggbb" hex string into a color.
func ParseBackground(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse background %q: %w", hex, err)
	}
	return c, nil
}

// Open decodes the image at path and reports the detected format,
// normalized ("jpeg" becomes "jpg"). Decoding goes through the
// registered codecs, so the detected format reflects content, not the
// filename.
func Open(path string) (image.Image, format.ID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, name, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	if name == "jpeg" {
		name = "jpg"
	}
	return img, format.ID(name), nil
}

// EncodeFile writes img to path in the target format. Targets without
// alpha support get the image flattened onto Options.Background first;
// lossy targets honor Options.Quality; TIFF output uses LZW.
func EncodeFile(img image.Image, path string, target format.ID, opts Options) error {
	out := img
	if !supportsAlpha(target) && hasAlpha(img) {
		out = Flatten(img, opts.Background)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch target {
	case format.JPG:
		err = imaging.Encode(f, out, imaging.JPEG, imaging.JPEGQuality(opts.quality()))
	case format.PNG:
		err = imaging.Encode(f, out, imaging.PNG)
	case format.GIF:
		err = imaging.Encode(f, out, imaging.GIF)
	case format.BMP:
		err = imaging.Encode(f, out, imaging.BMP)
	case format.TIFF:
		err = xtiff.Encode(f, out, &xtiff.Options{Compression: xtiff.LZW})
	case format.WEBP:
		err = webp.Encode(f, out, &webp.Options{Quality: float32(opts.quality())})
	default:
		err = fmt.Errorf("no raster encoder for %s", target)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return f.Close()
}

// ReEncode is the terminal standard-raster step: decode the input and
// re-encode it in the target format. Every strategy that produces a
// raster intermediate funnels through here, so quality and alpha
// handling live in exactly one place.
func ReEncode(inputPath, outputPath string, target format.ID, opts Options) error {
	img, _, err := Open(inputPath)
	if err != nil {
		return err
	}
	return EncodeFile(img, outputPath, target, opts)
}

// Flatten composites img over a uniform background, discarding alpha.
func Flatten(img image.Image, bg color.Color) image.Image {
	if bg == nil {
		bg = color.White
	}
	b := img.Bounds()
	base := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	// Clone zero-bases the foreground so both layers align at the origin.
	return blend.Normal(base, imaging.Clone(img))
}

// supportsAlpha reports whether the target container can carry an
// alpha channel.
func supportsAlpha(target format.ID) bool {
	switch target {
	case format.PNG, format.WEBP, format.GIF, format.TIFF:
		return true
	}
	return false
}

// hasAlpha reports whether img carries any translucent pixel. All
// stdlib image types implement Opaque; anything else is assumed opaque.
func hasAlpha(img image.Image) bool {
	if op, ok := img.(interface{ Opaque() bool }); ok {
		return !op.Opaque()
	}
	return false
}
