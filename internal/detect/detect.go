package detect

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"  // register GIF decoder for the decode probe
	_ "image/jpeg" // register JPEG decoder for the decode probe
	_ "image/png"  // register PNG decoder for the decode probe

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder for the decode probe
	_ "golang.org/x/image/tiff" // register TIFF decoder for the decode probe
	_ "golang.org/x/image/webp" // register WebP decoder for the decode probe

	"github.com/ironsheep/image-convert/internal/format"
)

// ErrUndetected is returned when no detection technique, content-based
// or extension-based, could classify the input file.
var ErrUndetected = errors.New("format not detected")

// svgProbeSize bounds the text read used to confirm an XML-ish file is
// actually SVG.
const svgProbeSize = 1024

// mimeFormats maps sniffed MIME types to canonical formats. SVG and
// generic XML are handled separately because they need a content probe.
var mimeFormats = map[string]format.ID{
	"image/jpeg":                format.JPG,
	"image/png":                 format.PNG,
	"image/gif":                 format.GIF,
	"image/webp":                format.WEBP,
	"image/tiff":                format.TIFF,
	"image/bmp":                 format.BMP,
	"application/pdf":           format.PDF,
	"application/postscript":    format.EPS,
	"image/vnd.adobe.photoshop": format.PSD,
	"application/illustrator":   format.AI,
	"image/heif":                format.HEIF,
	"image/heic":                format.HEIF,
	"image/x-icon":              format.ICO,
}

// Detector determines the true format of a file on disk. Content
// inspection runs first; the filename extension is only a fallback,
// because uploaded names are untrusted metadata.
type Detector struct {
	reg *format.Registry
}

// New returns a Detector backed by the given registry.
func New(reg *format.Registry) *Detector {
	return &Detector{reg: reg}
}

// Detect classifies the file at path, trying each technique in order:
//
//  1. MIME magic-byte sniffing (with a text probe for SVG)
//  2. lightweight raster header signatures
//  3. a full decode probe through the registered image decoders
//  4. the extension alias table
//
// A technique that errors internally counts as "found nothing" and the
// chain falls through to the next one. When every technique comes up
// empty, Detect returns ErrUndetected; it never defaults to a format.
func (d *Detector) Detect(path string) (format.ID, error) {
	probes := []func(string) (format.ID, bool){
		d.sniffMIME,
		sniffHeader,
		probeDecode,
		d.fromExtension,
	}
	for _, probe := range probes {
		if id, ok := probe(path); ok {
			return id, nil
		}
	}
	return "", ErrUndetected
}

// sniffMIME classifies by magic-byte MIME detection. A generic XML or
// SVG-adjacent result is only confirmed as SVG when the file content
// carries an <svg marker; plain XML is not SVG.
func (d *Detector) sniffMIME(path string) (format.ID, bool) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false
	}
	if mt.Is("image/svg+xml") || mt.Is("text/xml") || mt.Is("application/xml") {
		if hasSVGMarker(path) {
			return format.SVG, true
		}
		return "", false
	}
	for mime, id := range mimeFormats {
		if mt.Is(mime) {
			return id, true
		}
	}
	return "", false
}

// hasSVGMarker reports whether the first kilobyte of the file contains
// an opening <svg tag.
func hasSVGMarker(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, svgProbeSize)
	n, _ := f.Read(buf)
	return bytes.Contains(buf[:n], []byte("<svg"))
}

// headerSignature pairs a leading byte signature with the format it
// identifies. WebP needs an extra check past the RIFF header.
type headerSignature struct {
	prefix []byte
	id     format.ID
}

var headerSignatures = []headerSignature{
	{[]byte("\x89PNG\r\n\x1a\n"), format.PNG},
	{[]byte("\xff\xd8\xff"), format.JPG},
	{[]byte("GIF87a"), format.GIF},
	{[]byte("GIF89a"), format.GIF},
	{[]byte("BM"), format.BMP},
	{[]byte("II*\x00"), format.TIFF},
	{[]byte("MM\x00*"), format.TIFF},
}

// sniffHeader is a simpler signature check over common raster
// containers, used when MIME sniffing yields nothing.
func sniffHeader(path string) (format.ID, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	head := make([]byte, 16)
	n, _ := f.Read(head)
	head = head[:n]

	for _, sig := range headerSignatures {
		if bytes.HasPrefix(head, sig.prefix) {
			return sig.id, true
		}
	}
	if len(head) >= 16 && bytes.HasPrefix(head, []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WEBP")) {
		return format.WEBP, true
	}
	return "", false
}

// probeDecode asks the registered image decoders to identify the file
// and normalizes their self-reported name ("jpeg" becomes "jpg").
func probeDecode(path string) (format.ID, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	_, name, err := image.DecodeConfig(f)
	if err != nil || name == "" {
		return "", false
	}
	if name == "jpeg" {
		return format.JPG, true
	}
	return format.ID(name), true
}

// fromExtension derives the format purely from the filename extension
// through the registry alias table. This covers formats with no
// reliable magic signature in this pipeline (RAW variants, CAD and
// legacy formats) and corrupt files the content probes rejected.
func (d *Detector) fromExtension(path string) (format.ID, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", false
	}
	return d.reg.Normalize(ext)
}
