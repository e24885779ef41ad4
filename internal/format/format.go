package format

// ID is a canonical lowercase format token such as "png", "jpg" or "raw".
//
// An ID is always one of the constants below; arbitrary user-supplied
// tokens (extensions, aliases, mixed case) must go through
// Registry.Normalize before being used as an ID.
type ID string

// Canonical format identifiers. Every key of the conversion matrix is
// one of these.
const (
	JPG  ID = "jpg"
	PNG  ID = "png"
	GIF  ID = "gif"
	WEBP ID = "webp"
	TIFF ID = "tiff"
	BMP  ID = "bmp"
	SVG  ID = "svg"
	HEIF ID = "heif"
	RAW  ID = "raw"
	EPS  ID = "eps"
	PSD  ID = "psd"
	AI   ID = "ai"
	PDF  ID = "pdf"
	ICO  ID = "ico"
	PCX  ID = "pcx"
	JXR  ID = "jxr"
	TGA  ID = "tga"
	PPM  ID = "ppm"
	XCF  ID = "xcf"
	DXF  ID = "dxf"
)

// Family groups input formats that share a conversion strategy.
type Family string

const (
	// FamilyStandard covers common raster containers handled directly
	// by the in-process codec.
	FamilyStandard Family = "standard"

	// FamilyVector covers SVG inputs.
	FamilyVector Family = "vector"

	// FamilyHighEfficiency covers HEIF/HEIC inputs.
	FamilyHighEfficiency Family = "high-efficiency"

	// FamilyRaw covers camera RAW inputs (ARW, CR2, NEF, ORF, RW2, DNG).
	FamilyRaw Family = "raw"

	// FamilyPostScript covers EPS and Illustrator inputs.
	FamilyPostScript Family = "postscript"

	// FamilyLayered covers Photoshop documents.
	FamilyLayered Family = "layered"

	// FamilyPaged covers PDF documents; only the first page is converted.
	FamilyPaged Family = "paged"

	// FamilyIcon covers ICO containers.
	FamilyIcon Family = "icon"

	// FamilyLegacy covers specialized and legacy formats
	// (PCX, JXR, TGA, PPM, XCF, DXF).
	FamilyLegacy Family = "legacy"
)

var families = map[ID]Family{
	JPG:  FamilyStandard,
	PNG:  FamilyStandard,
	GIF:  FamilyStandard,
	WEBP: FamilyStandard,
	TIFF: FamilyStandard,
	BMP:  FamilyStandard,
	SVG:  FamilyVector,
	HEIF: FamilyHighEfficiency,
	RAW:  FamilyRaw,
	EPS:  FamilyPostScript,
	AI:   FamilyPostScript,
	PSD:  FamilyLayered,
	PDF:  FamilyPaged,
	ICO:  FamilyIcon,
	PCX:  FamilyLegacy,
	JXR:  FamilyLegacy,
	TGA:  FamilyLegacy,
	PPM:  FamilyLegacy,
	XCF:  FamilyLegacy,
	DXF:  FamilyLegacy,
}

// FamilyOf returns the strategy family that owns the given input format.
// The second return value is false for formats no family claims.
func FamilyOf(id ID) (Family, bool) {
	f, ok := families[id]
	return f, ok
}
