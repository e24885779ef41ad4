package format

import (
	"sort"
	"strings"
)

// conversionMatrix maps each canonical input format to the set of
// formats it may be converted to. This is the single source of truth
// for conversion validity; it is built once at startup and never
// mutated, so a Registry is safe for unsynchronized concurrent reads.
var conversionMatrix = map[ID][]ID{
	// Standard web formats
	JPG:  {PNG, GIF, WEBP, TIFF, BMP},
	PNG:  {JPG, GIF, WEBP, TIFF, BMP},
	GIF:  {PNG, JPG, WEBP, TIFF},
	WEBP: {PNG, JPG, GIF, TIFF},
	TIFF: {PNG, JPG, GIF, WEBP, BMP},
	BMP:  {JPG, PNG, GIF, TIFF, WEBP},

	// Vector formats
	SVG: {PNG, JPG, GIF, WEBP, PDF},

	// High-efficiency formats
	HEIF: {JPG, PNG, WEBP, TIFF, GIF},

	// Camera RAW formats (all vendor variants normalize to "raw")
	RAW: {JPG, PNG, TIFF, BMP},

	// Adobe formats
	EPS: {JPG, PNG, SVG, PDF, TIFF},
	PSD: {JPG, PNG, TIFF, GIF, WEBP},
	AI:  {JPG, PNG, SVG, EPS, PDF},

	// Document format
	PDF: {JPG, PNG, TIFF, GIF, SVG},

	// Other formats
	ICO: {PNG, JPG, GIF, BMP, TIFF},
	PCX: {JPG, PNG, TIFF, BMP, GIF},
	JXR: {JPG, PNG, WEBP, TIFF},
	TGA: {JPG, PNG, TIFF, GIF},
	PPM: {PNG, JPG, TIFF, BMP},
	XCF: {JPG, PNG, TIFF, GIF, WEBP},
	DXF: {PNG, JPG, SVG, PDF, TIFF},
}

// aliasSets lists the file-extension spellings that normalize to each
// canonical format. Membership is many-to-one: an extension belongs to
// exactly one canonical format. Formats absent here have only their
// identity spelling.
var aliasSets = map[ID][]string{
	JPG:  {"jpg", "jpeg"},
	TIFF: {"tiff", "tif"},
	HEIF: {"heif", "heic"},
	RAW:  {"raw", "arw", "cr2", "nef", "orf", "rw2", "dng"},
}

// Registry answers format normalization and conversion-validity
// questions against the static matrix and alias tables.
//
// Construct one with New at process start and share it; all methods are
// read-only.
type Registry struct {
	outputs map[ID][]ID
	aliases map[string]ID
}

// New builds a Registry from the static conversion matrix and alias
// tables.
func New() *Registry {
	aliases := make(map[string]ID)
	for id, exts := range aliasSets {
		for _, ext := range exts {
			aliases[ext] = id
		}
	}
	return &Registry{
		outputs: conversionMatrix,
		aliases: aliases,
	}
}

// Normalize maps an arbitrary format token or file extension to its
// canonical ID. Lookup is case-insensitive. The second return value is
// false when the token is not recognized; unknown tokens never error.
func (r *Registry) Normalize(token string) (ID, bool) {
	t := strings.ToLower(token)
	if _, ok := r.outputs[ID(t)]; ok {
		return ID(t), true
	}
	if id, ok := r.aliases[t]; ok {
		return id, true
	}
	return "", false
}

// IsValidTarget reports whether token normalizes to a format that
// appears as a key in the conversion matrix. Every declared format is a
// potential target because the matrix keys are symmetric.
func (r *Registry) IsValidTarget(token string) bool {
	id, ok := r.Normalize(token)
	if !ok {
		return false
	}
	_, ok = r.outputs[id]
	return ok
}

// OutputsFor returns the valid conversion targets for a canonical
// format. The result is a copy; it is empty for unknown formats.
func (r *Registry) OutputsFor(id ID) []ID {
	out := r.outputs[id]
	cp := make([]ID, len(out))
	copy(cp, out)
	return cp
}

// CanConvert reports whether a conversion from one token to another is
// supported. Both tokens are normalized first; any unrecognized token
// makes the answer false.
func (r *Registry) CanConvert(fromToken, toToken string) bool {
	from, ok := r.Normalize(fromToken)
	if !ok {
		return false
	}
	to, ok := r.Normalize(toToken)
	if !ok {
		return false
	}
	for _, id := range r.outputs[from] {
		if id == to {
			return true
		}
	}
	return false
}

// Canonical returns every canonical format in sorted order.
func (r *Registry) Canonical() []ID {
	ids := make([]ID, 0, len(r.outputs))
	for id := range r.outputs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
