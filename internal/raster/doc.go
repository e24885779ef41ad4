// Package raster is the in-process codec for standard raster formats.
//
// It decodes JPEG, PNG, GIF, WebP, TIFF and BMP through the registered
// image decoders and encodes every raster target the conversion matrix
// allows. ReEncode is the single terminal step the family strategies
// funnel through, so quality selection, alpha flattening and TIFF
// compression are implemented exactly once.
package raster
