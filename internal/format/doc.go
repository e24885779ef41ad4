// Package format defines the canonical format identifiers, the
// extension alias tables, and the conversion matrix for the image
// conversion service.
//
// # Normalization
//
// User-supplied tokens ("JPEG", "tif", "cr2") are mapped to canonical
// IDs through Registry.Normalize. Alias membership is many-to-one: each
// extension spelling belongs to exactly one canonical format, and a
// canonical ID always normalizes to itself.
//
// # Conversion matrix
//
// The matrix maps each canonical input format to its valid targets. It
// is constructed once at process start and never mutated, so a shared
// Registry requires no locking. Unknown tokens never raise; lookups on
// them return false or an empty set, leaving error signaling to the
// caller.
//
// # Families
//
// Each input format belongs to exactly one strategy Family, which
// selects the conversion strategy used for it. Adding a format means
// adding a matrix row, optional aliases, and a family assignment here;
// no dispatch code changes.
package format
