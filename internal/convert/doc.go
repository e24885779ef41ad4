// Package convert implements the conversion core: the orchestrator
// that validates and routes a request, and one strategy per format
// family.
//
// # Control flow
//
// Converter.Convert runs detection on the input file, normalizes the
// detected and requested formats through the registry, checks the pair
// against the conversion matrix, and dispatches to the strategy owning
// the input's family. Each failure mode surfaces as a typed *Error;
// see Kind for the taxonomy.
//
// # Strategies and fallbacks
//
// A strategy orders a primary technique and zero or more fallbacks.
// Technique failures are values, not control flow: each technique
// reports success or an error, and the chain moves to the next
// fallback on failure. Only when every technique has failed does a
// StrategyFailure surface, carrying every underlying cause. Nothing is
// retried automatically.
//
// Most families normalize down to the standard-raster re-encode at
// some stage, so quality, alpha flattening and compression handling
// live in one well-tested terminal step (package raster).
//
// # Resources
//
// Strategies create intermediate temporary files with unique names and
// remove them on every exit path. External tool invocations run under
// a configurable deadline. No state is shared between calls beyond the
// read-only registry and strategy table, so a Converter is safe for
// concurrent use.
package convert
