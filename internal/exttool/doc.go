// Package exttool wraps the external converter processes the
// conversion strategies fall back to: ImageMagick, dcraw, heif-convert,
// Ghostscript, pdf2svg and dxf2svg.
//
// Every invocation goes through Runner, which enforces a per-call
// deadline and returns a *ToolError carrying the exit failure and a
// tail of the process stderr. Strategies treat a ToolError like any
// other technique failure and move on to their next fallback.
package exttool
