// Package detect classifies the true format of an uploaded file.
//
// Detection is content-authoritative: a file carrying PNG magic bytes
// detects as PNG no matter what its extension claims. Four techniques
// run in order — MIME magic-byte sniffing, lightweight raster header
// signatures, a full decode probe, and finally the extension alias
// table — and the first hit wins. Internal errors in one technique
// never abort the chain; they simply mean that technique found
// nothing. Only when every technique fails does Detect report
// ErrUndetected.
package detect
