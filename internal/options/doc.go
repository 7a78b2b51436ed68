// Package options turns a raw descriptor list into the final numbered menu
// of download options: bucketing into audio and video classes, deduplicated
// priority ordering, and assembly of the fixed quick/VR-special entries in
// front of the ranked per-descriptor entries.
//
// The pipeline is synchronous and allocation-only; every invocation works on
// fresh inputs and produces a fresh list. Nothing here performs I/O.
package options
