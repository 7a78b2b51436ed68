// Package media defines the normalized descriptor model shared by the
// classification pipeline: raw format descriptors as reported by the
// extraction backend, video-level metadata, and display helpers for
// resolution tiers, sizes, and durations.
//
// Every field tolerates absence. Missing numeric fields are zero, missing
// text fields are empty strings, and a missing codec is represented by the
// backend's "none" sentinel.
package media
