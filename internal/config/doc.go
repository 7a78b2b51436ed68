// Package config loads, normalizes, and validates the TOML configuration
// file. Loading never requires the file to exist; defaults cover every
// field so the tool runs out of the box.
package config
