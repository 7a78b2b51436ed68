// Package preflight runs startup checks: directory access and external
// binary availability. The doctor command and the interactive session
// both report through it.
package preflight
