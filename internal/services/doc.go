// Package services holds shared plumbing for the external tool clients:
// error classification markers and context annotations used for log
// correlation.
package services
