// Package selector builds and validates format-selector expressions, the
// small grammar the download backend interprets:
//
//	A+B           combine streams A and B into one output
//	A/B           use A when available, otherwise B
//	A[attr=value] restrict A to streams whose attribute matches
//
// The classification pipeline only constructs expressions; interpretation
// belongs to the download backend. Parse exists so expressions supplied on
// the command line can be rejected before a download is attempted.
package selector
