// Package deps checks the availability of the external binaries Pandora
// shells out to.
package deps
