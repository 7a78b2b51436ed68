// Package history persists the download history in SQLite so past
// sessions can be listed and retried.
package history
