// Package notifications delivers push notifications about download
// lifecycle events through ntfy. When no topic is configured the service
// degrades to a noop.
package notifications
