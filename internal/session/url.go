package session

import (
	"fmt"
	"net/url"
	"strings"
)

var quitWords = map[string]struct{}{
	"q":    {},
	"quit": {},
	"exit": {},
}

// IsQuit reports whether the input is one of the session quit keywords.
func IsQuit(input string) bool {
	_, ok := quitWords[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// ValidateURL checks that the input looks like a fetchable http(s) URL.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty url")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("url has no host")
	}
	return nil
}
