package selector_test

import (
	"testing"

	"github.com/ababiyaworku/Pandora-Box/internal/selector"
)

func TestBuilders(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"best mux", selector.BestMux(), "bestvideo+bestaudio/best"},
		{"best compatible", selector.BestCompatible(), "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"},
		{"best audio", selector.BestAudioOnly(), "bestaudio/best"},
		{"with best audio", selector.WithBestAudio("137"), "137+bestaudio/best"},
		{"filter", selector.Filter(selector.Best, "height", "1080"), "best[height=1080]"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestParseRoundTripShapes(t *testing.T) {
	expr, err := selector.Parse("bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(expr.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(expr.Alternatives))
	}
	first := expr.Alternatives[0]
	if len(first) != 2 {
		t.Fatalf("expected merge group of 2, got %d", len(first))
	}
	if first[0].Base != "bestvideo" || len(first[0].Filters) != 1 || first[0].Filters[0].Attr != "ext" || first[0].Filters[0].Value != "mp4" {
		t.Fatalf("unexpected first spec: %+v", first[0])
	}
	last := expr.Alternatives[2]
	if len(last) != 1 || last[0].Base != "best" || len(last[0].Filters) != 0 {
		t.Fatalf("unexpected last spec: %+v", last[0])
	}
}

func TestParseOpaqueFormatIDs(t *testing.T) {
	expr, err := selector.Parse("616+bestaudio/best")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if expr.Alternatives[0][0].Base != "616" {
		t.Fatalf("format id base lost: %+v", expr.Alternatives[0][0])
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, expr := range []string{
		"",
		"best//best",
		"best+",
		"+bestaudio",
		"[ext=mp4]",
		"best[ext]",
		"best[ext=mp4",
	} {
		if err := selector.Validate(expr); err == nil {
			t.Errorf("expected error for %q", expr)
		}
	}
}
