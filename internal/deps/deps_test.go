package deps

import (
	"testing"

	"github.com/ababiyaworku/Pandora-Box/internal/config"
)

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "present", Command: "sh", Description: "shell"},
		{Name: "absent", Command: "definitely-not-a-real-binary-xyz", Description: "nothing"},
		{Name: "blank", Command: "   ", Description: "unset"},
	})
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("expected sh to be available: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Fatalf("expected absent binary with detail: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("expected blank command detail: %+v", statuses[2])
	}
}

func TestRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.YtDlpBinary = "yt-dlp-nightly"

	reqs := Requirements(&cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "yt-dlp-nightly" || reqs[0].Optional {
		t.Fatalf("unexpected yt-dlp requirement: %+v", reqs[0])
	}
	if reqs[1].Name != "ffmpeg" || !reqs[1].Optional {
		t.Fatalf("expected optional ffmpeg requirement: %+v", reqs[1])
	}
}

func TestMissingRequired(t *testing.T) {
	statuses := []Status{
		{Name: "a", Available: true},
		{Name: "b", Available: false, Optional: true},
		{Name: "c", Available: false},
	}
	missing := MissingRequired(statuses)
	if len(missing) != 1 || missing[0].Name != "c" {
		t.Fatalf("unexpected missing set: %+v", missing)
	}
}
