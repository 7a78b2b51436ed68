package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ababiyaworku/Pandora-Box/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.DownloadDir != filepath.Join(tempHome, "Downloads", "pandora") {
		t.Fatalf("unexpected download dir: %q", cfg.Paths.DownloadDir)
	}
	if cfg.Paths.HistoryDB != filepath.Join(tempHome, ".local", "share", "pandora", "history.db") {
		t.Fatalf("unexpected history db: %q", cfg.Paths.HistoryDB)
	}
	if cfg.Tools.YtDlpBinary != "yt-dlp" || cfg.Tools.FFmpegBinary != "ffmpeg" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if cfg.Ranking.MaxVideoOptions != 20 {
		t.Fatalf("unexpected video cap: %d", cfg.Ranking.MaxVideoOptions)
	}
	if cfg.Output.AudioBitrate != 320 {
		t.Fatalf("unexpected audio bitrate: %d", cfg.Output.AudioBitrate)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DownloadDir, cfg.Paths.LogDir, filepath.Dir(cfg.Paths.HistoryDB)} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "pandora.toml")

	contents := strings.Join([]string{
		"[paths]",
		`download_dir = "` + filepath.ToSlash(filepath.Join(tempDir, "media")) + `"`,
		"[tools]",
		`ytdlp_binary = "yt-dlp-nightly"`,
		"fetch_timeout = 15",
		"[ranking]",
		"max_video_options = 5",
	}, "\n")
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.DownloadDir != filepath.Join(tempDir, "media") {
		t.Fatalf("unexpected download dir: %q", cfg.Paths.DownloadDir)
	}
	if cfg.Tools.YtDlpBinary != "yt-dlp-nightly" {
		t.Fatalf("unexpected binary: %q", cfg.Tools.YtDlpBinary)
	}
	if cfg.Tools.FetchTimeout != 15 {
		t.Fatalf("unexpected fetch timeout: %d", cfg.Tools.FetchTimeout)
	}
	if cfg.Ranking.MaxVideoOptions != 5 {
		t.Fatalf("unexpected video cap: %d", cfg.Ranking.MaxVideoOptions)
	}
	// Unset sections keep defaults.
	if cfg.Output.Template != "%(title)s.%(ext)s" {
		t.Fatalf("unexpected template: %q", cfg.Output.Template)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tempDir := t.TempDir()

	cases := []struct {
		name     string
		contents string
	}{
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
		{"bitrate too high", "[output]\naudio_bitrate = 512\n"},
		{"template without fields", "[output]\ntemplate = \"video.mp4\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(tempDir, strings.ReplaceAll(tc.name, " ", "-")+".toml")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "download_dir") {
		t.Fatal("sample missing expected keys")
	}

	// The sample must itself load cleanly.
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
