package ytdlp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ababiyaworku/Pandora-Box/internal/options"
	"github.com/ababiyaworku/Pandora-Box/internal/services"
)

type fakeExecutor struct {
	lines  []string
	err    error
	binary string
	args   []string
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string, onStdout func(string)) error {
	f.binary = binary
	f.args = args
	for _, line := range f.lines {
		if onStdout != nil {
			onStdout(line)
		}
	}
	return f.err
}

const infoDump = `{
  "id": "dQw4w9WgXcQ",
  "title": "Epic 3D 180 VR Tour",
  "description": "A side by side stereoscopic tour.",
  "uploader": "Example Channel",
  "duration": 215.0,
  "view_count": 123456,
  "upload_date": "20240115",
  "webpage_url": "https://example.com/watch?v=dQw4w9WgXcQ",
  "formats": [
    {"format_id": "616", "ext": "webm", "height": 2160, "width": 3840, "fps": 60, "vbr": 24000, "vcodec": "vp9", "acodec": "none", "filesize": 1073741824, "format_note": "2160p60 HDR"},
    {"format_id": "251", "ext": "webm", "abr": 160, "vcodec": "none", "acodec": "opus", "filesize_approx": 3400000}
  ]
}`

func TestFetchInfoParsesDump(t *testing.T) {
	exec := &fakeExecutor{lines: strings.Split(infoDump, "\n")}
	client, err := New("yt-dlp", 60, 0, WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	info, formats, err := client.FetchInfo(context.Background(), "https://example.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("FetchInfo returned error: %v", err)
	}

	if exec.binary != "yt-dlp" {
		t.Fatalf("unexpected binary: %q", exec.binary)
	}
	if want := []string{"-J", "--no-warnings", "https://example.com/watch?v=dQw4w9WgXcQ"}; strings.Join(exec.args, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected args: %v", exec.args)
	}

	if info.Title != "Epic 3D 180 VR Tour" || info.Duration != 215 || info.ViewCount != 123456 {
		t.Fatalf("unexpected info: %+v", info)
	}
	if len(formats) != 2 {
		t.Fatalf("expected 2 formats, got %d", len(formats))
	}
	video := formats[0]
	if video.ID != "616" || video.Height != 2160 || video.VideoCodec != "vp9" || video.Filesize != 1073741824 {
		t.Fatalf("unexpected video format: %+v", video)
	}
	audio := formats[1]
	if audio.AudioBitrate != 160 || audio.Filesize != 3400000 {
		t.Fatalf("expected approx filesize fallback: %+v", audio)
	}
}

func TestFetchInfoRejectsEmptyFormats(t *testing.T) {
	exec := &fakeExecutor{lines: []string{`{"id":"x","title":"t","formats":[]}`}}
	client, _ := New("yt-dlp", 60, 0, WithExecutor(exec))

	_, _, err := client.FetchInfo(context.Background(), "https://example.com/v")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found marker, got %v", err)
	}
}

func TestFetchInfoWrapsToolFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	client, _ := New("yt-dlp", 60, 0, WithExecutor(exec))

	_, _, err := client.FetchInfo(context.Background(), "https://example.com/v")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
}

func TestDownloadBuildsMergeArgs(t *testing.T) {
	exec := &fakeExecutor{}
	client, _ := New("yt-dlp", 60, 0, WithExecutor(exec))

	req := DownloadRequest{
		URL: "https://example.com/v",
		Option: options.Option{
			Selector:  "313+bestaudio/best",
			Container: "mkv",
			Source:    options.SourceVideo,
		},
		DestDir:        t.TempDir(),
		OutputTemplate: "%(title)s.%(ext)s",
	}
	if err := client.Download(context.Background(), req, nil); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	joined := strings.Join(exec.args, " ")
	if !strings.Contains(joined, "-f 313+bestaudio/best") {
		t.Fatalf("missing selector: %v", exec.args)
	}
	if !strings.Contains(joined, "--merge-output-format mkv") {
		t.Fatalf("missing merge container: %v", exec.args)
	}
	if strings.Contains(joined, "--write-info-json") {
		t.Fatalf("unexpected info json flag: %v", exec.args)
	}
	if exec.args[len(exec.args)-1] != "https://example.com/v" {
		t.Fatalf("url must be last: %v", exec.args)
	}
}

func TestDownloadBuildsAudioExtractArgs(t *testing.T) {
	exec := &fakeExecutor{}
	client, _ := New("yt-dlp", 60, 0, WithExecutor(exec))

	req := DownloadRequest{
		URL: "https://example.com/v",
		Option: options.Option{
			Selector:  "bestaudio/best",
			Container: "mp3",
			Source:    options.SourceQuick,
		},
		DestDir:      t.TempDir(),
		AudioBitrate: 320,
	}
	if err := client.Download(context.Background(), req, nil); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	joined := strings.Join(exec.args, " ")
	if !strings.Contains(joined, "-x --audio-format mp3 --audio-quality 320K") {
		t.Fatalf("missing audio extraction args: %v", exec.args)
	}
	if strings.Contains(joined, "--merge-output-format") {
		t.Fatalf("audio extraction must not request a merge container: %v", exec.args)
	}
}

func TestDownloadKeepsInfoJSONForVRPicks(t *testing.T) {
	exec := &fakeExecutor{}
	client, _ := New("yt-dlp", 60, 0, WithExecutor(exec))

	req := DownloadRequest{
		URL: "https://example.com/v",
		Option: options.Option{
			Selector:  "bestvideo+bestaudio/best",
			Container: "mkv",
			Source:    options.SourceVRSpecial,
		},
		DestDir: t.TempDir(),
	}
	if err := client.Download(context.Background(), req, nil); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if !strings.Contains(strings.Join(exec.args, " "), "--write-info-json") {
		t.Fatalf("missing info json flag: %v", exec.args)
	}
}

func TestDownloadForwardsProgress(t *testing.T) {
	exec := &fakeExecutor{lines: []string{
		"[download] Destination: video.mp4",
		"[download]  42.3% of 10.00MiB at 1.20MiB/s ETA 00:05",
		"[download] 100% of 10.00MiB in 00:09",
	}}
	client, _ := New("yt-dlp", 60, 0, WithExecutor(exec))

	var updates []ProgressUpdate
	req := DownloadRequest{
		URL:     "https://example.com/v",
		Option:  options.Option{Selector: "best"},
		DestDir: t.TempDir(),
	}
	if err := client.Download(context.Background(), req, func(u ProgressUpdate) {
		updates = append(updates, u)
	}); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d: %+v", len(updates), updates)
	}
	if updates[0].Percent != 42.3 || updates[1].Percent != 100 {
		t.Fatalf("unexpected percents: %+v", updates)
	}
}

func TestDownloadValidation(t *testing.T) {
	client, _ := New("yt-dlp", 60, 0, WithExecutor(&fakeExecutor{}))

	cases := []struct {
		name string
		req  DownloadRequest
	}{
		{"missing url", DownloadRequest{Option: options.Option{Selector: "best"}, DestDir: "/tmp"}},
		{"missing selector", DownloadRequest{URL: "https://example.com/v", DestDir: "/tmp"}},
		{"missing dest", DownloadRequest{URL: "https://example.com/v", Option: options.Option{Selector: "best"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := client.Download(context.Background(), tc.req, nil); !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := New("  ", 60, 0); err == nil {
		t.Fatal("expected error for blank binary")
	}
}

func TestInferTitleFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://example.com/videos/epic-mountain_tour", "Epic Mountain Tour"},
		{"https://example.com/", "Untitled"},
		{"", "Untitled"},
	}
	for _, tc := range cases {
		if got := inferTitleFromURL(tc.url); got != tc.want {
			t.Fatalf("inferTitleFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
