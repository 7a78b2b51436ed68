package ytdlp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ababiyaworku/Pandora-Box/internal/media"
	"github.com/ababiyaworku/Pandora-Box/internal/options"
	"github.com/ababiyaworku/Pandora-Box/internal/services"
)

// ProgressUpdate captures yt-dlp download progress output.
type ProgressUpdate struct {
	Percent float64
	Message string
}

// DownloadRequest describes one download invocation.
type DownloadRequest struct {
	URL            string
	Option         options.Option
	DestDir        string
	OutputTemplate string
	AudioBitrate   int
}

// Service defines the behaviour the session loop requires.
type Service interface {
	FetchInfo(ctx context.Context, url string) (*media.VideoInfo, []media.Format, error)
	Download(ctx context.Context, req DownloadRequest, progress func(ProgressUpdate)) error
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps yt-dlp CLI interactions.
type Client struct {
	binary          string
	fetchTimeout    time.Duration
	downloadTimeout time.Duration
	exec            Executor
}

// New constructs a yt-dlp client. Timeouts are in seconds; zero disables
// the corresponding deadline.
func New(binary string, fetchTimeoutSeconds, downloadTimeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("yt-dlp binary required")
	}
	client := &Client{
		binary:          binary,
		fetchTimeout:    time.Duration(fetchTimeoutSeconds) * time.Second,
		downloadTimeout: time.Duration(downloadTimeoutSeconds) * time.Second,
		exec:            commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchInfo runs the metadata dump and converts it into the pipeline's
// descriptor types.
func (c *Client) FetchInfo(ctx context.Context, url string) (*media.VideoInfo, []media.Format, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, nil, services.Wrap(services.ErrValidation, "ytdlp", "fetch", "url required", nil)
	}

	fetchCtx := ctx
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	args := []string{"-J", "--no-warnings", url}
	var output strings.Builder
	if err := c.exec.Run(fetchCtx, c.binary, args, func(line string) {
		output.WriteString(line)
		output.WriteByte('\n')
	}); err != nil {
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
			return nil, nil, services.Wrap(services.ErrTimeout, "ytdlp", "fetch", "metadata extraction timed out", err)
		}
		return nil, nil, services.Wrap(services.ErrExternalTool, "ytdlp", "fetch", "metadata extraction failed", err)
	}

	var payload infoPayload
	if err := json.Unmarshal([]byte(output.String()), &payload); err != nil {
		return nil, nil, services.Wrap(services.ErrExternalTool, "ytdlp", "fetch", "parse metadata dump", err)
	}
	if len(payload.Formats) == 0 {
		return nil, nil, services.Wrap(services.ErrNotFound, "ytdlp", "fetch", "no downloadable formats reported", nil)
	}

	return payload.toVideoInfo(url), payload.toFormats(), nil
}

// Download runs yt-dlp for the chosen option, forwarding progress events.
func (c *Client) Download(ctx context.Context, req DownloadRequest, progress func(ProgressUpdate)) error {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return services.Wrap(services.ErrValidation, "ytdlp", "download", "url required", nil)
	}
	if req.Option.Selector == "" {
		return services.Wrap(services.ErrValidation, "ytdlp", "download", "format selector required", nil)
	}
	if req.DestDir == "" {
		return services.Wrap(services.ErrValidation, "ytdlp", "download", "destination directory required", nil)
	}
	if err := os.MkdirAll(req.DestDir, 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "ytdlp", "download", "create destination", err)
	}

	downloadCtx := ctx
	if c.downloadTimeout > 0 {
		var cancel context.CancelFunc
		downloadCtx, cancel = context.WithTimeout(ctx, c.downloadTimeout)
		defer cancel()
	}

	args := buildDownloadArgs(req)
	if err := c.exec.Run(downloadCtx, c.binary, args, func(line string) {
		if progress == nil {
			return
		}
		if update, ok := parseProgress(line); ok {
			progress(update)
		}
	}); err != nil {
		switch {
		case errors.Is(downloadCtx.Err(), context.DeadlineExceeded):
			return services.Wrap(services.ErrTimeout, "ytdlp", "download", "download timed out", err)
		case errors.Is(downloadCtx.Err(), context.Canceled):
			return services.Wrap(services.ErrCancelled, "ytdlp", "download", "download cancelled", err)
		}
		return services.Wrap(services.ErrExternalTool, "ytdlp", "download", "download failed", err)
	}
	return nil
}

func buildDownloadArgs(req DownloadRequest) []string {
	template := req.OutputTemplate
	if template == "" {
		template = "%(title)s.%(ext)s"
	}

	args := []string{
		"--newline",
		"--no-warnings",
		"-o", filepath.Join(req.DestDir, template),
		"-f", req.Option.Selector,
	}

	opt := req.Option
	switch {
	case opt.WantsAudioExtract():
		bitrate := req.AudioBitrate
		if bitrate <= 0 {
			bitrate = 320
		}
		args = append(args, "-x", "--audio-format", "mp3", "--audio-quality", strconv.Itoa(bitrate)+"K")
	case opt.Container != "":
		args = append(args, "--merge-output-format", opt.Container)
	}
	if opt.WantsInfoJSON() {
		args = append(args, "--write-info-json")
	}

	return append(args, req.URL)
}

var progressPattern = regexp.MustCompile(`^\[download\]\s+([0-9.]+)%`)

func parseProgress(line string) (ProgressUpdate, bool) {
	line = strings.TrimSpace(line)
	match := progressPattern.FindStringSubmatch(line)
	if match == nil {
		return ProgressUpdate{}, false
	}
	percent, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return ProgressUpdate{}, false
	}
	return ProgressUpdate{Percent: percent, Message: line}, true
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader, forward func(string)) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			forward(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	forward := func(line string) {
		if onStdout != nil {
			onStdout(line)
			return
		}
		fmt.Fprintln(os.Stderr, line)
	}

	wg.Add(2)
	go scan(stdout, forward)
	go scan(stderr, forward)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}

var _ Service = (*Client)(nil)
