package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ababiyaworku/Pandora-Box/internal/config"
)

const userAgent = "Pandora-Box/0.1.0"

// Service defines the notification surface exposed to the session loop.
type Service interface {
	NotifyDownloadStarted(ctx context.Context, title, description string) error
	NotifyDownloadCompleted(ctx context.Context, title string, duration time.Duration) error
	NotifyDownloadFailed(ctx context.Context, title string, err error) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyDownloadStarted(ctx context.Context, title, description string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	message := fmt.Sprintf("Started downloading: %s", title)
	if description != "" {
		message = fmt.Sprintf("%s\n%s", message, description)
	}
	data := payload{
		title:   "Pandora - Download Started",
		message: message,
		tags:    []string{"pandora", "download", "started"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyDownloadCompleted(ctx context.Context, title string, duration time.Duration) error {
	title = strings.TrimSpace(title)
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}
	data := payload{
		title:    "Pandora - Download Complete",
		message:  fmt.Sprintf("Finished in %s: %s", duration, title),
		tags:     []string{"pandora", "download", "completed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyDownloadFailed(ctx context.Context, title string, err error) error {
	var builder strings.Builder
	builder.WriteString("Download failed")
	if title = strings.TrimSpace(title); title != "" {
		builder.WriteString(": ")
		builder.WriteString(title)
	}
	builder.WriteString("\n")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown error")
	}
	data := payload{
		title:    "Pandora - Download Failed",
		message:  builder.String(),
		tags:     []string{"pandora", "download", "failed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Pandora - Test",
		message:  "Notification system test",
		tags:     []string{"pandora", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyDownloadStarted(context.Context, string, string) error { return nil }
func (noopService) NotifyDownloadCompleted(context.Context, string, time.Duration) error {
	return nil
}
func (noopService) NotifyDownloadFailed(context.Context, string, error) error { return nil }
func (noopService) TestNotification(context.Context) error                    { return nil }
