package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/ababiyaworku/Pandora-Box/internal/config"
	"github.com/ababiyaworku/Pandora-Box/internal/history"
	"github.com/ababiyaworku/Pandora-Box/internal/media"
	"github.com/ababiyaworku/Pandora-Box/internal/notifications"
	"github.com/ababiyaworku/Pandora-Box/internal/options"
	"github.com/ababiyaworku/Pandora-Box/internal/services"
	"github.com/ababiyaworku/Pandora-Box/internal/services/ytdlp"
)

// State is the session loop position.
type State string

const (
	StateAwaitingURL       State = "awaiting-url"
	StateFetchingInfo      State = "fetching-info"
	StateDisplayingOptions State = "displaying-options"
	StateAwaitingSelection State = "awaiting-selection"
	StateDownloading       State = "downloading"
	StateDone              State = "done"
	StateCancelled         State = "cancelled"
)

// ErrAlreadyRunning reports a second interactive session against the same
// lock file.
var ErrAlreadyRunning = errors.New("another session is already running")

// Prompter reads one line of user input.
type Prompter interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Renderer presents session output.
type Renderer interface {
	ShowMessage(message string)
	ShowInfo(info media.VideoInfo)
	ShowOptions(opts []options.Option)
	ShowProgress(update ytdlp.ProgressUpdate)
}

// Params collects the session collaborators.
type Params struct {
	Config   *config.Config
	Logger   *slog.Logger
	Service  ytdlp.Service
	Store    *history.Store
	Notifier notifications.Service
	Prompter Prompter
	Renderer Renderer
	// LockPath guards against concurrent sessions; empty disables locking.
	LockPath string
}

// Session owns one interactive download loop.
type Session struct {
	id       string
	cfg      *config.Config
	logger   *slog.Logger
	service  ytdlp.Service
	store    *history.Store
	notifier notifications.Service
	prompter Prompter
	renderer Renderer
	lockPath string
	state    State
}

// New constructs a session.
func New(params Params) (*Session, error) {
	if params.Config == nil {
		return nil, errors.New("config required")
	}
	if params.Service == nil {
		return nil, errors.New("ytdlp service required")
	}
	if params.Prompter == nil || params.Renderer == nil {
		return nil, errors.New("prompter and renderer required")
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = notifications.NewService(params.Config)
	}
	return &Session{
		id:       uuid.NewString(),
		cfg:      params.Config,
		logger:   logger.With("component", "session"),
		service:  params.Service,
		store:    params.Store,
		notifier: notifier,
		prompter: params.Prompter,
		renderer: params.Renderer,
		lockPath: params.LockPath,
		state:    StateAwaitingURL,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current loop position.
func (s *Session) State() State {
	return s.state
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.logger.Debug("state transition", "from", string(s.state), "to", string(state))
	s.state = state
}

// Run executes the interactive loop until the user quits or the context
// is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ctx = services.WithSessionID(ctx, s.id)

	if s.lockPath != "" {
		lock := flock.New(s.lockPath)
		acquired, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire session lock: %w", err)
		}
		if !acquired {
			return ErrAlreadyRunning
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	s.logger.Info("session started", "session_id", s.id)
	for {
		if err := ctx.Err(); err != nil {
			s.setState(StateCancelled)
			return err
		}

		s.setState(StateAwaitingURL)
		url, quit, err := s.promptURL(ctx)
		if err != nil {
			return err
		}
		if quit {
			s.setState(StateDone)
			s.logger.Info("session finished", "session_id", s.id)
			return nil
		}

		again, err := s.runOnce(ctx, url)
		if err != nil {
			return err
		}
		if !again {
			s.setState(StateDone)
			s.logger.Info("session finished", "session_id", s.id)
			return nil
		}
	}
}

// runOnce handles a single URL from fetch through download. It returns
// whether the loop should prompt for another URL.
func (s *Session) runOnce(ctx context.Context, url string) (bool, error) {
	s.setState(StateFetchingInfo)
	requestCtx := services.WithRequestID(ctx, services.NewRequestID())

	s.renderer.ShowMessage("Fetching video information...")
	info, formats, err := s.service.FetchInfo(requestCtx, url)
	if err != nil {
		s.logger.Warn("fetch failed", "url", url, "error", err)
		s.renderer.ShowMessage(fmt.Sprintf("Could not fetch video information: %v", err))
		return true, nil
	}
	s.logger.Info("fetched info", "title", info.Title, "formats", len(formats))

	buckets := options.Aggregate(formats, *info)
	opts := options.Build(*info, buckets, s.cfg.Ranking.MaxVideoOptions)
	if len(opts) == 0 {
		s.renderer.ShowMessage("No downloadable options found.")
		return true, nil
	}

	s.setState(StateDisplayingOptions)
	s.renderer.ShowInfo(*info)
	s.renderer.ShowOptions(opts)

	s.setState(StateAwaitingSelection)
	choice, cancelled, err := s.promptSelection(ctx, len(opts))
	if err != nil {
		return false, err
	}
	if cancelled {
		s.setState(StateCancelled)
		s.renderer.ShowMessage("Cancelled.")
		return s.promptAnother(ctx)
	}
	selected := opts[choice-1]

	destDir, err := s.promptDownloadDir(ctx)
	if err != nil {
		return false, err
	}

	if err := s.download(ctx, url, *info, selected, destDir); err != nil {
		return false, err
	}
	return s.promptAnother(ctx)
}

func (s *Session) download(ctx context.Context, url string, info media.VideoInfo, opt options.Option, destDir string) error {
	s.setState(StateDownloading)

	var recordID int64
	if s.store != nil {
		record, err := s.store.Add(ctx, history.Record{
			SessionID:   s.id,
			URL:         url,
			Title:       info.Title,
			Uploader:    info.Uploader,
			Selector:    opt.Selector,
			Container:   opt.Container,
			Description: opt.Description,
		})
		if err != nil {
			s.logger.Warn("record download", "error", err)
		} else {
			recordID = record.ID
		}
	}

	s.renderer.ShowMessage(fmt.Sprintf("Downloading: %s", opt.Description))
	s.logger.Info("download started", "title", info.Title, "selector", opt.Selector)
	_ = s.notifier.NotifyDownloadStarted(ctx, info.Title, opt.Description)
	s.setRecordStatus(ctx, recordID, history.StatusDownloading, "")

	started := time.Now()
	err := s.service.Download(ctx, ytdlp.DownloadRequest{
		URL:            url,
		Option:         opt,
		DestDir:        destDir,
		OutputTemplate: s.cfg.Output.Template,
		AudioBitrate:   s.cfg.Output.AudioBitrate,
	}, s.renderer.ShowProgress)

	switch {
	case err == nil:
		duration := time.Since(started)
		s.logger.Info("download completed", "title", info.Title, "duration", duration)
		s.renderer.ShowMessage(fmt.Sprintf("Download complete: %s", info.Title))
		s.setRecordStatus(ctx, recordID, history.StatusCompleted, "")
		_ = s.notifier.NotifyDownloadCompleted(ctx, info.Title, duration)
	case errors.Is(err, services.ErrCancelled) || errors.Is(ctx.Err(), context.Canceled):
		s.logger.Info("download cancelled", "title", info.Title)
		s.renderer.ShowMessage("Download cancelled.")
		s.setRecordStatus(ctx, recordID, history.StatusCancelled, "")
	default:
		s.logger.Error("download failed", "title", info.Title, "error", err)
		s.renderer.ShowMessage(fmt.Sprintf("Download failed: %v", err))
		s.setRecordStatus(ctx, recordID, history.StatusFailed, err.Error())
		_ = s.notifier.NotifyDownloadFailed(ctx, info.Title, err)
	}
	return nil
}

func (s *Session) setRecordStatus(ctx context.Context, id int64, status history.Status, errorMsg string) {
	if s.store == nil || id == 0 {
		return
	}
	if err := s.store.SetStatus(ctx, id, status, errorMsg); err != nil {
		s.logger.Warn("update history", "record_id", id, "error", err)
	}
}

func (s *Session) promptURL(ctx context.Context) (string, bool, error) {
	for {
		input, err := s.prompter.ReadLine(ctx, "Enter video URL (or q to quit): ")
		if err != nil {
			return "", false, err
		}
		if IsQuit(input) {
			return "", true, nil
		}
		if err := ValidateURL(input); err != nil {
			s.renderer.ShowMessage(fmt.Sprintf("Invalid URL: %v", err))
			continue
		}
		return strings.TrimSpace(input), false, nil
	}
}

func (s *Session) promptSelection(ctx context.Context, count int) (int, bool, error) {
	prompt := fmt.Sprintf("Select option [1-%d] (0 to cancel): ", count)
	for {
		input, err := s.prompter.ReadLine(ctx, prompt)
		if err != nil {
			return 0, false, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			s.renderer.ShowMessage("Enter a number.")
			continue
		}
		if choice == 0 {
			return 0, true, nil
		}
		if choice < 1 || choice > count {
			s.renderer.ShowMessage(fmt.Sprintf("Choose between 1 and %d.", count))
			continue
		}
		return choice, false, nil
	}
}

func (s *Session) promptDownloadDir(ctx context.Context) (string, error) {
	prompt := fmt.Sprintf("Download directory [%s]: ", s.cfg.Paths.DownloadDir)
	input, err := s.prompter.ReadLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return s.cfg.Paths.DownloadDir, nil
	}
	expanded, err := config.ExpandPath(input)
	if err != nil {
		s.renderer.ShowMessage(fmt.Sprintf("Using default directory: %v", err))
		return s.cfg.Paths.DownloadDir, nil
	}
	return filepath.Clean(expanded), nil
}

func (s *Session) promptAnother(ctx context.Context) (bool, error) {
	input, err := s.prompter.ReadLine(ctx, "Download another? [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
