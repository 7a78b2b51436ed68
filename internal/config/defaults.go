package config

const (
	defaultDownloadDir     = "~/Downloads/pandora"
	defaultLogDir          = "~/.local/share/pandora/logs"
	defaultHistoryDB       = "~/.local/share/pandora/history.db"
	defaultYtDlpBinary     = "yt-dlp"
	defaultFFmpegBinary    = "ffmpeg"
	defaultFetchTimeout    = 60
	defaultDownloadTimeout = 0
	defaultOutputTemplate  = "%(title)s.%(ext)s"
	defaultAudioBitrate    = 320
	defaultMaxVideoOptions = 20
	defaultNtfyTimeout     = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DownloadDir: defaultDownloadDir,
			LogDir:      defaultLogDir,
			HistoryDB:   defaultHistoryDB,
		},
		Tools: Tools{
			YtDlpBinary:     defaultYtDlpBinary,
			FFmpegBinary:    defaultFFmpegBinary,
			FetchTimeout:    defaultFetchTimeout,
			DownloadTimeout: defaultDownloadTimeout,
		},
		Output: Output{
			Template:     defaultOutputTemplate,
			AudioBitrate: defaultAudioBitrate,
		},
		Ranking: Ranking{
			MaxVideoOptions: defaultMaxVideoOptions,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
