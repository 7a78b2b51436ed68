package config

import "strings"

// normalize expands paths and backfills empty values with defaults so the
// rest of the program never sees a half-configured struct.
func (c *Config) normalize() error {
	defaults := Default()

	if strings.TrimSpace(c.Paths.DownloadDir) == "" {
		c.Paths.DownloadDir = defaults.Paths.DownloadDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaults.Paths.LogDir
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		c.Paths.HistoryDB = defaults.Paths.HistoryDB
	}

	for _, field := range []*string{&c.Paths.DownloadDir, &c.Paths.LogDir, &c.Paths.HistoryDB} {
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	if strings.TrimSpace(c.Tools.YtDlpBinary) == "" {
		c.Tools.YtDlpBinary = defaults.Tools.YtDlpBinary
	}
	if strings.TrimSpace(c.Tools.FFmpegBinary) == "" {
		c.Tools.FFmpegBinary = defaults.Tools.FFmpegBinary
	}
	if c.Tools.FetchTimeout <= 0 {
		c.Tools.FetchTimeout = defaults.Tools.FetchTimeout
	}
	if c.Tools.DownloadTimeout < 0 {
		c.Tools.DownloadTimeout = 0
	}

	if strings.TrimSpace(c.Output.Template) == "" {
		c.Output.Template = defaults.Output.Template
	}
	if c.Output.AudioBitrate <= 0 {
		c.Output.AudioBitrate = defaults.Output.AudioBitrate
	}

	if c.Ranking.MaxVideoOptions <= 0 {
		c.Ranking.MaxVideoOptions = defaults.Ranking.MaxVideoOptions
	}

	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaults.Notifications.RequestTimeout
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}

	return nil
}
