package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if strings.ContainsAny(c.Tools.YtDlpBinary, " \t") {
		return fmt.Errorf("tools.ytdlp_binary %q must not contain whitespace", c.Tools.YtDlpBinary)
	}
	if strings.ContainsAny(c.Tools.FFmpegBinary, " \t") {
		return fmt.Errorf("tools.ffmpeg_binary %q must not contain whitespace", c.Tools.FFmpegBinary)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !strings.Contains(c.Output.Template, "%(") {
		return fmt.Errorf("output.template %q has no substitution fields", c.Output.Template)
	}
	if c.Output.AudioBitrate > 320 {
		return fmt.Errorf("output.audio_bitrate %d exceeds the 320 kbps mp3 ceiling", c.Output.AudioBitrate)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
