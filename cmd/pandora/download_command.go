package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ababiyaworku/Pandora-Box/internal/config"
	"github.com/ababiyaworku/Pandora-Box/internal/options"
	"github.com/ababiyaworku/Pandora-Box/internal/selector"
	"github.com/ababiyaworku/Pandora-Box/internal/session"
	"github.com/ababiyaworku/Pandora-Box/internal/services/ytdlp"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var ordinal int
	var rawSelector string
	var container string
	var dirOverride string

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download a URL non-interactively",
		Long: `Download a URL without the interactive menu. Pick a ranked option by
number (see "pandora fetch") or pass a raw yt-dlp format selector.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if err := session.ValidateURL(url); err != nil {
				return err
			}
			if ordinal > 0 && rawSelector != "" {
				return errors.New("--option and --selector are mutually exclusive")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.newYtdlpClient()
			if err != nil {
				return err
			}

			opt, err := resolveOption(cmd, ctx, client, url, ordinal, rawSelector, container)
			if err != nil {
				return err
			}

			destDir := cfg.Paths.DownloadDir
			if dirOverride != "" {
				expanded, err := config.ExpandPath(dirOverride)
				if err != nil {
					return fmt.Errorf("resolve download directory: %w", err)
				}
				destDir = expanded
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Downloading: %s\n", opt.Description)
			renderer := newTerminalRenderer(out)
			err = client.Download(cmd.Context(), ytdlp.DownloadRequest{
				URL:            url,
				Option:         opt,
				DestDir:        destDir,
				OutputTemplate: cfg.Output.Template,
				AudioBitrate:   cfg.Output.AudioBitrate,
			}, renderer.ShowProgress)
			renderer.finishProgress()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Download complete.")
			return nil
		},
	}

	cmd.Flags().IntVarP(&ordinal, "option", "n", 0, "Ranked option number from the fetch listing")
	cmd.Flags().StringVarP(&rawSelector, "selector", "f", "", "Raw yt-dlp format selector expression")
	cmd.Flags().StringVar(&container, "container", "", "Output container when using --selector (mkv, mp4, mp3)")
	cmd.Flags().StringVarP(&dirOverride, "dir", "d", "", "Download directory override")

	return cmd
}

func resolveOption(cmd *cobra.Command, ctx *commandContext, client *ytdlp.Client, url string, ordinal int, rawSelector, container string) (options.Option, error) {
	if rawSelector != "" {
		if err := selector.Validate(rawSelector); err != nil {
			return options.Option{}, fmt.Errorf("invalid selector: %w", err)
		}
		return options.Option{
			Description: fmt.Sprintf("Custom selector %q", rawSelector),
			Selector:    rawSelector,
			Container:   strings.ToLower(strings.TrimSpace(container)),
			Source:      options.SourceQuick,
		}, nil
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return options.Option{}, err
	}
	info, formats, err := client.FetchInfo(cmd.Context(), url)
	if err != nil {
		return options.Option{}, err
	}
	buckets := options.Aggregate(formats, *info)
	opts := options.Build(*info, buckets, cfg.Ranking.MaxVideoOptions)

	if ordinal <= 0 {
		// Default to the first quick pick, the best muxed MKV.
		ordinal = 1
	}
	if ordinal > len(opts) {
		return options.Option{}, fmt.Errorf("option %d out of range (1-%d)", ordinal, len(opts))
	}
	return opts[ordinal-1], nil
}
