package main

import (
	"github.com/spf13/cobra"

	"github.com/ababiyaworku/Pandora-Box/internal/options"
	"github.com/ababiyaworku/Pandora-Box/internal/session"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Show the download options for a URL without downloading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if err := session.ValidateURL(url); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.newYtdlpClient()
			if err != nil {
				return err
			}

			info, formats, err := client.FetchInfo(cmd.Context(), url)
			if err != nil {
				return err
			}

			buckets := options.Aggregate(formats, *info)
			opts := options.Build(*info, buckets, cfg.Ranking.MaxVideoOptions)

			renderer := newTerminalRenderer(cmd.OutOrStdout())
			renderer.ShowInfo(*info)
			renderer.ShowOptions(opts)
			return nil
		},
	}
}
