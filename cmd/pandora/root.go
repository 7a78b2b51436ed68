package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ababiyaworku/Pandora-Box/internal/history"
	"github.com/ababiyaworku/Pandora-Box/internal/notifications"
	"github.com/ababiyaworku/Pandora-Box/internal/session"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "pandora",
		Short:         "Interactive video downloader",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newFetchCommand(ctx))
	rootCmd.AddCommand(newDownloadCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newTestNotifyCommand(ctx))

	return rootCmd
}

func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	client, err := ctx.newYtdlpClient()
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.Paths.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	sess, err := session.New(session.Params{
		Config:   cfg,
		Logger:   logger,
		Service:  client,
		Store:    store,
		Notifier: notifications.NewService(cfg),
		Prompter: newTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Renderer: newTerminalRenderer(cmd.OutOrStdout()),
		LockPath: filepath.Join(cfg.Paths.LogDir, "pandora.lock"),
	})
	if err != nil {
		return err
	}
	return sess.Run(cmd.Context())
}
