package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ababiyaworku/Pandora-Box/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Download history utilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, ctx, 20, "")
		},
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past downloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, ctx, limit, statusFilter)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum records to show (0 for all)")
	cmd.Flags().StringVarP(&statusFilter, "status", "s", "", "Filter by status (pending, downloading, completed, failed, cancelled)")
	return cmd
}

func runHistoryList(cmd *cobra.Command, ctx *commandContext, limit int, statusFilter string) error {
	store, err := openHistory(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	var statuses []history.Status
	if statusFilter != "" {
		statuses = append(statuses, history.Status(statusFilter))
	}

	records, err := store.List(cmd.Context(), limit, statuses...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No downloads recorded.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		title := record.Title
		if title == "" {
			title = record.URL
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", record.ID),
			record.CreatedAt.Local().Format(time.DateTime),
			string(record.Status),
			title,
			record.Description,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "When", "Status", "Title", "Option"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history records",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d records.\n", removed)
			return nil
		},
	}
}

func openHistory(ctx *commandContext) (*history.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.Paths.HistoryDB)
}
