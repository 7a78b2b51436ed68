package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ababiyaworku/Pandora-Box/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories and external binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				status := "ok"
				if !result.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{result.Name, status, result.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows, nil))

			if !preflight.Ok(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}
