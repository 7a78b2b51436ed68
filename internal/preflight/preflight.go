package preflight

import (
	"context"

	"github.com/ababiyaworku/Pandora-Box/internal/config"
	"github.com/ababiyaworku/Pandora-Box/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Download directory", cfg.Paths.DownloadDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}

	for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
		results = append(results, binaryResult(status))
	}

	return results
}

// Ok reports whether every result passed.
func Ok(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

func binaryResult(status deps.Status) Result {
	result := Result{Name: status.Name, Passed: status.Available}
	switch {
	case status.Available:
		result.Detail = status.Command
	case status.Optional:
		// An absent optional binary still passes; the detail carries the
		// warning.
		result.Passed = true
		result.Detail = status.Detail
	default:
		result.Detail = status.Detail
	}
	return result
}
