package media

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count for menus, or "Unknown size" when the
// backend omitted the estimate.
func FormatSize(size int64) string {
	if size <= 0 {
		return "Unknown size"
	}
	return humanize.IBytes(uint64(size))
}

// FormatViews renders a view count with thousands separators.
func FormatViews(count int64) string {
	if count <= 0 {
		return "Unknown"
	}
	return humanize.Comma(count)
}

// FormatDuration renders seconds as HH:MM:SS, dropping the hour component
// for short videos. Zero means the duration is unknown.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "Unknown"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
