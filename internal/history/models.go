package history

import "time"

// Status tracks a download through its lifecycle.
type Status string

const (
	StatusPending     Status = "pending"
	StatusDownloading Status = "downloading"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusCancelled   Status = "cancelled"
)

// Record is one download attempt.
type Record struct {
	ID          int64
	SessionID   string
	URL         string
	Title       string
	Uploader    string
	Selector    string
	Container   string
	Description string
	Status      Status
	ErrorMsg    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
