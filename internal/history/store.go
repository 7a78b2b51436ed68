package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS downloads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT,
    url TEXT NOT NULL,
    title TEXT,
    uploader TEXT,
    selector TEXT NOT NULL,
    container TEXT,
    description TEXT,
    status TEXT NOT NULL,
    error_message TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_downloads_status ON downloads(status);
`

const recordColumns = "id, session_id, url, title, uploader, selector, container, description, status, error_message, created_at, updated_at"

// Store manages download history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history database path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add inserts a new pending record and returns it with its identifier.
func (s *Store) Add(ctx context.Context, record Record) (*Record, error) {
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	if record.Status == "" {
		record.Status = StatusPending
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO downloads (
            session_id, url, title, uploader, selector, container,
            description, status, error_message, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullableString(record.SessionID),
		record.URL,
		nullableString(record.Title),
		nullableString(record.Uploader),
		record.Selector,
		nullableString(record.Container),
		nullableString(record.Description),
		record.Status,
		nullableString(record.ErrorMsg),
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID fetches a record by identifier. A missing record returns nil.
func (s *Store) GetByID(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM downloads WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return record, nil
}

// SetStatus transitions a record, recording an error message on failure.
func (s *Store) SetStatus(ctx context.Context, id int64, status Status, errorMsg string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(
		ctx,
		`UPDATE downloads SET status = ?, error_message = ?, updated_at = ? WHERE id = ?`,
		status,
		nullableString(errorMsg),
		timestamp,
		id,
	); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// List returns records filtered by status (or all when none given), newest
// first, capped at limit when positive.
func (s *Store) List(ctx context.Context, limit int, statuses ...Status) ([]*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM downloads`
	args := make([]any, 0, len(statuses)+1)
	if len(statuses) > 0 {
		query += ` WHERE status IN (` + makePlaceholders(len(statuses)) + `)`
		for _, status := range statuses {
			args = append(args, status)
		}
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Clear removes all records and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM downloads`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		id          int64
		sessionID   sql.NullString
		url         string
		title       sql.NullString
		uploader    sql.NullString
		selector    string
		container   sql.NullString
		description sql.NullString
		statusStr   string
		errorMsg    sql.NullString
		createdRaw  string
		updatedRaw  string
	)

	if err := scanner.Scan(
		&id,
		&sessionID,
		&url,
		&title,
		&uploader,
		&selector,
		&container,
		&description,
		&statusStr,
		&errorMsg,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	record := &Record{
		ID:          id,
		SessionID:   sessionID.String,
		URL:         url,
		Title:       title.String,
		Uploader:    uploader.String,
		Selector:    selector,
		Container:   container.String,
		Description: description.String,
		Status:      Status(statusStr),
		ErrorMsg:    errorMsg.String,
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		record.CreatedAt = created
	}
	if updated, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
		record.UpdatedAt = updated
	}
	return record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
