package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/pkg/log"
	"github.com/sandevgo/gcp/pkg/retry"
)

type HistoryRepo struct {
	db      *sql.DB
	retrier *retry.Retrier
}

var _ core.HistoryRepository = (*HistoryRepo)(nil)

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	cfg := retry.NewDefaultConfig()
	cfg.Retryable = isBusy
	return &HistoryRepo{db: db, retrier: retry.NewRetrier(cfg)}
}

// Add appends line. Writes that hit a lock held by another console sharing
// the database are retried with backoff.
func (h *HistoryRepo) Add(ctx context.Context, line string) error {
	query := `INSERT INTO history (line) VALUES (?)`
	err := h.retrier.Do(ctx, func() error {
		_, err := h.db.ExecContext(ctx, query, line)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert history line: %w", err)
	}
	return nil
}

func isBusy(err error) bool {
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code == sqlite3.ErrBusy || sqlErr.Code == sqlite3.ErrLocked
	}
	return false
}

// Recent returns up to limit entries, oldest first. A non-positive limit
// returns everything.
func (h *HistoryRepo) Recent(ctx context.Context, limit int) ([]core.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	// Fetch the LAST 'limit' lines by ordering DESC
	query := `SELECT id, line, created_at FROM history ORDER BY id DESC LIMIT ?`

	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []core.HistoryEntry
	for rows.Next() {
		var e core.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Line, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history line: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Back to chronological order for recall.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(entries)).Msg("loaded history lines")
	return entries, nil
}
