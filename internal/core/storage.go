package core

import (
	"context"
	"time"
)

// HistoryRepository persists submitted console lines for recall.
type HistoryRepository interface {
	Add(ctx context.Context, line string) error
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}

type HistoryEntry struct {
	ID        int64     `json:"id"`
	Line      string    `json:"line"`
	CreatedAt time.Time `json:"created_at"`
}
