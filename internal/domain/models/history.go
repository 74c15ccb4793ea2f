package models

import (
	"maps"
	"time"
)

// JSONMap is an opaque key-value bag, stored and re-displayed as-is
type JSONMap map[string]interface{}

// HistoryRecord summarizes one completed generation.
// Records are immutable once saved; ID is assigned by the store.
type HistoryRecord struct {
	ID         int64     `json:"id"`
	Prompt     string    `json:"prompt"`
	Model      string    `json:"model"`
	Timestamp  time.Time `json:"timestamp"`
	TokensUsed int       `json:"tokensUsed"`
	Parameters JSONMap   `json:"parameters"` // Exact parameter set sent upstream
	Response   string    `json:"response"`
}

// Clone returns a copy that shares no mutable state with r
func (r *HistoryRecord) Clone() HistoryRecord {
	out := *r
	out.Parameters = maps.Clone(r.Parameters)
	return out
}
