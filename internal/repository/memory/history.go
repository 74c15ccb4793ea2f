package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"playground/internal/domain/models"
	"playground/internal/domain/repositories"
)

// HistoryRepository is a process-lifetime, in-memory history store.
// All reads and writes go through mu; ids come from nextID and are never
// reused, even after Clear.
type HistoryRepository struct {
	mu      sync.RWMutex
	records map[int64]models.HistoryRecord
	nextID  int64
	now     func() time.Time
	logger  *slog.Logger
}

// NewHistoryRepository creates an empty store whose first id is 1
func NewHistoryRepository(logger *slog.Logger) repositories.HistoryRepository {
	return newHistoryRepository(logger, time.Now)
}

func newHistoryRepository(logger *slog.Logger, now func() time.Time) *HistoryRepository {
	return &HistoryRepository{
		records: make(map[int64]models.HistoryRecord),
		nextID:  1,
		now:     now,
		logger:  logger,
	}
}

// Save stores a copy of record under the next id.
// A zero timestamp is replaced with the current time.
func (r *HistoryRepository) Save(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error) {
	stored := record.Clone()
	if stored.Timestamp.IsZero() {
		stored.Timestamp = r.now()
	}

	r.mu.Lock()
	stored.ID = r.nextID
	r.nextID++
	r.records[stored.ID] = stored
	r.mu.Unlock()

	r.logger.Debug("history record saved",
		"id", stored.ID,
		"model", stored.Model,
		"tokens_used", stored.TokensUsed,
	)

	out := stored.Clone()
	return &out, nil
}

// List returns up to limit records ordered by timestamp descending, ties
// broken by id descending.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 {
		return []models.HistoryRecord{}, nil
	}

	r.mu.RLock()
	records := make([]models.HistoryRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if !records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].Timestamp.After(records[j].Timestamp)
		}
		return records[i].ID > records[j].ID
	})

	if limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

// Clear removes all records. The id counter keeps running.
func (r *HistoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	n := len(r.records)
	clear(r.records)
	r.mu.Unlock()

	r.logger.Debug("history cleared", "removed", n)
	return nil
}
