package repositories

import (
	"context"

	"playground/internal/domain/models"
)

// HistoryRepository defines the interface for generation history storage
type HistoryRepository interface {
	// Save assigns the next id, normalizes the timestamp and stores the record.
	// The ID of the passed record is ignored.
	Save(ctx context.Context, record *models.HistoryRecord) (*models.HistoryRecord, error)

	// List returns up to limit records, most recent first.
	// A non-positive limit yields an empty slice.
	List(ctx context.Context, limit int) ([]models.HistoryRecord, error)

	// Clear removes every record. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
