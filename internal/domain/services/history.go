package services

import (
	"context"

	"playground/internal/domain/models"
)

// HistoryService defines the business logic for reading and clearing history
type HistoryService interface {
	// ListHistory returns the most recent records. Non-positive limits fall
	// back to the default limit.
	ListHistory(ctx context.Context, limit int) ([]models.HistoryRecord, error)

	// ClearHistory removes all records
	ClearHistory(ctx context.Context) error
}
