package service

import (
	"context"
	"fmt"
	"log/slog"

	"playground/internal/config"
	"playground/internal/domain/models"
	"playground/internal/domain/repositories"
	"playground/internal/domain/services"
)

// HistoryService implements the HistoryService interface
type HistoryService struct {
	historyRepo repositories.HistoryRepository
	logger      *slog.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(
	historyRepo repositories.HistoryRepository,
	logger *slog.Logger,
) services.HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// ListHistory returns the most recent records
func (s *HistoryService) ListHistory(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	records, err := s.historyRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return records, nil
}

// ClearHistory removes all records
func (s *HistoryService) ClearHistory(ctx context.Context) error {
	if err := s.historyRepo.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	s.logger.Info("history cleared")
	return nil
}
