package repository

import (
	"context"

	"github.com/mindcheck/screener/internal/domain"
)

// ScreeningFilter narrows List. A zero value lists everything, newest first.
type ScreeningFilter struct {
	Status domain.ScreeningStatus
	Limit  int
}

type ScreeningRepo interface {
	Create(ctx context.Context, s *domain.Screening) error
	GetByID(ctx context.Context, id string) (*domain.Screening, error)
	// GetByPrefix resolves a display ID (or any unique ID prefix).
	GetByPrefix(ctx context.Context, prefix string) (*domain.Screening, error)
	List(ctx context.Context, filter ScreeningFilter) ([]*domain.Screening, error)
	Update(ctx context.Context, s *domain.Screening) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
