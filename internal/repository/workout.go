package repository

import (
	"context"

	"fitlog/internal/domain"
)

// WorkoutRepository exposes persistence operations for Workout records.
type WorkoutRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, workout *domain.Workout) (int64, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Workout, error)
}
