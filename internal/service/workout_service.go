package service

import (
	"context"
	"errors"
	"time"

	"fitlog/internal/domain"
	"fitlog/internal/repository"
)

// ErrUnauthenticated indicates the operation requires a logged-in user.
var ErrUnauthenticated = errors.New("unauthenticated")

// WorkoutService describes workout logging operations for an authenticated user.
type WorkoutService interface {
	Create(ctx context.Context, username, wtype, date, exercises string) (*domain.Workout, error)
	List(ctx context.Context, username string) ([]domain.Workout, error)
}

type workoutService struct {
	workouts repository.WorkoutRepository
}

func NewWorkoutService(workouts repository.WorkoutRepository) WorkoutService {
	return &workoutService{workouts: workouts}
}

// Create stores a workout for the given owner. Field content is not
// validated; the exercises payload is treated as an opaque blob.
func (s *workoutService) Create(ctx context.Context, username, wtype, date, exercises string) (*domain.Workout, error) {
	if username == "" {
		return nil, ErrUnauthenticated
	}

	workout := &domain.Workout{
		Username:  username,
		Type:      wtype,
		Date:      date,
		Exercises: exercises,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.workouts.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// List returns the owner's workouts, most recently created first.
func (s *workoutService) List(ctx context.Context, username string) ([]domain.Workout, error) {
	if username == "" {
		return nil, ErrUnauthenticated
	}
	return s.workouts.ListByUsername(ctx, username)
}
