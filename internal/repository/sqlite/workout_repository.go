package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"fitlog/internal/domain"
	"fitlog/internal/repository"
)

const createWorkoutsTable = `
CREATE TABLE IF NOT EXISTS workouts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	type TEXT,
	date TEXT,
	exercises TEXT,
	created_at DATETIME NOT NULL
);
`

type WorkoutRepository struct {
	db *sql.DB
}

func NewWorkoutRepository(db *sql.DB) repository.WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createWorkoutsTable); err != nil {
		return fmt.Errorf("create workouts table: %w", err)
	}
	return nil
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO workouts (username, type, date, exercises, created_at)
VALUES (?, ?, ?, ?, ?)`,
		workout.Username,
		workout.Type,
		workout.Date,
		workout.Exercises,
		workout.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("workout last insert id: %w", err)
	}
	workout.ID = id
	return id, nil
}

func (r *WorkoutRepository) ListByUsername(ctx context.Context, username string) ([]domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, username, type, date, exercises, created_at
FROM workouts
WHERE username = ?
ORDER BY id DESC`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(
			&w.ID,
			&w.Username,
			&w.Type,
			&w.Date,
			&w.Exercises,
			&w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}
