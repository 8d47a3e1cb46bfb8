package repository

import (
	"context"
	"fmt"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

// ListWorkouts returns the whole workout catalog in insertion order. The
// catalog is sized in the tens of items; the engine filters in memory.
func (r *Repository) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, muscle_groups, difficulty, duration,
			equipment, calories, tags, created_at, updated_at
		FROM workouts
		ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var items []domain.Workout
	for rows.Next() {
		var w domain.Workout
		err := rows.Scan(&w.ID, &w.Title, &w.Description, &w.MuscleGroups,
			(*string)(&w.Difficulty), &w.Duration, &w.Equipment, &w.Calories,
			&w.Tags, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over workouts: %w", err)
	}
	return items, nil
}
