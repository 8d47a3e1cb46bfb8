package repository

import (
	"context"
	"fmt"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

func (r *Repository) ListPrograms(ctx context.Context) ([]domain.WorkoutProgram, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, goal, duration, difficulty, featured,
			created_at, updated_at
		FROM programs
		ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer rows.Close()

	var items []domain.WorkoutProgram
	for rows.Next() {
		var p domain.WorkoutProgram
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Goal, &p.Duration,
			(*string)(&p.Difficulty), &p.Featured, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over programs: %w", err)
	}
	return items, nil
}
