package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

// GetProfile fetches a single audience profile.
func (r *Repository) GetProfile(ctx context.Context, userID string) (*domain.AudienceProfile, error) {
	p := &domain.AudienceProfile{}

	err := r.pool.QueryRow(ctx,
		`SELECT user_id, fitness_level, goals, diet_preference, allergies,
			available_equipment, max_workout_duration, weekly_workout_target,
			engagement_score, completion_rate, created_at, updated_at
		FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, (*string)(&p.FitnessLevel), &p.Goals, &p.DietPreference,
		&p.Allergies, &p.AvailableEquipment, &p.MaxWorkoutDuration,
		&p.WeeklyWorkoutTarget, &p.EngagementScore, &p.CompletionRate,
		&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile %s: %w", userID, err)
	}

	return p, nil
}

// UpsertProfile inserts or replaces a user's profile.
func (r *Repository) UpsertProfile(ctx context.Context, p *domain.AudienceProfile) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, fitness_level, goals, diet_preference,
			allergies, available_equipment, max_workout_duration,
			weekly_workout_target, engagement_score, completion_rate,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		ON CONFLICT (user_id) DO UPDATE SET
			fitness_level = EXCLUDED.fitness_level,
			goals = EXCLUDED.goals,
			diet_preference = EXCLUDED.diet_preference,
			allergies = EXCLUDED.allergies,
			available_equipment = EXCLUDED.available_equipment,
			max_workout_duration = EXCLUDED.max_workout_duration,
			weekly_workout_target = EXCLUDED.weekly_workout_target,
			engagement_score = EXCLUDED.engagement_score,
			completion_rate = EXCLUDED.completion_rate,
			updated_at = now()`,
		p.UserID, string(p.FitnessLevel), p.Goals, p.DietPreference,
		p.Allergies, p.AvailableEquipment, p.MaxWorkoutDuration,
		p.WeeklyWorkoutTarget, p.EngagementScore, p.CompletionRate,
	)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", p.UserID, err)
	}
	return nil
}

// ListUserIDsPaginated returns user IDs for one page of the batch endpoint.
func (r *Repository) ListUserIDsPaginated(ctx context.Context, page, limit int) ([]string, error) {
	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx,
		`SELECT user_id FROM profiles ORDER BY user_id LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query user ids for page %d: %w", page, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user ids: %w", err)
	}
	return ids, nil
}

// CountProfiles returns the total profile count.
func (r *Repository) CountProfiles(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM profiles`,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return total, nil
}
