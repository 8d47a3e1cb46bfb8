package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

// SaveWeeklyPlan stores a plan, replacing any prior plan for the same
// user and week. Days are stored as jsonb.
func (r *Repository) SaveWeeklyPlan(ctx context.Context, plan *domain.WeeklyPlan) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO weekly_plans (id, user_id, week_start, days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			id = EXCLUDED.id,
			days = EXCLUDED.days,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`,
		plan.ID, plan.UserID, plan.WeekStart, plan.Days, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save weekly plan for user %s: %w", plan.UserID, err)
	}
	return nil
}

// GetWeeklyPlan fetches the plan for a user and week start date.
func (r *Repository) GetWeeklyPlan(ctx context.Context, userID, weekStart string) (*domain.WeeklyPlan, error) {
	plan := &domain.WeeklyPlan{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, week_start, days, created_at, updated_at
		FROM weekly_plans WHERE user_id = $1 AND week_start = $2`,
		userID, weekStart,
	).Scan(&plan.ID, &plan.UserID, &plan.WeekStart, &plan.Days,
		&plan.CreatedAt, &plan.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("query weekly plan for user %s week %s: %w", userID, weekStart, err)
	}

	return plan, nil
}

// UpdateWeeklyPlanDays rewrites a stored plan's days after a day-level
// mutation (completion, rest toggle).
func (r *Repository) UpdateWeeklyPlanDays(ctx context.Context, plan *domain.WeeklyPlan) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE weekly_plans SET days = $1, updated_at = $2 WHERE id = $3`,
		plan.Days, plan.UpdatedAt, plan.ID,
	)
	if err != nil {
		return fmt.Errorf("update weekly plan %s: %w", plan.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}
