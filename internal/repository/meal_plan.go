package repository

import (
	"context"
	"fmt"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

func (r *Repository) ListMealPlans(ctx context.Context) ([]domain.MealPlan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, diet_type, protein, carbs, fat,
			allergy_tags, total_calories, created_at, updated_at
		FROM meal_plans
		ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query meal plans: %w", err)
	}
	defer rows.Close()

	var items []domain.MealPlan
	for rows.Next() {
		var m domain.MealPlan
		err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.DietType,
			&m.Macros.Protein, &m.Macros.Carbs, &m.Macros.Fat,
			&m.AllergyTags, &m.TotalCalories, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan meal plan: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over meal plans: %w", err)
	}
	return items, nil
}
