package seeds

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

// Setup loads the demo catalog and profiles. Data is deterministic so
// recommendation responses are reproducible across fresh databases.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE weekly_plans, programs, meal_plans, workouts, profiles RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting workouts")
	if err := seedWorkouts(ctx, pool); err != nil {
		return fmt.Errorf("seed workouts: %w", err)
	}

	log.Println("[seed] inserting meal plans")
	if err := seedMealPlans(ctx, pool); err != nil {
		return fmt.Errorf("seed meal plans: %w", err)
	}

	log.Println("[seed] inserting programs")
	if err := seedPrograms(ctx, pool); err != nil {
		return fmt.Errorf("seed programs: %w", err)
	}

	log.Println("[seed] inserting profiles")
	if err := seedProfiles(ctx, pool); err != nil {
		return fmt.Errorf("seed profiles: %w", err)
	}

	log.Println("[seed] done")
	return nil
}

func seedWorkouts(ctx context.Context, pool *pgxpool.Pool) error {
	workouts := []domain.Workout{
		{ID: "w1", Title: "Morning Bodyweight Burn", Description: "Full-body wake-up circuit, no gear needed.",
			MuscleGroups: []string{"full-body", "core"}, Difficulty: domain.DifficultyBeginner,
			Duration: 15, Equipment: []string{domain.EquipmentNone}, Calories: 140,
			Tags: []string{"quick", "home"}},
		{ID: "w2", Title: "Beginner Dumbbell Basics", Description: "Learn the core lifts with light dumbbells.",
			MuscleGroups: []string{"arms", "shoulders"}, Difficulty: domain.DifficultyBeginner,
			Duration: 25, Equipment: []string{"dumbbells"}, Calories: 180,
			Tags: []string{"strength", "home"}},
		{ID: "w3", Title: "Low-Impact Cardio Flow", Description: "Joint-friendly steady cardio session.",
			MuscleGroups: []string{"cardio", "legs"}, Difficulty: domain.DifficultyBeginner,
			Duration: 30, Equipment: []string{domain.EquipmentNone}, Calories: 220,
			Tags: []string{"cardio"}},
		{ID: "w4", Title: "HIIT Express", Description: "Short all-out intervals for busy days.",
			MuscleGroups: []string{"full-body", "cardio"}, Difficulty: domain.DifficultyIntermediate,
			Duration: 15, Equipment: []string{domain.EquipmentNone}, Calories: 260,
			Tags: []string{"quick", "hiit"}},
		{ID: "w5", Title: "Kettlebell Conditioning", Description: "Swings, cleans and carries.",
			MuscleGroups: []string{"glutes", "back", "core"}, Difficulty: domain.DifficultyIntermediate,
			Duration: 35, Equipment: []string{"kettlebell"}, Calories: 320,
			Tags: []string{"strength", "conditioning"}},
		{ID: "w6", Title: "Upper Body Push Day", Description: "Chest, shoulders and triceps volume.",
			MuscleGroups: []string{"chest", "shoulders", "arms"}, Difficulty: domain.DifficultyIntermediate,
			Duration: 45, Equipment: []string{"dumbbells", "bench"}, Calories: 290,
			Tags: []string{"strength"}},
		{ID: "w7", Title: "Pull-Up Progression", Description: "Build toward strict pull-ups.",
			MuscleGroups: []string{"back", "arms", "core"}, Difficulty: domain.DifficultyIntermediate,
			Duration: 30, Equipment: []string{"pull-up-bar", "resistance-bands"}, Calories: 240,
			Tags: []string{"strength", "calisthenics"}},
		{ID: "w8", Title: "Treadmill Fat Burner", Description: "Incline intervals for calorie burn.",
			MuscleGroups: []string{"cardio", "legs"}, Difficulty: domain.DifficultyIntermediate,
			Duration: 40, Equipment: []string{"treadmill"}, Calories: 420,
			Tags: []string{"cardio", "gym"}},
		{ID: "w9", Title: "Barbell Strength Session", Description: "Squat, bench and row heavy triples.",
			MuscleGroups: []string{"legs", "chest", "back"}, Difficulty: domain.DifficultyAdvanced,
			Duration: 60, Equipment: []string{"barbell", "bench"}, Calories: 380,
			Tags: []string{"strength", "gym"}},
		{ID: "w10", Title: "Advanced Metcon", Description: "High-skill mixed conditioning.",
			MuscleGroups: []string{"full-body", "cardio", "core"}, Difficulty: domain.DifficultyAdvanced,
			Duration: 45, Equipment: []string{"kettlebell", "pull-up-bar"}, Calories: 450,
			Tags: []string{"hiit", "conditioning"}},
		{ID: "w11", Title: "Mobility and Stretch", Description: "Deep stretch and mobility work.",
			MuscleGroups: []string{"full-body"}, Difficulty: domain.DifficultyBeginner,
			Duration: 20, Equipment: []string{domain.EquipmentNone}, Calories: 80,
			Tags: []string{"recovery", "flexibility"}},
		{ID: "w12", Title: "Advanced Sprint Repeats", Description: "Track sprints with full recovery.",
			MuscleGroups: []string{"legs", "cardio"}, Difficulty: domain.DifficultyAdvanced,
			Duration: 35, Equipment: []string{domain.EquipmentNone}, Calories: 400,
			Tags: []string{"cardio", "outdoor"}},
	}

	for _, w := range workouts {
		_, err := pool.Exec(ctx,
			`INSERT INTO workouts (id, title, description, muscle_groups, difficulty,
				duration, equipment, calories, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			w.ID, w.Title, w.Description, w.MuscleGroups, string(w.Difficulty),
			w.Duration, w.Equipment, w.Calories, w.Tags,
		)
		if err != nil {
			return fmt.Errorf("insert workout %s: %w", w.ID, err)
		}
	}
	return nil
}

func seedMealPlans(ctx context.Context, pool *pgxpool.Pool) error {
	meals := []domain.MealPlan{
		{ID: "m1", Title: "Balanced Everyday Plan", Description: "Simple balanced meals for any goal.",
			DietType: "balanced", Macros: domain.Macros{Protein: 110, Carbs: 220, Fat: 70},
			AllergyTags: []string{"nut-free"}, TotalCalories: 2100},
		{ID: "m2", Title: "Lean Cut Plan", Description: "Calorie deficit with high satiety.",
			DietType: "high-protein", Macros: domain.Macros{Protein: 160, Carbs: 140, Fat: 55},
			AllergyTags: []string{"gluten-free", "nut-free"}, TotalCalories: 1800},
		{ID: "m3", Title: "Keto Kickstart", Description: "Strict low-carb week one.",
			DietType: "keto", Macros: domain.Macros{Protein: 120, Carbs: 30, Fat: 150},
			AllergyTags: []string{"gluten-free"}, TotalCalories: 1950},
		{ID: "m4", Title: "Plant Power Plan", Description: "Whole-food vegan meals.",
			DietType: "vegan", Macros: domain.Macros{Protein: 95, Carbs: 260, Fat: 60},
			AllergyTags: []string{"dairy-free", "egg-free"}, TotalCalories: 2000},
		{ID: "m5", Title: "Muscle Builder Plan", Description: "Surplus calories around training.",
			DietType: "high-protein", Macros: domain.Macros{Protein: 180, Carbs: 300, Fat: 80},
			AllergyTags: []string{"nut-free", "shellfish-free"}, TotalCalories: 2700},
		{ID: "m6", Title: "Mediterranean Classic", Description: "Olive oil, fish and whole grains.",
			DietType: "mediterranean", Macros: domain.Macros{Protein: 105, Carbs: 210, Fat: 85},
			AllergyTags: []string{"nut-free"}, TotalCalories: 2200},
		{ID: "m7", Title: "Vegetarian Comfort", Description: "Hearty meat-free classics.",
			DietType: "vegetarian", Macros: domain.Macros{Protein: 90, Carbs: 250, Fat: 75},
			AllergyTags: []string{"nut-free", "soy-free"}, TotalCalories: 2150},
		{ID: "m8", Title: "Low-Carb Reset", Description: "Moderate protein, low carb.",
			DietType: "low-carb", Macros: domain.Macros{Protein: 140, Carbs: 80, Fat: 110},
			AllergyTags: []string{"gluten-free", "dairy-free", "nut-free"}, TotalCalories: 1900},
	}

	for _, m := range meals {
		_, err := pool.Exec(ctx,
			`INSERT INTO meal_plans (id, title, description, diet_type, protein,
				carbs, fat, allergy_tags, total_calories)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			m.ID, m.Title, m.Description, m.DietType, m.Macros.Protein,
			m.Macros.Carbs, m.Macros.Fat, m.AllergyTags, m.TotalCalories,
		)
		if err != nil {
			return fmt.Errorf("insert meal plan %s: %w", m.ID, err)
		}
	}
	return nil
}

func seedPrograms(ctx context.Context, pool *pgxpool.Pool) error {
	// p1-p3 are referenced by the static recommendation rules.
	programs := []domain.WorkoutProgram{
		{ID: "p1", Title: "7-Day Fat Burner", Description: "One week of daily calorie-torching sessions.",
			Goal: domain.GoalWeightLoss, Duration: "7-day", Difficulty: domain.DifficultyIntermediate, Featured: true},
		{ID: "p2", Title: "30-Day Strength Builder", Description: "Progressive overload over four weeks.",
			Goal: domain.GoalStrength, Duration: "30-day", Difficulty: domain.DifficultyIntermediate, Featured: true},
		{ID: "p3", Title: "Beginner Bootcamp", Description: "Foundations for your first month of training.",
			Goal: domain.GoalWeightLoss, Duration: "30-day", Difficulty: domain.DifficultyBeginner, Featured: true},
		{ID: "p4", Title: "Endurance Base Builder", Description: "Aerobic base over eight weeks.",
			Goal: domain.GoalEndurance, Duration: "60-day", Difficulty: domain.DifficultyIntermediate, Featured: false},
		{ID: "p5", Title: "Advanced Hypertrophy Block", Description: "High-volume muscle building.",
			Goal: domain.GoalMuscleGain, Duration: "60-day", Difficulty: domain.DifficultyAdvanced, Featured: false},
		{ID: "p6", Title: "Flexibility in 14 Days", Description: "Daily mobility and stretching.",
			Goal: domain.GoalFlexibility, Duration: "14-day", Difficulty: domain.DifficultyBeginner, Featured: false},
	}

	for _, p := range programs {
		_, err := pool.Exec(ctx,
			`INSERT INTO programs (id, title, description, goal, duration, difficulty, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, p.Title, p.Description, p.Goal, p.Duration, string(p.Difficulty), p.Featured,
		)
		if err != nil {
			return fmt.Errorf("insert program %s: %w", p.ID, err)
		}
	}
	return nil
}

func seedProfiles(ctx context.Context, pool *pgxpool.Pool) error {
	profiles := []domain.AudienceProfile{
		{UserID: "u1", FitnessLevel: domain.DifficultyBeginner,
			Goals: []string{domain.GoalWeightLoss}, Allergies: []string{"nut-free"},
			AvailableEquipment: []string{}, MaxWorkoutDuration: 30,
			WeeklyWorkoutTarget: 3, EngagementScore: 45, CompletionRate: 60},
		{UserID: "u2", FitnessLevel: domain.DifficultyIntermediate,
			Goals: []string{domain.GoalStrength, domain.GoalMuscleGain}, DietPreference: "high-protein",
			Allergies:          []string{},
			AvailableEquipment: []string{"dumbbells", "bench", "pull-up-bar"}, MaxWorkoutDuration: 60,
			WeeklyWorkoutTarget: 5, EngagementScore: 80, CompletionRate: 85},
		{UserID: "u3", FitnessLevel: domain.DifficultyAdvanced,
			Goals: []string{domain.GoalEndurance}, DietPreference: "mediterranean",
			Allergies:          []string{"gluten-free"},
			AvailableEquipment: []string{"treadmill", "kettlebell"}, MaxWorkoutDuration: 45,
			WeeklyWorkoutTarget: 6, EngagementScore: 25, CompletionRate: 90},
	}

	for _, p := range profiles {
		_, err := pool.Exec(ctx,
			`INSERT INTO profiles (user_id, fitness_level, goals, diet_preference,
				allergies, available_equipment, max_workout_duration,
				weekly_workout_target, engagement_score, completion_rate)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.UserID, string(p.FitnessLevel), p.Goals, p.DietPreference,
			p.Allergies, p.AvailableEquipment, p.MaxWorkoutDuration,
			p.WeeklyWorkoutTarget, p.EngagementScore, p.CompletionRate,
		)
		if err != nil {
			return fmt.Errorf("insert profile %s: %w", p.UserID, err)
		}
	}
	return nil
}
