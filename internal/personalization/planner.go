package personalization

import (
	"time"

	"github.com/google/uuid"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

const (
	planWorkoutPool  = 10
	planMealPlanPool = 5

	// Seven minus the clamped target is always >= 1, which keeps the
	// rest-interval division safe and guarantees at least one rest day.
	maxWorkoutsPerWeek = 6
)

// GenerateWeeklyPlan assembles a 7-day schedule starting at weekStart,
// spreading rest days evenly and round-robining the top-ranked workouts
// and meal plans over the remaining days. Every call produces a fresh
// plan; the caller owns replace-vs-merge policy for a given week.
func (e *Engine) GenerateWeeklyPlan(p *domain.AudienceProfile, workouts []domain.Workout, meals []domain.MealPlan, weekStart time.Time) domain.WeeklyPlan {
	workoutPicks := e.PersonalizedWorkouts(p, workouts, planWorkoutPool)
	mealPicks := e.PersonalizedMealPlans(p, meals, planMealPlanPool)

	workoutsPerWeek := p.WeeklyWorkoutTarget
	if workoutsPerWeek < 0 {
		workoutsPerWeek = 0
	}
	if workoutsPerWeek > maxWorkoutsPerWeek {
		workoutsPerWeek = maxWorkoutsPerWeek
	}

	restDays := 7 - workoutsPerWeek
	restInterval := 7 / restDays

	days := make([]domain.PlannedDay, 0, 7)
	restAssigned := 0
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)

		isRest := (i+1)%restInterval == 0 && restAssigned < restDays
		if isRest {
			restAssigned++
		}

		day := domain.PlannedDay{
			Date:      date.Format(domain.DateLayout),
			DayOfWeek: i,
			IsRestDay: isRest,
		}
		if !isRest && len(workoutPicks) > 0 {
			w := workoutPicks[i%len(workoutPicks)]
			day.Workout = &w
		}
		if len(mealPicks) > 0 {
			m := mealPicks[i%len(mealPicks)]
			day.MealPlan = &m
		}
		days = append(days, day)
	}

	now := time.Now().UTC()
	return domain.WeeklyPlan{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		WeekStart: weekStart.Format(domain.DateLayout),
		Days:      days,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
