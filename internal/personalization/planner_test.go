package personalization

import (
	"testing"
	"time"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

func planFixtures() ([]domain.Workout, []domain.MealPlan) {
	workouts := []domain.Workout{
		testWorkout("w1", domain.DifficultyIntermediate, 30),
		testWorkout("w2", domain.DifficultyIntermediate, 40),
		testWorkout("w3", domain.DifficultyIntermediate, 20),
	}
	meals := []domain.MealPlan{
		{ID: "m1", DietType: "balanced"},
		{ID: "m2", DietType: "balanced"},
	}
	return workouts, meals
}

func TestWeeklyPlanRestDayCount(t *testing.T) {
	engine := NewEngine(nil)
	workouts, meals := planFixtures()

	profile := &domain.AudienceProfile{
		UserID:              "u1",
		FitnessLevel:        domain.DifficultyIntermediate,
		MaxWorkoutDuration:  60,
		WeeklyWorkoutTarget: 4,
	}

	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	plan := engine.GenerateWeeklyPlan(profile, workouts, meals, weekStart)

	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan.Days))
	}
	if got := plan.RestDayCount(); got != 3 {
		t.Errorf("target 4 should yield 3 rest days, got %d", got)
	}
	for i, day := range plan.Days {
		if day.IsRestDay && day.Workout != nil {
			t.Errorf("day %d: rest day carries a workout", i)
		}
		if !day.IsRestDay && day.Workout == nil {
			t.Errorf("day %d: training day missing workout", i)
		}
		if day.MealPlan == nil {
			t.Errorf("day %d: every day gets a meal plan", i)
		}
		if day.IsCompleted {
			t.Errorf("day %d: new plan should have no completed days", i)
		}
	}
}

func TestWeeklyPlanDateContinuity(t *testing.T) {
	engine := NewEngine(nil)
	workouts, meals := planFixtures()

	profile := &domain.AudienceProfile{
		UserID:              "u1",
		FitnessLevel:        domain.DifficultyIntermediate,
		WeeklyWorkoutTarget: 3,
	}

	weekStart := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	plan := engine.GenerateWeeklyPlan(profile, workouts, meals, weekStart)

	if plan.WeekStart != "2025-06-30" {
		t.Errorf("expected week start 2025-06-30, got %s", plan.WeekStart)
	}
	for i, day := range plan.Days {
		want := weekStart.AddDate(0, 0, i).Format(domain.DateLayout)
		if day.Date != want {
			t.Errorf("day %d: expected date %s, got %s", i, want, day.Date)
		}
		if day.DayOfWeek != i {
			t.Errorf("day %d: expected dayOfWeek %d, got %d", i, i, day.DayOfWeek)
		}
	}
}

func TestWeeklyPlanClampsTarget(t *testing.T) {
	engine := NewEngine(nil)
	workouts, meals := planFixtures()

	// A target of 7 clamps to 6, reserving one rest day.
	profile := &domain.AudienceProfile{
		UserID:              "u1",
		FitnessLevel:        domain.DifficultyIntermediate,
		WeeklyWorkoutTarget: 7,
	}
	plan := engine.GenerateWeeklyPlan(profile, workouts, meals, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
	if got := plan.RestDayCount(); got != 1 {
		t.Errorf("target 7 clamps to 6 workouts, expected 1 rest day, got %d", got)
	}

	// A target of 0 makes the whole week rest.
	profile.WeeklyWorkoutTarget = 0
	plan = engine.GenerateWeeklyPlan(profile, workouts, meals, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
	if got := plan.RestDayCount(); got != 7 {
		t.Errorf("target 0 should rest all week, got %d rest days", got)
	}

	profile.WeeklyWorkoutTarget = -2
	plan = engine.GenerateWeeklyPlan(profile, workouts, meals, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
	if got := plan.RestDayCount(); got != 7 {
		t.Errorf("negative target treated as 0, got %d rest days", got)
	}
}

func TestWeeklyPlanRoundRobin(t *testing.T) {
	engine := NewEngine(nil)
	workouts, meals := planFixtures()

	profile := &domain.AudienceProfile{
		UserID:              "u1",
		FitnessLevel:        domain.DifficultyIntermediate,
		MaxWorkoutDuration:  60,
		WeeklyWorkoutTarget: 6,
	}

	plan := engine.GenerateWeeklyPlan(profile, workouts, meals, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))

	// Ranking: w1 and w2 tie (difficulty+duration), w3 ties too; all score
	// equally here, so catalog order holds and day i reuses picks[i%3].
	ranked := engine.PersonalizedWorkouts(profile, workouts, planWorkoutPool)
	for i, day := range plan.Days {
		if day.IsRestDay {
			continue
		}
		want := ranked[i%len(ranked)].ID
		if day.Workout == nil || day.Workout.ID != want {
			t.Errorf("day %d: expected workout %s, got %+v", i, want, day.Workout)
		}
	}
	for i, day := range plan.Days {
		want := meals[i%len(meals)].ID
		if day.MealPlan == nil || day.MealPlan.ID != want {
			t.Errorf("day %d: expected meal %s", i, want)
		}
	}
}

func TestWeeklyPlanEmptySourcesLeaveDaysUnassigned(t *testing.T) {
	engine := NewEngine(nil)

	profile := &domain.AudienceProfile{
		UserID:              "u1",
		FitnessLevel:        domain.DifficultyIntermediate,
		WeeklyWorkoutTarget: 5,
	}

	plan := engine.GenerateWeeklyPlan(profile, nil, nil, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC))
	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days even with empty catalogs, got %d", len(plan.Days))
	}
	for i, day := range plan.Days {
		if day.Workout != nil || day.MealPlan != nil {
			t.Errorf("day %d: empty catalogs should leave assignments nil", i)
		}
	}
}

func TestWeeklyPlanFreshIdentity(t *testing.T) {
	engine := NewEngine(nil)
	workouts, meals := planFixtures()

	profile := &domain.AudienceProfile{
		UserID:              "u1",
		FitnessLevel:        domain.DifficultyIntermediate,
		WeeklyWorkoutTarget: 3,
	}

	weekStart := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	first := engine.GenerateWeeklyPlan(profile, workouts, meals, weekStart)
	second := engine.GenerateWeeklyPlan(profile, workouts, meals, weekStart)

	if first.ID == "" || second.ID == "" {
		t.Fatal("plan IDs must be set")
	}
	if first.ID == second.ID {
		t.Error("regeneration must produce a fresh plan ID")
	}
	if first.UserID != "u1" {
		t.Errorf("expected user u1, got %s", first.UserID)
	}
}
