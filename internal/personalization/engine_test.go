package personalization

import (
	"testing"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

func testWorkout(id string, difficulty domain.Difficulty, duration int, equipment ...string) domain.Workout {
	return domain.Workout{
		ID:         id,
		Title:      id,
		Difficulty: difficulty,
		Duration:   duration,
		Equipment:  equipment,
	}
}

func TestWorkoutFilterPipeline(t *testing.T) {
	engine := NewEngine(DefaultRules())

	profile := &domain.AudienceProfile{
		FitnessLevel:       domain.DifficultyBeginner,
		MaxWorkoutDuration: 15,
		AvailableEquipment: []string{},
		EngagementScore:    50,
	}

	catalog := []domain.Workout{
		testWorkout("w-easy", domain.DifficultyBeginner, 10),
		testWorkout("w-hard", domain.DifficultyAdvanced, 45, "dumbbells"),
	}

	result := engine.PersonalizedWorkouts(profile, catalog, 10)
	if len(result) != 1 {
		t.Fatalf("expected 1 workout after filtering, got %d", len(result))
	}
	if result[0].ID != "w-easy" {
		t.Errorf("expected w-easy, got %s", result[0].ID)
	}
}

func TestWorkoutScoringPrefersDifficultyMatch(t *testing.T) {
	// No matching filter rules: plain scoring order.
	engine := NewEngine(nil)

	profile := &domain.AudienceProfile{
		FitnessLevel:       domain.DifficultyIntermediate,
		MaxWorkoutDuration: 60,
	}

	catalog := []domain.Workout{
		testWorkout("w-mismatch", domain.DifficultyAdvanced, 30),
		testWorkout("w-match", domain.DifficultyIntermediate, 30),
	}

	result := engine.PersonalizedWorkouts(profile, catalog, 10)
	if len(result) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(result))
	}
	if result[0].ID != "w-match" {
		t.Errorf("difficulty-matched workout should rank first, got %s", result[0].ID)
	}

	matchScore := calculateWorkoutScore(catalog[1], profile)
	mismatchScore := calculateWorkoutScore(catalog[0], profile)
	if matchScore <= mismatchScore {
		t.Errorf("expected strict score gap, got match=%d mismatch=%d", matchScore, mismatchScore)
	}
}

func TestWorkoutScoreComponents(t *testing.T) {
	profile := &domain.AudienceProfile{
		FitnessLevel:       domain.DifficultyBeginner,
		Goals:              []string{domain.GoalWeightLoss, domain.GoalStrength},
		AvailableEquipment: []string{"dumbbells"},
		MaxWorkoutDuration: 30,
	}

	full := domain.Workout{
		ID:           "w-full",
		Difficulty:   domain.DifficultyBeginner,
		Duration:     25,
		Equipment:    []string{"dumbbells", domain.EquipmentNone},
		Calories:     300,
		MuscleGroups: []string{"legs", "core", "back"},
	}
	if got := calculateWorkoutScore(full, profile); got != 115 {
		t.Errorf("expected maximum score 115, got %d", got)
	}

	base := domain.Workout{
		ID:         "w-base",
		Difficulty: domain.DifficultyAdvanced,
		Duration:   90,
		Equipment:  []string{"cable-machine"},
		Calories:   100,
	}
	if got := calculateWorkoutScore(base, profile); got != 50 {
		t.Errorf("expected base score 50, got %d", got)
	}

	// Empty equipment list earns the equipment bonus vacuously.
	bodyweight := domain.Workout{ID: "w-bw", Difficulty: domain.DifficultyAdvanced, Duration: 90}
	if got := calculateWorkoutScore(bodyweight, profile); got != 60 {
		t.Errorf("expected 60 for vacuous equipment bonus, got %d", got)
	}
}

func TestWorkoutLimitTruncation(t *testing.T) {
	engine := NewEngine(nil)

	profile := &domain.AudienceProfile{
		FitnessLevel:       domain.DifficultyIntermediate,
		MaxWorkoutDuration: 60,
	}

	// Two difficulty matches rank above three mismatches; ties keep
	// catalog order.
	catalog := []domain.Workout{
		testWorkout("w1", domain.DifficultyBeginner, 30),
		testWorkout("w2", domain.DifficultyIntermediate, 30),
		testWorkout("w3", domain.DifficultyBeginner, 30),
		testWorkout("w4", domain.DifficultyIntermediate, 30),
		testWorkout("w5", domain.DifficultyBeginner, 30),
	}

	result := engine.PersonalizedWorkouts(profile, catalog, 2)
	if len(result) != 2 {
		t.Fatalf("expected exactly 2 workouts, got %d", len(result))
	}
	if result[0].ID != "w2" || result[1].ID != "w4" {
		t.Errorf("expected [w2 w4], got [%s %s]", result[0].ID, result[1].ID)
	}
}

func TestEmptyCatalogSafety(t *testing.T) {
	engine := NewEngine(DefaultRules())
	profile := &domain.AudienceProfile{
		FitnessLevel: domain.DifficultyBeginner,
		Goals:        []string{domain.GoalWeightLoss},
		Allergies:    []string{"nut-free"},
	}

	if got := engine.PersonalizedWorkouts(profile, nil, 5); len(got) != 0 {
		t.Errorf("expected empty workouts, got %d", len(got))
	}
	if got := engine.PersonalizedMealPlans(profile, nil, 5); len(got) != 0 {
		t.Errorf("expected empty meal plans, got %d", len(got))
	}
	if got := engine.PersonalizedPrograms(profile, nil, 5); len(got) != 0 {
		t.Errorf("expected empty programs, got %d", len(got))
	}
	if got := engine.Recommendations(profile, nil, nil, nil); len(got) != 0 {
		t.Errorf("expected empty feed, got %d", len(got))
	}
}

func TestMealPlanDietPreferenceIsAdvisory(t *testing.T) {
	engine := NewEngine(nil)

	catalog := []domain.MealPlan{
		{ID: "m-keto", DietType: "keto", TotalCalories: 1800},
		{ID: "m-balanced", DietType: "balanced", TotalCalories: 2200},
	}

	// Preference matches: narrow to that subset.
	profile := &domain.AudienceProfile{DietPreference: "keto"}
	result := engine.PersonalizedMealPlans(profile, catalog, 10)
	if len(result) != 1 || result[0].ID != "m-keto" {
		t.Errorf("expected only m-keto, got %v", result)
	}

	// Preference matches nothing: keep the full catalog.
	profile.DietPreference = "vegan"
	result = engine.PersonalizedMealPlans(profile, catalog, 10)
	if len(result) != 2 {
		t.Errorf("unmatched preference should keep full catalog, got %d items", len(result))
	}
}

func TestMealPlanAllergyFilterRequiresAllTags(t *testing.T) {
	engine := NewEngine(nil)

	catalog := []domain.MealPlan{
		{ID: "m-both", AllergyTags: []string{"gluten-free", "nut-free"}},
		{ID: "m-gluten", AllergyTags: []string{"gluten-free"}},
		{ID: "m-plain", AllergyTags: nil},
	}

	profile := &domain.AudienceProfile{Allergies: []string{"gluten-free", "nut-free"}}
	result := engine.PersonalizedMealPlans(profile, catalog, 10)
	if len(result) != 1 || result[0].ID != "m-both" {
		t.Errorf("only the meal accommodating every allergy should survive, got %v", result)
	}

	// No allergies: nothing filtered.
	profile.Allergies = nil
	result = engine.PersonalizedMealPlans(profile, catalog, 10)
	if len(result) != 3 {
		t.Errorf("expected all 3 meals without allergies, got %d", len(result))
	}
}

func TestMealPlanScoringStacksProteinBonuses(t *testing.T) {
	profile := &domain.AudienceProfile{
		DietPreference: "high-protein",
		Goals:          []string{domain.GoalMuscleGain, domain.GoalStrength},
	}

	meal := domain.MealPlan{
		ID:            "m-protein",
		DietType:      "high-protein",
		TotalCalories: 2600,
		Macros:        domain.Macros{Protein: 160},
	}
	// 50 + 30 diet + 15 muscle-gain + 10 strength.
	if got := calculateMealScore(meal, profile); got != 105 {
		t.Errorf("expected 105, got %d", got)
	}

	meal.Macros.Protein = 130
	// Strength bonus only; protein not over 150.
	if got := calculateMealScore(meal, profile); got != 90 {
		t.Errorf("expected 90, got %d", got)
	}
}

func TestProgramRecommendationOverride(t *testing.T) {
	engine := NewEngine(DefaultRules())

	profile := &domain.AudienceProfile{
		FitnessLevel:       domain.DifficultyIntermediate,
		Goals:              []string{domain.GoalStrength},
		MaxWorkoutDuration: 45,
		EngagementScore:    60,
	}

	catalog := []domain.WorkoutProgram{
		{ID: "p1", Difficulty: domain.DifficultyIntermediate, Goal: domain.GoalWeightLoss, Featured: true},
		{ID: "p2", Difficulty: domain.DifficultyIntermediate, Goal: domain.GoalStrength},
		{ID: "p3", Difficulty: domain.DifficultyBeginner, Goal: domain.GoalWeightLoss},
	}

	result := engine.PersonalizedPrograms(profile, catalog, 3)
	if len(result) == 0 {
		t.Fatal("expected programs")
	}
	if result[0].ID != "p2" {
		t.Errorf("rule-recommended p2 should rank first, got %s", result[0].ID)
	}
}

func TestProgramRecommendationKeepsDuplicates(t *testing.T) {
	cond := []Condition{
		{Field: FieldFitnessLevel, Operator: OpEquals, Value: StringValue("advanced")},
	}
	rules := []Rule{
		{ID: "r1", Conditions: cond, Action: Action{Type: ActionRecommendProgram, ProgramID: "p9"}, Priority: 90},
		{ID: "r2", Conditions: cond, Action: Action{Type: ActionRecommendProgram, ProgramID: "p9"}, Priority: 80},
	}
	engine := NewEngine(rules)

	catalog := []domain.WorkoutProgram{
		{ID: "p9", Difficulty: domain.DifficultyAdvanced},
	}

	profile := &domain.AudienceProfile{FitnessLevel: domain.DifficultyAdvanced}
	result := engine.PersonalizedPrograms(profile, catalog, 5)
	if len(result) != 2 {
		t.Fatalf("two rules naming the same program yield two entries, got %d", len(result))
	}
	if result[0].ID != "p9" || result[1].ID != "p9" {
		t.Errorf("expected [p9 p9], got %v", result)
	}
}

func TestProgramAdjacentDifficultyFallback(t *testing.T) {
	engine := NewEngine(nil)

	catalog := []domain.WorkoutProgram{
		{ID: "p-beg", Difficulty: domain.DifficultyBeginner, Goal: domain.GoalGeneralFitness},
		{ID: "p-int", Difficulty: domain.DifficultyIntermediate, Goal: domain.GoalGeneralFitness},
		{ID: "p-adv", Difficulty: domain.DifficultyAdvanced, Goal: domain.GoalGeneralFitness},
	}

	profile := &domain.AudienceProfile{FitnessLevel: domain.DifficultyBeginner}
	result := engine.PersonalizedPrograms(profile, catalog, 10)
	if len(result) != 2 {
		t.Fatalf("beginner should see beginner and intermediate only, got %d", len(result))
	}
	for _, prog := range result {
		if prog.ID == "p-adv" {
			t.Error("advanced program is not adjacent to beginner")
		}
	}
	// Exact match outranks adjacent.
	if result[0].ID != "p-beg" {
		t.Errorf("expected p-beg first, got %s", result[0].ID)
	}
}

func TestProgramScoreComponents(t *testing.T) {
	profile := &domain.AudienceProfile{
		FitnessLevel: domain.DifficultyIntermediate,
		Goals:        []string{domain.GoalEndurance},
	}

	prog := domain.WorkoutProgram{
		Goal:       domain.GoalEndurance,
		Difficulty: domain.DifficultyIntermediate,
		Featured:   true,
	}
	if got := calculateProgramScore(prog, profile); got != 110 {
		t.Errorf("expected 110, got %d", got)
	}

	prog = domain.WorkoutProgram{Goal: domain.GoalWeightLoss, Difficulty: domain.DifficultyBeginner}
	if got := calculateProgramScore(prog, profile); got != 50 {
		t.Errorf("expected base 50, got %d", got)
	}
}

func TestRecommendationsFeed(t *testing.T) {
	engine := NewEngine(DefaultRules())

	profile := &domain.AudienceProfile{
		UserID:             "u1",
		FitnessLevel:       domain.DifficultyIntermediate,
		Goals:              []string{domain.GoalStrength},
		MaxWorkoutDuration: 45,
		EngagementScore:    75,
	}

	workouts := []domain.Workout{
		testWorkout("w1", domain.DifficultyIntermediate, 30),
		testWorkout("w2", domain.DifficultyIntermediate, 40),
	}
	meals := []domain.MealPlan{
		{ID: "m1", DietType: "balanced", Macros: domain.Macros{Protein: 140}},
	}
	programs := []domain.WorkoutProgram{
		{ID: "p2", Difficulty: domain.DifficultyIntermediate, Goal: domain.GoalStrength},
	}

	feed := engine.Recommendations(profile, workouts, meals, programs)
	if len(feed) != 4 {
		t.Fatalf("expected 4 feed entries, got %d", len(feed))
	}

	// Sorted descending by positional score.
	for i := 1; i < len(feed); i++ {
		if feed[i].Score > feed[i-1].Score {
			t.Errorf("feed not sorted at %d: %d > %d", i, feed[i].Score, feed[i-1].Score)
		}
	}
	if feed[0].Type != domain.RecommendationWorkout || feed[0].Score != 100 {
		t.Errorf("top entry should be the first workout at 100, got %+v", feed[0])
	}
	for _, rec := range feed {
		if rec.Reason == "" {
			t.Errorf("entry %s has empty reason", rec.ID)
		}
	}
}
