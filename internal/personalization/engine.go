package personalization

import (
	"fmt"
	"sort"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

const (
	DefaultWorkoutLimit  = 5
	DefaultMealPlanLimit = 3
	DefaultProgramLimit  = 3

	feedWorkoutCount  = 3
	feedProgramCount  = 2
	feedMealPlanCount = 2
)

// Engine ranks catalog items against an audience profile. It holds only
// the static rule set; every call takes its catalog as an argument and
// returns freshly allocated results.
type Engine struct {
	rules []Rule
}

func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

func (e *Engine) MatchingRules(p *domain.AudienceProfile) []Rule {
	return MatchingRules(e.rules, p)
}

// PersonalizedWorkouts applies the filter actions of every matched rule
// as a pipeline over the catalog, then scores, ranks and truncates.
// An empty catalog or a fully filtered one yields an empty result.
func (e *Engine) PersonalizedWorkouts(p *domain.AudienceProfile, catalog []domain.Workout, limit int) []domain.Workout {
	filtered := make([]domain.Workout, len(catalog))
	copy(filtered, catalog)

	for _, rule := range e.MatchingRules(p) {
		switch rule.Action.Type {
		case ActionFilterByDifficulty:
			filtered = filterWorkouts(filtered, func(w domain.Workout) bool {
				return w.Difficulty == rule.Action.Difficulty
			})
		case ActionFilterByEquipment:
			allowed := rule.Action.Equipment
			filtered = filterWorkouts(filtered, func(w domain.Workout) bool {
				return len(w.Equipment) == 0 ||
					allIn(w.Equipment, allowed) ||
					containsString(w.Equipment, domain.EquipmentNone)
			})
		case ActionFilterByDuration:
			maxMinutes := rule.Action.MaxMinutes
			filtered = filterWorkouts(filtered, func(w domain.Workout) bool {
				return w.Duration <= maxMinutes
			})
		case ActionShowBeginnerContent:
			filtered = filterWorkouts(filtered, func(w domain.Workout) bool {
				return w.Difficulty == domain.DifficultyBeginner
			})
		case ActionRecommendProgram, ActionRecommendWorkout, ActionRecommendMeal,
			ActionUpgradeDifficulty, ActionShowMotivation:
			// Not filters; handled elsewhere or surfaced via matched rules.
		}
	}

	scored := make([]scoredWorkout, 0, len(filtered))
	for _, w := range filtered {
		scored = append(scored, scoredWorkout{workout: w, score: calculateWorkoutScore(w, p)})
	}
	// Stable so catalog order breaks score ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]domain.Workout, 0, len(scored))
	for _, s := range scored {
		ranked = append(ranked, s.workout)
	}
	return truncateWorkouts(ranked, limit)
}

type scoredWorkout struct {
	workout domain.Workout
	score   int
}

// calculateWorkoutScore starts at 50 and awards fixed bonuses; the range
// is 50..115 with no normalization.
func calculateWorkoutScore(w domain.Workout, p *domain.AudienceProfile) int {
	score := 50

	if w.Difficulty == p.FitnessLevel {
		score += 20
	}
	if w.Duration <= p.MaxWorkoutDuration {
		score += 15
	}
	if equipmentSatisfied(w.Equipment, p.AvailableEquipment) {
		score += 10
	}
	if p.HasGoal(domain.GoalWeightLoss) && w.Calories > 250 {
		score += 10
	}
	if p.HasGoal(domain.GoalStrength) && len(w.MuscleGroups) > 2 {
		score += 10
	}

	return score
}

// equipmentSatisfied holds when every required piece is available or is
// the "none" sentinel; an empty requirement list passes vacuously.
func equipmentSatisfied(required, available []string) bool {
	for _, eq := range required {
		if eq == domain.EquipmentNone {
			continue
		}
		if !containsString(available, eq) {
			return false
		}
	}
	return true
}

// PersonalizedMealPlans narrows by diet preference when that leaves at
// least one item (the preference is advisory, not exclusionary), applies
// the allergy filter, then scores, ranks and truncates.
func (e *Engine) PersonalizedMealPlans(p *domain.AudienceProfile, catalog []domain.MealPlan, limit int) []domain.MealPlan {
	filtered := make([]domain.MealPlan, len(catalog))
	copy(filtered, catalog)

	if p.DietPreference != "" {
		preferred := filterMealPlans(filtered, func(m domain.MealPlan) bool {
			return m.DietType == p.DietPreference
		})
		if len(preferred) > 0 {
			filtered = preferred
		}
	}

	// A meal survives only if its allergy tags accommodate every
	// allergy in the profile.
	if len(p.Allergies) > 0 {
		filtered = filterMealPlans(filtered, func(m domain.MealPlan) bool {
			return allIn(p.Allergies, m.AllergyTags)
		})
	}

	scored := make([]scoredMealPlan, 0, len(filtered))
	for _, m := range filtered {
		scored = append(scored, scoredMealPlan{meal: m, score: calculateMealScore(m, p)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]domain.MealPlan, 0, len(scored))
	for _, s := range scored {
		ranked = append(ranked, s.meal)
	}
	return truncateMealPlans(ranked, limit)
}

type scoredMealPlan struct {
	meal  domain.MealPlan
	score int
}

func calculateMealScore(m domain.MealPlan, p *domain.AudienceProfile) int {
	score := 50

	if p.DietPreference != "" && m.DietType == p.DietPreference {
		score += 30
	}
	if p.HasGoal(domain.GoalWeightLoss) && m.TotalCalories < 2000 {
		score += 15
	}
	if p.HasGoal(domain.GoalMuscleGain) && m.Macros.Protein > 150 {
		score += 15
	}
	if p.HasGoal(domain.GoalStrength) && m.Macros.Protein > 120 {
		score += 10
	}

	return score
}

// PersonalizedPrograms puts rule-recommended programs first, in matched
// priority order and without de-duplication; exact-difficulty programs
// fill the remainder. With no recommending rules it falls back to an
// adjacent-difficulty filter plus scoring.
func (e *Engine) PersonalizedPrograms(p *domain.AudienceProfile, catalog []domain.WorkoutProgram, limit int) []domain.WorkoutProgram {
	var recommendedIDs []string
	for _, rule := range e.MatchingRules(p) {
		if rule.Action.Type == ActionRecommendProgram {
			recommendedIDs = append(recommendedIDs, rule.Action.ProgramID)
		}
	}

	if len(recommendedIDs) > 0 {
		var result []domain.WorkoutProgram
		for _, id := range recommendedIDs {
			for _, prog := range catalog {
				if prog.ID == id {
					result = append(result, prog)
				}
			}
		}
		for _, prog := range catalog {
			if prog.Difficulty == p.FitnessLevel && !containsString(recommendedIDs, prog.ID) {
				result = append(result, prog)
			}
		}
		return truncatePrograms(result, limit)
	}

	userOrd := p.FitnessLevel.Ordinal()
	filtered := filterPrograms(catalog, func(prog domain.WorkoutProgram) bool {
		diff := prog.Difficulty.Ordinal() - userOrd
		return diff >= -1 && diff <= 1
	})

	scored := make([]scoredProgram, 0, len(filtered))
	for _, prog := range filtered {
		scored = append(scored, scoredProgram{program: prog, score: calculateProgramScore(prog, p)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]domain.WorkoutProgram, 0, len(scored))
	for _, s := range scored {
		ranked = append(ranked, s.program)
	}
	return truncatePrograms(ranked, limit)
}

type scoredProgram struct {
	program domain.WorkoutProgram
	score   int
}

func calculateProgramScore(prog domain.WorkoutProgram, p *domain.AudienceProfile) int {
	score := 50

	if p.HasGoal(prog.Goal) {
		score += 30
	}
	if prog.Difficulty == p.FitnessLevel {
		score += 20
	}
	if prog.Featured {
		score += 10
	}

	return score
}

// Recommendations merges the top workouts, programs and meal plans into
// one feed with positional scores and human-readable reasons.
func (e *Engine) Recommendations(p *domain.AudienceProfile, workouts []domain.Workout, meals []domain.MealPlan, programs []domain.WorkoutProgram) []domain.Recommendation {
	var recs []domain.Recommendation

	primaryGoal := "fitness"
	if len(p.Goals) > 0 {
		primaryGoal = p.Goals[0]
	}

	for i, w := range e.PersonalizedWorkouts(p, workouts, feedWorkoutCount) {
		recs = append(recs, domain.Recommendation{
			Type:   domain.RecommendationWorkout,
			ID:     w.ID,
			Score:  100 - i*10,
			Reason: fmt.Sprintf("Matches your %s level and %s goal", p.FitnessLevel, primaryGoal),
		})
	}

	for i, prog := range e.PersonalizedPrograms(p, programs, feedProgramCount) {
		recs = append(recs, domain.Recommendation{
			Type:   domain.RecommendationProgram,
			ID:     prog.ID,
			Score:  95 - i*10,
			Reason: fmt.Sprintf("Designed for %s at %s level", prog.Goal, prog.Difficulty),
		})
	}

	for i, m := range e.PersonalizedMealPlans(p, meals, feedMealPlanCount) {
		recs = append(recs, domain.Recommendation{
			Type:   domain.RecommendationMealPlan,
			ID:     m.ID,
			Score:  90 - i*10,
			Reason: fmt.Sprintf("%s diet with %dg protein", m.DietType, m.Macros.Protein),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	return recs
}

func allIn(items, allowed []string) bool {
	for _, item := range items {
		if !containsString(allowed, item) {
			return false
		}
	}
	return true
}

func filterWorkouts(items []domain.Workout, keep func(domain.Workout) bool) []domain.Workout {
	out := items[:0:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func filterMealPlans(items []domain.MealPlan, keep func(domain.MealPlan) bool) []domain.MealPlan {
	out := items[:0:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func filterPrograms(items []domain.WorkoutProgram, keep func(domain.WorkoutProgram) bool) []domain.WorkoutProgram {
	out := items[:0:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func truncateWorkouts(items []domain.Workout, limit int) []domain.Workout {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func truncateMealPlans(items []domain.MealPlan, limit int) []domain.MealPlan {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func truncatePrograms(items []domain.WorkoutProgram, limit int) []domain.WorkoutProgram {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
