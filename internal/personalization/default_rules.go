package personalization

import "github.com/ishaanB3006/fitness-tracker/internal/domain"

// DefaultRules is the static rule set. Loaded once at process start and
// never mutated, so concurrent reads need no synchronization.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:   "rule-beginner-weightloss",
			Name: "Beginner + Weight Loss → Beginner Bootcamp",
			Conditions: []Condition{
				{Field: FieldFitnessLevel, Operator: OpEquals, Value: StringValue("beginner")},
				{Field: FieldGoals, Operator: OpContains, Value: StringValue(domain.GoalWeightLoss)},
			},
			Action:   Action{Type: ActionRecommendProgram, ProgramID: "p3"},
			Priority: 100,
		},
		{
			ID:   "rule-beginner-general",
			Name: "Beginner → Show Beginner Content",
			Conditions: []Condition{
				{Field: FieldFitnessLevel, Operator: OpEquals, Value: StringValue("beginner")},
			},
			Action:   Action{Type: ActionShowBeginnerContent},
			Priority: 50,
		},
		{
			ID:   "rule-no-equipment",
			Name: "No Equipment → Filter Bodyweight",
			Conditions: []Condition{
				{Field: FieldAvailableEquipment, Operator: OpEquals, Value: ListValue()},
			},
			Action:   Action{Type: ActionFilterByEquipment, Equipment: []string{domain.EquipmentNone}},
			Priority: 90,
		},
		{
			ID:   "rule-time-poor",
			Name: "Time Poor (<20 min) → Quick Workouts",
			Conditions: []Condition{
				{Field: FieldMaxWorkoutDuration, Operator: OpLessThan, Value: NumberValue(20)},
			},
			Action:   Action{Type: ActionFilterByDuration, MaxMinutes: 20},
			Priority: 85,
		},
		{
			ID:   "rule-high-engagement-upgrade",
			Name: "High Completion (>80%) → Upgrade Difficulty",
			Conditions: []Condition{
				{Field: FieldCompletionRate, Operator: OpGreaterThan, Value: NumberValue(80)},
			},
			Action:   Action{Type: ActionUpgradeDifficulty},
			Priority: 75,
		},
		{
			ID:   "rule-low-engagement",
			Name: "Low Engagement → Show Motivation",
			Conditions: []Condition{
				{Field: FieldEngagementScore, Operator: OpLessThan, Value: NumberValue(30)},
			},
			Action:   Action{Type: ActionShowMotivation},
			Priority: 70,
		},
		{
			ID:   "rule-strength-intermediate",
			Name: "Strength Goal + Intermediate+ → 30-Day Strength",
			Conditions: []Condition{
				{Field: FieldGoals, Operator: OpContains, Value: StringValue(domain.GoalStrength)},
				{Field: FieldFitnessLevel, Operator: OpIn, Value: ListValue("intermediate", "advanced")},
			},
			Action:   Action{Type: ActionRecommendProgram, ProgramID: "p2"},
			Priority: 95,
		},
		{
			ID:   "rule-weightloss-intermediate",
			Name: "Weight Loss + Not Beginner → Fat Burner",
			Conditions: []Condition{
				{Field: FieldGoals, Operator: OpContains, Value: StringValue(domain.GoalWeightLoss)},
				{Field: FieldFitnessLevel, Operator: OpIn, Value: ListValue("intermediate", "advanced")},
			},
			Action:   Action{Type: ActionRecommendProgram, ProgramID: "p1"},
			Priority: 95,
		},
	}
}
