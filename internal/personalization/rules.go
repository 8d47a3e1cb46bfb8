package personalization

import (
	"sort"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

// Field names a profile attribute a condition can test. Unknown fields
// resolve to an absent value, which fails every operator.
type Field string

const (
	FieldFitnessLevel        Field = "fitnessLevel"
	FieldGoals               Field = "goals"
	FieldDietPreference      Field = "dietPreference"
	FieldAllergies           Field = "allergies"
	FieldAvailableEquipment  Field = "availableEquipment"
	FieldMaxWorkoutDuration  Field = "maxWorkoutDuration"
	FieldWeeklyWorkoutTarget Field = "weeklyWorkoutTarget"
	FieldEngagementScore     Field = "engagementScore"
	FieldCompletionRate      Field = "completionRate"
)

type Operator string

const (
	OpEquals      Operator = "equals"
	OpContains    Operator = "contains"
	OpGreaterThan Operator = "greaterThan"
	OpLessThan    Operator = "lessThan"
	OpIn          Operator = "in"
)

type valueKind int

const (
	kindAbsent valueKind = iota
	kindString
	kindNumber
	kindList
)

// Value is a closed variant holding a condition value or a resolved
// profile field: a string, a number, or a list of strings.
type Value struct {
	kind valueKind
	str  string
	num  int
	list []string
}

func StringValue(s string) Value { return Value{kind: kindString, str: s} }

func NumberValue(n int) Value { return Value{kind: kindNumber, num: n} }

func ListValue(items ...string) Value { return Value{kind: kindList, list: items} }

type Condition struct {
	Field    Field
	Operator Operator
	Value    Value
}

type ActionType string

const (
	ActionRecommendProgram    ActionType = "recommend_program"
	ActionRecommendWorkout    ActionType = "recommend_workout"
	ActionRecommendMeal       ActionType = "recommend_meal"
	ActionFilterByDifficulty  ActionType = "filter_by_difficulty"
	ActionFilterByEquipment   ActionType = "filter_by_equipment"
	ActionFilterByDuration    ActionType = "filter_by_duration"
	ActionUpgradeDifficulty   ActionType = "upgrade_difficulty"
	ActionShowBeginnerContent ActionType = "show_beginner_content"
	ActionShowMotivation      ActionType = "show_motivation"
)

// Action is a tagged variant; only the payload fields for its Type are set.
type Action struct {
	Type       ActionType
	ProgramID  string
	WorkoutID  string
	MealPlanID string
	Difficulty domain.Difficulty
	Equipment  []string
	MaxMinutes int
}

type Rule struct {
	ID         string
	Name       string
	Conditions []Condition
	Action     Action
	Priority   int
}

// resolveField looks a field up on the profile through a closed mapping.
// An empty diet preference counts as absent.
func resolveField(p *domain.AudienceProfile, f Field) Value {
	switch f {
	case FieldFitnessLevel:
		return StringValue(string(p.FitnessLevel))
	case FieldGoals:
		return Value{kind: kindList, list: p.Goals}
	case FieldDietPreference:
		if p.DietPreference == "" {
			return Value{}
		}
		return StringValue(p.DietPreference)
	case FieldAllergies:
		return Value{kind: kindList, list: p.Allergies}
	case FieldAvailableEquipment:
		return Value{kind: kindList, list: p.AvailableEquipment}
	case FieldMaxWorkoutDuration:
		return NumberValue(p.MaxWorkoutDuration)
	case FieldWeeklyWorkoutTarget:
		return NumberValue(p.WeeklyWorkoutTarget)
	case FieldEngagementScore:
		return NumberValue(p.EngagementScore)
	case FieldCompletionRate:
		return NumberValue(p.CompletionRate)
	default:
		return Value{}
	}
}

// evaluateCondition never fails loudly: a kind mismatch between the field
// and the condition value simply makes the condition false.
func evaluateCondition(p *domain.AudienceProfile, c Condition) bool {
	field := resolveField(p, c.Field)

	switch c.Operator {
	case OpEquals:
		if field.kind != c.Value.kind {
			return false
		}
		switch field.kind {
		case kindString:
			return field.str == c.Value.str
		case kindNumber:
			return field.num == c.Value.num
		case kindList:
			// Order-sensitive, matching list compare.
			if len(field.list) != len(c.Value.list) {
				return false
			}
			for i := range field.list {
				if field.list[i] != c.Value.list[i] {
					return false
				}
			}
			return true
		default:
			return false
		}

	case OpContains:
		if field.kind != kindList || c.Value.kind != kindString {
			return false
		}
		return containsString(field.list, c.Value.str)

	case OpGreaterThan:
		return field.kind == kindNumber && c.Value.kind == kindNumber &&
			field.num > c.Value.num

	case OpLessThan:
		return field.kind == kindNumber && c.Value.kind == kindNumber &&
			field.num < c.Value.num

	case OpIn:
		if c.Value.kind != kindList || field.kind != kindString {
			return false
		}
		return containsString(c.Value.list, field.str)

	default:
		return false
	}
}

// EvaluateRule reports whether every condition of the rule holds for the
// profile. Evaluation short-circuits on the first failing condition.
func EvaluateRule(rule Rule, p *domain.AudienceProfile) bool {
	for _, c := range rule.Conditions {
		if !evaluateCondition(p, c) {
			return false
		}
	}
	return true
}

// MatchingRules returns the rules that match the profile, ordered by
// descending priority. Equal priorities keep declaration order.
func MatchingRules(rules []Rule, p *domain.AudienceProfile) []Rule {
	var matched []Rule
	for _, rule := range rules {
		if EvaluateRule(rule, p) {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})
	return matched
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
