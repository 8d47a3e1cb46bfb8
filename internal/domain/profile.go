package domain

import "time"

// Goal tags used by profiles, programs and the rule set.
const (
	GoalWeightLoss     = "weight-loss"
	GoalMuscleGain     = "muscle-gain"
	GoalStrength       = "strength"
	GoalEndurance      = "endurance"
	GoalFlexibility    = "flexibility"
	GoalGeneralFitness = "general-fitness"
)

// AudienceProfile describes one user's fitness attributes. It is the input
// to every personalization operation and is treated as immutable for the
// duration of a call.
type AudienceProfile struct {
	UserID              string     `json:"user_id"`
	FitnessLevel        Difficulty `json:"fitness_level"`
	Goals               []string   `json:"goals"`
	DietPreference      string     `json:"diet_preference,omitempty"` // empty = no preference
	Allergies           []string   `json:"allergies"`
	AvailableEquipment  []string   `json:"available_equipment"`
	MaxWorkoutDuration  int        `json:"max_workout_duration"` // minutes
	WeeklyWorkoutTarget int        `json:"weekly_workout_target"`
	EngagementScore     int        `json:"engagement_score"` // 0-100
	CompletionRate      int        `json:"completion_rate"`  // 0-100
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// HasGoal reports whether the profile includes the given goal tag.
func (p *AudienceProfile) HasGoal(goal string) bool {
	for _, g := range p.Goals {
		if g == goal {
			return true
		}
	}
	return false
}
