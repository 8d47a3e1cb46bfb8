package handler

import (
	"github.com/ishaanB3006/fitness-tracker/internal/domain"
	"github.com/ishaanB3006/fitness-tracker/internal/personalization"
)

type WorkoutsResponse struct {
	UserID   string                    `json:"user_id"`
	Workouts []domain.Workout          `json:"workouts"`
	Metadata domain.RecommendationMeta `json:"metadata"`
}

type MealPlansResponse struct {
	UserID    string                    `json:"user_id"`
	MealPlans []domain.MealPlan         `json:"meal_plans"`
	Metadata  domain.RecommendationMeta `json:"metadata"`
}

type ProgramsResponse struct {
	UserID   string                    `json:"user_id"`
	Programs []domain.WorkoutProgram   `json:"programs"`
	Metadata domain.RecommendationMeta `json:"metadata"`
}

type FeedResponse struct {
	UserID          string                    `json:"user_id"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type ProfileResponse struct {
	Profile      *domain.AudienceProfile       `json:"profile"`
	AudienceTags []personalization.AudienceTag `json:"audience_tags"`
}

// ProfileRequest is the PUT body for profile upserts.
type ProfileRequest struct {
	FitnessLevel        string   `json:"fitness_level"`
	Goals               []string `json:"goals"`
	DietPreference      string   `json:"diet_preference"`
	Allergies           []string `json:"allergies"`
	AvailableEquipment  []string `json:"available_equipment"`
	MaxWorkoutDuration  int      `json:"max_workout_duration"`
	WeeklyWorkoutTarget int      `json:"weekly_workout_target"`
	EngagementScore     int      `json:"engagement_score"`
	CompletionRate      int      `json:"completion_rate"`
}

// DayUpdateRequest is the PATCH body for plan day mutations.
type DayUpdateRequest struct {
	MarkCompleted bool    `json:"mark_completed"`
	ToggleRest    bool    `json:"toggle_rest"`
	Notes         *string `json:"notes"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
