package domain

// Recommendation is one entry in the aggregate recommendation feed.
// Scores are positional and only comparable within one call.
type Recommendation struct {
	Type   string `json:"type"` // workout | program | mealPlan
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

const (
	RecommendationWorkout  = "workout"
	RecommendationProgram  = "program"
	RecommendationMealPlan = "mealPlan"
)

type WorkoutRecommendations struct {
	Workouts []Workout
	CacheHit bool
}

type MealPlanRecommendations struct {
	MealPlans []MealPlan
	CacheHit  bool
}

type ProgramRecommendations struct {
	Programs []WorkoutProgram
	CacheHit bool
}

type RecommendationFeed struct {
	Recommendations []Recommendation
	CacheHit        bool
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchUserResult struct {
	UserID          string           `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Status          BatchStatus      `json:"status"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalUsers int               `json:"total_users"`
	Results    []BatchUserResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}
