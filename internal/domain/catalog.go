package domain

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Ordinal maps difficulty levels onto 0..2 for adjacency checks.
// Unknown values map to -1 so they never sit adjacent to anything.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return -1
	}
}

// Equipment sentinel meaning "no equipment needed".
const EquipmentNone = "none"

type Workout struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	MuscleGroups []string   `json:"muscle_groups"`
	Difficulty   Difficulty `json:"difficulty"`
	Duration     int        `json:"duration"` // minutes
	Equipment    []string   `json:"equipment"`
	Calories     int        `json:"calories"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Macros struct {
	Protein int `json:"protein"` // grams
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

type MealPlan struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DietType      string    `json:"diet_type"`
	Macros        Macros    `json:"macros"`
	AllergyTags   []string  `json:"allergy_tags"`
	TotalCalories int       `json:"total_calories"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WorkoutProgram struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Goal        string     `json:"goal"`
	Duration    string     `json:"duration"` // e.g. "30-day"
	Difficulty  Difficulty `json:"difficulty"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
