package domain

import "time"

// DateLayout is the wire format for plan dates and week_start parameters.
const DateLayout = "2006-01-02"

type PlannedDay struct {
	Date        string    `json:"date"` // YYYY-MM-DD
	DayOfWeek   int       `json:"day_of_week"`
	Workout     *Workout  `json:"workout,omitempty"`
	MealPlan    *MealPlan `json:"meal_plan,omitempty"`
	IsRestDay   bool      `json:"is_rest_day"`
	IsCompleted bool      `json:"is_completed"`
	Notes       string    `json:"notes,omitempty"`
}

// WeeklyPlan covers exactly 7 consecutive days starting at WeekStart.
// A rest day never carries a workout.
type WeeklyPlan struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	WeekStart string       `json:"week_start"`
	Days      []PlannedDay `json:"days"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// RestDayCount returns the number of rest days in the plan.
func (p *WeeklyPlan) RestDayCount() int {
	count := 0
	for _, d := range p.Days {
		if d.IsRestDay {
			count++
		}
	}
	return count
}
