package personalization

import "github.com/ishaanB3006/fitness-tracker/internal/domain"

type AudienceTag string

const (
	TagBeginner       AudienceTag = "beginner"
	TagIntermediate   AudienceTag = "intermediate"
	TagAdvanced       AudienceTag = "advanced"
	TagWeightLoss     AudienceTag = "weight-loss"
	TagStrength       AudienceTag = "strength"
	TagEndurance      AudienceTag = "endurance"
	TagFlexibility    AudienceTag = "flexibility"
	TagTimePoor       AudienceTag = "time-poor"
	TagNoEquipment    AudienceTag = "no-equipment"
	TagHighEngagement AudienceTag = "high-engagement"
	TagLowEngagement  AudienceTag = "low-engagement"
)

// ComputeAudienceTags derives descriptive tags from a profile. Strength
// and muscle-gain goals collapse into the one strength tag.
func ComputeAudienceTags(p *domain.AudienceProfile) []AudienceTag {
	var tags []AudienceTag

	switch p.FitnessLevel {
	case domain.DifficultyBeginner:
		tags = append(tags, TagBeginner)
	case domain.DifficultyIntermediate:
		tags = append(tags, TagIntermediate)
	case domain.DifficultyAdvanced:
		tags = append(tags, TagAdvanced)
	}

	if p.HasGoal(domain.GoalWeightLoss) {
		tags = append(tags, TagWeightLoss)
	}
	if p.HasGoal(domain.GoalStrength) || p.HasGoal(domain.GoalMuscleGain) {
		tags = append(tags, TagStrength)
	}
	if p.HasGoal(domain.GoalEndurance) {
		tags = append(tags, TagEndurance)
	}
	if p.HasGoal(domain.GoalFlexibility) {
		tags = append(tags, TagFlexibility)
	}

	if p.MaxWorkoutDuration < 20 {
		tags = append(tags, TagTimePoor)
	}

	if len(p.AvailableEquipment) == 0 ||
		(len(p.AvailableEquipment) == 1 && p.AvailableEquipment[0] == domain.EquipmentNone) {
		tags = append(tags, TagNoEquipment)
	}

	if p.EngagementScore >= 70 {
		tags = append(tags, TagHighEngagement)
	}
	if p.EngagementScore < 30 {
		tags = append(tags, TagLowEngagement)
	}

	return tags
}
