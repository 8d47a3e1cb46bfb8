package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
	"github.com/ishaanB3006/fitness-tracker/internal/personalization"
)

// GET /users/{userID}/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile_not_found", "Profile does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Profile:      profile,
		AudienceTags: personalization.ComputeAudienceTags(profile),
	})
}

// PUT /users/{userID}/profile
func (h *Handler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON")
		return
	}

	profile, ok := profileFromRequest(userID, req)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid profile fields")
		return
	}

	if err := h.service.UpsertProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		Profile:      profile,
		AudienceTags: personalization.ComputeAudienceTags(profile),
	})
}

// profileFromRequest validates the request into a domain profile.
func profileFromRequest(userID string, req ProfileRequest) (*domain.AudienceProfile, bool) {
	level := domain.Difficulty(req.FitnessLevel)
	if level.Ordinal() < 0 {
		return nil, false
	}
	if req.MaxWorkoutDuration <= 0 {
		return nil, false
	}
	if req.WeeklyWorkoutTarget < 0 || req.WeeklyWorkoutTarget > 7 {
		return nil, false
	}
	if req.EngagementScore < 0 || req.EngagementScore > 100 ||
		req.CompletionRate < 0 || req.CompletionRate > 100 {
		return nil, false
	}

	return &domain.AudienceProfile{
		UserID:              userID,
		FitnessLevel:        level,
		Goals:               req.Goals,
		DietPreference:      req.DietPreference,
		Allergies:           req.Allergies,
		AvailableEquipment:  req.AvailableEquipment,
		MaxWorkoutDuration:  req.MaxWorkoutDuration,
		WeeklyWorkoutTarget: req.WeeklyWorkoutTarget,
		EngagementScore:     req.EngagementScore,
		CompletionRate:      req.CompletionRate,
	}, true
}
