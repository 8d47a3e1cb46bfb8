package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

// parseUserID pulls the userID URL param; empty is invalid.
func parseUserID(r *http.Request) (string, bool) {
	userID := chi.URLParam(r, "userID")
	return userID, userID != ""
}

// parseLimit validates an optional ?limit= query param in 1..50.
// Returns 0 when absent so the service applies its per-kind default.
func parseLimit(r *http.Request) (int, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(limitStr)
	if err != nil || parsed < 1 || parsed > 50 {
		return 0, false
	}
	return parsed, true
}

func (h *Handler) respondRecommendationError(w http.ResponseWriter, userID string, err error) {
	// Profile not found
	if errors.Is(err, domain.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "profile_not_found",
			fmt.Sprintf("Profile for user %s does not exist", userID))
		return
	}
	// Request timeout
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}

func recommendationMeta(cacheHit bool, count int) domain.RecommendationMeta {
	return domain.RecommendationMeta{
		CacheHit:    cacheHit,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		TotalCount:  count,
	}
}

// GET /users/{userID}/recommendations/workouts
func (h *Handler) GetWorkoutRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
		return
	}

	result, err := h.service.GetWorkoutRecommendations(r.Context(), userID, limit)
	if err != nil {
		h.respondRecommendationError(w, userID, err)
		return
	}

	writeJSON(w, http.StatusOK, WorkoutsResponse{
		UserID:   userID,
		Workouts: result.Workouts,
		Metadata: recommendationMeta(result.CacheHit, len(result.Workouts)),
	})
}

// GET /users/{userID}/recommendations/meal-plans
func (h *Handler) GetMealPlanRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
		return
	}

	result, err := h.service.GetMealPlanRecommendations(r.Context(), userID, limit)
	if err != nil {
		h.respondRecommendationError(w, userID, err)
		return
	}

	writeJSON(w, http.StatusOK, MealPlansResponse{
		UserID:    userID,
		MealPlans: result.MealPlans,
		Metadata:  recommendationMeta(result.CacheHit, len(result.MealPlans)),
	})
}

// GET /users/{userID}/recommendations/programs
func (h *Handler) GetProgramRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
		return
	}

	result, err := h.service.GetProgramRecommendations(r.Context(), userID, limit)
	if err != nil {
		h.respondRecommendationError(w, userID, err)
		return
	}

	writeJSON(w, http.StatusOK, ProgramsResponse{
		UserID:   userID,
		Programs: result.Programs,
		Metadata: recommendationMeta(result.CacheHit, len(result.Programs)),
	})
}

// GET /users/{userID}/recommendations
func (h *Handler) GetRecommendationFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	result, err := h.service.GetRecommendationFeed(r.Context(), userID)
	if err != nil {
		h.respondRecommendationError(w, userID, err)
		return
	}

	writeJSON(w, http.StatusOK, FeedResponse{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Metadata:        recommendationMeta(result.CacheHit, len(result.Recommendations)),
	})
}
