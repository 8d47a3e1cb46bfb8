package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
	"github.com/ishaanB3006/fitness-tracker/internal/service"
)

// parseWeekStart validates the required ?week_start=YYYY-MM-DD param.
func parseWeekStart(r *http.Request) (time.Time, bool) {
	weekStartStr := r.URL.Query().Get("week_start")
	if weekStartStr == "" {
		return time.Time{}, false
	}
	weekStart, err := time.Parse(domain.DateLayout, weekStartStr)
	if err != nil {
		return time.Time{}, false
	}
	return weekStart, true
}

// POST /users/{userID}/plan
func (h *Handler) GenerateWeeklyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}
	weekStart, ok := parseWeekStart(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid week_start parameter, expected YYYY-MM-DD")
		return
	}

	plan, err := h.service.GenerateWeeklyPlan(r.Context(), userID, weekStart)
	if err != nil {
		h.respondRecommendationError(w, userID, err)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

// GET /users/{userID}/plan
func (h *Handler) GetWeeklyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}
	weekStart, ok := parseWeekStart(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid week_start parameter, expected YYYY-MM-DD")
		return
	}

	plan, err := h.service.GetWeeklyPlan(r.Context(), userID, weekStart)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, "plan_not_found", "No plan stored for that week")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// PATCH /users/{userID}/plan/days/{day}
func (h *Handler) UpdatePlanDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}
	weekStart, ok := parseWeekStart(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid week_start parameter, expected YYYY-MM-DD")
		return
	}

	dayStr := chi.URLParam(r, "day")
	dayIndex, err := strconv.Atoi(dayStr)
	if err != nil || dayIndex < 0 || dayIndex > 6 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid day parameter, expected 0-6")
		return
	}

	var req DayUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON")
		return
	}

	plan, err := h.service.UpdatePlanDay(r.Context(), userID, weekStart, dayIndex, service.DayUpdate{
		MarkCompleted: req.MarkCompleted,
		ToggleRest:    req.ToggleRest,
		Notes:         req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, "plan_not_found", "No plan stored for that week")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
