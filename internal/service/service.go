package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ishaanB3006/fitness-tracker/internal/cache"
	"github.com/ishaanB3006/fitness-tracker/internal/domain"
	"github.com/ishaanB3006/fitness-tracker/internal/personalization"
	"github.com/ishaanB3006/fitness-tracker/internal/repository"
)

const (
	defaultWorkoutLimit  = personalization.DefaultWorkoutLimit
	defaultMealPlanLimit = personalization.DefaultMealPlanLimit
	defaultProgramLimit  = personalization.DefaultProgramLimit
	maxLimit             = 50

	batchConcurrency = 10
)

type Service struct {
	repo   *repository.Repository
	cache  *cache.Cache
	engine *personalization.Engine
}

func NewService(repo *repository.Repository, cache *cache.Cache, engine *personalization.Engine) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		engine: engine,
	}
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.AudienceProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpsertProfile saves the profile and drops the user's cached
// recommendations so the next request re-ranks.
func (s *Service) UpsertProfile(ctx context.Context, p *domain.AudienceProfile) error {
	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return err
	}
	if err := s.cache.ClearUserCache(ctx, p.UserID); err != nil {
		log.Printf("[service] cache invalidation error for user %s: %v", p.UserID, err)
	}
	return nil
}

func (s *Service) GetWorkoutRecommendations(ctx context.Context, userID string, limit int) (*domain.WorkoutRecommendations, error) {
	limit = clampLimit(limit, defaultWorkoutLimit)

	cached, found, err := s.cache.GetWorkouts(ctx, userID, limit)
	if err != nil {
		log.Printf("[service] cache get error for user %s: %v", userID, err)
	}
	if found {
		return &domain.WorkoutRecommendations{Workouts: cached, CacheHit: true}, nil
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch workout catalog: %w", err)
	}

	recs := s.engine.PersonalizedWorkouts(profile, catalog, limit)

	if cacheErr := s.cache.SetWorkouts(ctx, userID, limit, recs); cacheErr != nil {
		log.Printf("[service] cache set error for user %s: %v", userID, cacheErr)
	}

	return &domain.WorkoutRecommendations{Workouts: recs, CacheHit: false}, nil
}

func (s *Service) GetMealPlanRecommendations(ctx context.Context, userID string, limit int) (*domain.MealPlanRecommendations, error) {
	limit = clampLimit(limit, defaultMealPlanLimit)

	cached, found, err := s.cache.GetMealPlans(ctx, userID, limit)
	if err != nil {
		log.Printf("[service] cache get error for user %s: %v", userID, err)
	}
	if found {
		return &domain.MealPlanRecommendations{MealPlans: cached, CacheHit: true}, nil
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.repo.ListMealPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch meal plan catalog: %w", err)
	}

	recs := s.engine.PersonalizedMealPlans(profile, catalog, limit)

	if cacheErr := s.cache.SetMealPlans(ctx, userID, limit, recs); cacheErr != nil {
		log.Printf("[service] cache set error for user %s: %v", userID, cacheErr)
	}

	return &domain.MealPlanRecommendations{MealPlans: recs, CacheHit: false}, nil
}

func (s *Service) GetProgramRecommendations(ctx context.Context, userID string, limit int) (*domain.ProgramRecommendations, error) {
	limit = clampLimit(limit, defaultProgramLimit)

	cached, found, err := s.cache.GetPrograms(ctx, userID, limit)
	if err != nil {
		log.Printf("[service] cache get error for user %s: %v", userID, err)
	}
	if found {
		return &domain.ProgramRecommendations{Programs: cached, CacheHit: true}, nil
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch program catalog: %w", err)
	}

	recs := s.engine.PersonalizedPrograms(profile, catalog, limit)

	if cacheErr := s.cache.SetPrograms(ctx, userID, limit, recs); cacheErr != nil {
		log.Printf("[service] cache set error for user %s: %v", userID, cacheErr)
	}

	return &domain.ProgramRecommendations{Programs: recs, CacheHit: false}, nil
}

// GetRecommendationFeed merges top workouts, programs and meal plans
// into one ranked feed.
func (s *Service) GetRecommendationFeed(ctx context.Context, userID string) (*domain.RecommendationFeed, error) {
	cached, found, err := s.cache.GetFeed(ctx, userID)
	if err != nil {
		log.Printf("[service] cache get error for user %s: %v", userID, err)
	}
	if found {
		return &domain.RecommendationFeed{Recommendations: cached, CacheHit: true}, nil
	}

	profile, workouts, meals, programs, err := s.loadProfileAndCatalogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs := s.engine.Recommendations(profile, workouts, meals, programs)

	if cacheErr := s.cache.SetFeed(ctx, userID, recs); cacheErr != nil {
		log.Printf("[service] cache set error for user %s: %v", userID, cacheErr)
	}

	return &domain.RecommendationFeed{Recommendations: recs, CacheHit: false}, nil
}

// GenerateWeeklyPlan builds a plan for the week and replaces any stored
// plan for the same user and week.
func (s *Service) GenerateWeeklyPlan(ctx context.Context, userID string, weekStart time.Time) (*domain.WeeklyPlan, error) {
	profile, workouts, meals, _, err := s.loadProfileAndCatalogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan := s.engine.GenerateWeeklyPlan(profile, workouts, meals, weekStart)
	if err := s.repo.SaveWeeklyPlan(ctx, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *Service) GetWeeklyPlan(ctx context.Context, userID string, weekStart time.Time) (*domain.WeeklyPlan, error) {
	return s.repo.GetWeeklyPlan(ctx, userID, weekStart.Format(domain.DateLayout))
}

// DayUpdate carries the day-level mutations the planner supports.
type DayUpdate struct {
	MarkCompleted bool
	ToggleRest    bool
	Notes         *string
}

// UpdatePlanDay applies a mutation to one day of the stored plan. A day
// turned into a rest day loses its workout.
func (s *Service) UpdatePlanDay(ctx context.Context, userID string, weekStart time.Time, dayIndex int, update DayUpdate) (*domain.WeeklyPlan, error) {
	plan, err := s.repo.GetWeeklyPlan(ctx, userID, weekStart.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(plan.Days) {
		return nil, fmt.Errorf("day index %d out of range: %w", dayIndex, domain.ErrPlanNotFound)
	}

	day := &plan.Days[dayIndex]
	if update.MarkCompleted {
		day.IsCompleted = true
	}
	if update.ToggleRest {
		day.IsRestDay = !day.IsRestDay
		if day.IsRestDay {
			day.Workout = nil
		}
	}
	if update.Notes != nil {
		day.Notes = *update.Notes
	}
	plan.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateWeeklyPlanDays(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetBatchRecommendations builds the feed for a page of users with a
// bounded worker pool.
func (s *Service) GetBatchRecommendations(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	userIDs, err := s.repo.ListUserIDsPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch user ids: %w", err)
	}

	totalUsers, err := s.repo.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}

	results := make([]domain.BatchUserResult, len(userIDs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, userID := range userIDs {
		wg.Add(1)
		go func(idx int, uid string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processUserForBatch(ctx, uid)
		}(i, userID)
	}
	wg.Wait()

	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	elapsed := time.Since(start).Milliseconds()

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalUsers: totalUsers,
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: elapsed,
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Builds the feed for a single user, capturing errors.
func (s *Service) processUserForBatch(ctx context.Context, userID string) domain.BatchUserResult {
	feed, err := s.GetRecommendationFeed(ctx, userID)
	if err != nil {
		log.Printf("[service] batch: failed for user %s: %v", userID, err)
		code, msg := categorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchUserResult{
		UserID:          userID,
		Recommendations: feed.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

func (s *Service) loadProfileAndCatalogs(ctx context.Context, userID string) (*domain.AudienceProfile, []domain.Workout, []domain.MealPlan, []domain.WorkoutProgram, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil, nil, nil, err
		}
		return nil, nil, nil, nil, fmt.Errorf("fetch profile: %w", err)
	}

	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("fetch workout catalog: %w", err)
	}
	meals, err := s.repo.ListMealPlans(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("fetch meal plan catalog: %w", err)
	}
	programs, err := s.repo.ListPrograms(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("fetch program catalog: %w", err)
	}

	return profile, workouts, meals, programs, nil
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrProfileNotFound) {
		return "profile_not_found", "profile not found"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "request_timeout", "request timed out"
	}
	return "internal_error", "an unexpected error occurred"
}
