package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrPlanNotFound    = errors.New("weekly plan not found")
)
