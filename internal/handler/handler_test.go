package handler

import (
	"net/http/httptest"
	"testing"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		url  string
		want int
		ok   bool
	}{
		{"/recs", 0, true}, // absent: service default applies
		{"/recs?limit=10", 10, true},
		{"/recs?limit=1", 1, true},
		{"/recs?limit=50", 50, true},
		{"/recs?limit=0", 0, false},
		{"/recs?limit=51", 0, false},
		{"/recs?limit=-2", 0, false},
		{"/recs?limit=abc", 0, false},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		got, ok := parseLimit(r)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: got (%d,%v), want (%d,%v)", tc.url, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseWeekStart(t *testing.T) {
	r := httptest.NewRequest("GET", "/plan?week_start=2025-03-03", nil)
	weekStart, ok := parseWeekStart(r)
	if !ok {
		t.Fatal("expected valid week_start")
	}
	if weekStart.Format("2006-01-02") != "2025-03-03" {
		t.Errorf("unexpected date %v", weekStart)
	}

	for _, url := range []string{"/plan", "/plan?week_start=03-03-2025", "/plan?week_start=nope"} {
		r := httptest.NewRequest("GET", url, nil)
		if _, ok := parseWeekStart(r); ok {
			t.Errorf("%s: expected invalid week_start", url)
		}
	}
}

func TestProfileFromRequest(t *testing.T) {
	valid := ProfileRequest{
		FitnessLevel:        "intermediate",
		Goals:               []string{"strength"},
		MaxWorkoutDuration:  45,
		WeeklyWorkoutTarget: 4,
		EngagementScore:     70,
		CompletionRate:      85,
	}

	profile, ok := profileFromRequest("u1", valid)
	if !ok {
		t.Fatal("expected valid profile")
	}
	if profile.UserID != "u1" || string(profile.FitnessLevel) != "intermediate" {
		t.Errorf("unexpected profile %+v", profile)
	}

	cases := []struct {
		name   string
		mutate func(*ProfileRequest)
	}{
		{"unknown fitness level", func(r *ProfileRequest) { r.FitnessLevel = "elite" }},
		{"zero duration", func(r *ProfileRequest) { r.MaxWorkoutDuration = 0 }},
		{"target above 7", func(r *ProfileRequest) { r.WeeklyWorkoutTarget = 8 }},
		{"negative target", func(r *ProfileRequest) { r.WeeklyWorkoutTarget = -1 }},
		{"engagement above 100", func(r *ProfileRequest) { r.EngagementScore = 101 }},
		{"negative completion", func(r *ProfileRequest) { r.CompletionRate = -1 }},
	}
	for _, tc := range cases {
		req := valid
		tc.mutate(&req)
		if _, ok := profileFromRequest("u1", req); ok {
			t.Errorf("%s: expected rejection", tc.name)
		}
	}
}
