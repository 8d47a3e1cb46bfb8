package cache

import "testing"

func TestBuildKey(t *testing.T) {
	got := buildKey("u42", KindWorkouts, 10)
	want := "rec:user:u42:workouts:limit:10"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	// Kind keeps keys for different recommendation types apart.
	if buildKey("u42", KindWorkouts, 10) == buildKey("u42", KindPrograms, 10) {
		t.Error("keys for different kinds must differ")
	}
	if buildKey("u42", KindFeed, 0) == buildKey("u7", KindFeed, 0) {
		t.Error("keys for different users must differ")
	}
}
