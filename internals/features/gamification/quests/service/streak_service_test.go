package service

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)
	earlierToday := time.Date(2026, 3, 10, 1, 5, 0, 0, time.Local)

	tests := []struct {
		name    string
		last    *time.Time
		current int
		want    int
	}{
		{name: "belum pernah login", last: nil, current: 0, want: 1},
		{name: "login kemarin lanjut streak", last: &yesterday, current: 4, want: 5},
		{name: "login hari ini tidak berubah", last: &earlierToday, current: 4, want: 4},
		{name: "gap dua hari reset", last: &twoDaysAgo, current: 9, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.last, tt.current, now); got != tt.want {
				t.Errorf("NextStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextStreakCrossMonth(t *testing.T) {
	// 1 Maret setelah login 28/29 Feb harus tetap dihitung berurutan
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)
	lastFeb := time.Date(2026, 2, 28, 22, 0, 0, 0, time.Local)

	if got := NextStreak(&lastFeb, 2, now); got != 3 {
		t.Errorf("NextStreak lintas bulan = %d, want 3", got)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, 7, 4, 23, 59, 59, 123, time.Local)
	got := Midnight(in)
	want := time.Date(2026, 7, 4, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Midnight = %v, want %v", got, want)
	}
}
