package service

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{name: "zero xp is level 1", xp: 0, want: 1},
		{name: "just below first threshold", xp: 99, want: 1},
		{name: "first threshold", xp: 100, want: 2},
		{name: "mid level 2", xp: 250, want: 2},
		{name: "second threshold", xp: 400, want: 3},
		{name: "third threshold", xp: 900, want: 4},
		{name: "negative clamps to level 1", xp: -50, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelForXP(tt.xp); got != tt.want {
				t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
			}
		})
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 5000; xp += 7 {
		level := LevelForXP(xp)
		if level < 1 {
			t.Fatalf("LevelForXP(%d) = %d, level harus >= 1", xp, level)
		}
		if level < prev {
			t.Fatalf("LevelForXP turun di xp=%d: %d -> %d", xp, prev, level)
		}
		prev = level
	}
}

func TestProgressForXP(t *testing.T) {
	tests := []struct {
		name        string
		xp          int
		wantLevel   int
		wantFloor   int
		wantCeil    int
		wantPercent float64
	}{
		{name: "zero", xp: 0, wantLevel: 1, wantFloor: 0, wantCeil: 100, wantPercent: 0},
		{name: "half of level 1", xp: 50, wantLevel: 1, wantFloor: 0, wantCeil: 100, wantPercent: 50},
		{name: "start of level 2", xp: 100, wantLevel: 2, wantFloor: 100, wantCeil: 400, wantPercent: 0},
		{name: "mid level 2", xp: 250, wantLevel: 2, wantFloor: 100, wantCeil: 400, wantPercent: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressForXP(tt.xp)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.LevelFloor != tt.wantFloor {
				t.Errorf("LevelFloor = %d, want %d", got.LevelFloor, tt.wantFloor)
			}
			if got.NextLevel != tt.wantCeil {
				t.Errorf("NextLevel = %d, want %d", got.NextLevel, tt.wantCeil)
			}
			if got.Percent != tt.wantPercent {
				t.Errorf("Percent = %v, want %v", got.Percent, tt.wantPercent)
			}
		})
	}
}

func TestProgressForXPClamped(t *testing.T) {
	for xp := 0; xp <= 10000; xp += 13 {
		p := ProgressForXP(xp)
		if p.Percent < 0 || p.Percent > 100 {
			t.Fatalf("Percent di luar [0,100] pada xp=%d: %v", xp, p.Percent)
		}
		if xp < p.LevelFloor || xp >= p.NextLevel && p.Percent != 100 {
			t.Fatalf("xp=%d di luar rentang level [%d,%d)", xp, p.LevelFloor, p.NextLevel)
		}
	}
}
