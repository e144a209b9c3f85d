package service

import "math"

// LevelDivisor adalah konstanta K pada kurva level:
// level = floor(sqrt(xp/K)) + 1. Dengan K=100, level 2 tercapai di 100 XP,
// level 3 di 400 XP, dst.
const LevelDivisor = 100

// LevelProgress menggambarkan posisi user di dalam level berjalan.
type LevelProgress struct {
	Level      int     `json:"level"`
	CurrentXP  int     `json:"current_xp"`
	LevelFloor int     `json:"level_floor"`
	NextLevel  int     `json:"next_level_xp"`
	Percent    float64 `json:"percent"`
}

// LevelForXP menghitung level dari XP kumulatif. XP negatif dianggap 0.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Sqrt(float64(xp)/float64(LevelDivisor))) + 1
}

// ProgressForXP menghitung batas bawah/atas XP level berjalan dan persentase
// yang sudah ditempuh di antaranya, di-clamp ke [0,100].
func ProgressForXP(xp int) LevelProgress {
	if xp < 0 {
		xp = 0
	}
	level := LevelForXP(xp)
	floor := (level - 1) * (level - 1) * LevelDivisor
	ceil := level * level * LevelDivisor

	percent := 0.0
	if ceil > floor {
		percent = float64(xp-floor) / float64(ceil-floor) * 100
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return LevelProgress{
		Level:      level,
		CurrentXP:  xp,
		LevelFloor: floor,
		NextLevel:  ceil,
		Percent:    percent,
	}
}
