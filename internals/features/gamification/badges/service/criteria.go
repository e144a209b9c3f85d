package service

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	badgeModel "belajarku_backend/internals/features/gamification/badges/model"
)

// Event yang bisa memicu evaluasi badge.
const (
	EventCourseComplete    = "COURSE_COMPLETE"
	EventChallengeComplete = "CHALLENGE_COMPLETE"
	EventStreak            = "STREAK"
	EventXPEarned          = "XP_EARNED"
)

// BadgeEvent adalah deskriptor kejadian yang masuk ke evaluator.
// TargetID hanya terisi untuk COURSE_COMPLETE (course yang selesai).
type BadgeEvent struct {
	Type     string
	TargetID uuid.UUID
}

// Criterion adalah varian bertipe dari kolom criteria_type +
// criteria_value. Evaluasi lewat type switch, bukan perbandingan string,
// supaya tipe kriteria yang tidak dikenal jadi error parse yang terlihat
// dan bukan diam-diam tidak pernah terpenuhi.
type Criterion interface {
	isCriterion()
}

type XPMilestone struct {
	Threshold int
}

type CourseCompletion struct {
	CourseID uuid.UUID
}

type ChallengeCount struct {
	Threshold int
}

// Manual tidak pernah terpenuhi otomatis; pemberian lewat aksi admin.
type Manual struct{}

func (XPMilestone) isCriterion()      {}
func (CourseCompletion) isCriterion() {}
func (ChallengeCount) isCriterion()   {}
func (Manual) isCriterion()           {}

// ParseCriterion mengubah baris badge menjadi kriteria bertipe.
func ParseCriterion(b badgeModel.BadgeModel) (Criterion, error) {
	switch b.BadgeCriteriaType {
	case badgeModel.CriteriaXPMilestone:
		n, err := strconv.Atoi(b.BadgeCriteriaValue)
		if err != nil {
			return nil, fmt.Errorf("badge %s: threshold XP tidak valid: %q", b.BadgeID, b.BadgeCriteriaValue)
		}
		return XPMilestone{Threshold: n}, nil
	case badgeModel.CriteriaCourseCompletion:
		id, err := uuid.Parse(b.BadgeCriteriaValue)
		if err != nil {
			return nil, fmt.Errorf("badge %s: course id tidak valid: %q", b.BadgeID, b.BadgeCriteriaValue)
		}
		return CourseCompletion{CourseID: id}, nil
	case badgeModel.CriteriaChallengeCount:
		n, err := strconv.Atoi(b.BadgeCriteriaValue)
		if err != nil {
			return nil, fmt.Errorf("badge %s: threshold challenge tidak valid: %q", b.BadgeID, b.BadgeCriteriaValue)
		}
		return ChallengeCount{Threshold: n}, nil
	case badgeModel.CriteriaManual:
		return Manual{}, nil
	default:
		return nil, fmt.Errorf("badge %s: criteria_type tidak dikenal: %q", b.BadgeID, b.BadgeCriteriaType)
	}
}

// Snapshot adalah keadaan user saat evaluasi berjalan.
type Snapshot struct {
	TotalXP          int
	PassedChallenges int64
	Event            BadgeEvent
}

// Satisfied memutuskan apakah kriteria terpenuhi pada snapshot ini.
func Satisfied(c Criterion, snap Snapshot) bool {
	switch crit := c.(type) {
	case XPMilestone:
		return snap.TotalXP >= crit.Threshold
	case CourseCompletion:
		return snap.Event.Type == EventCourseComplete && snap.Event.TargetID == crit.CourseID
	case ChallengeCount:
		return snap.PassedChallenges >= int64(crit.Threshold)
	case Manual:
		return false
	default:
		return false
	}
}

// candidateCriteriaTypes memetakan tipe event ke tipe kriteria yang mungkin
// baru terpenuhi. XP_MILESTONE selalu ikut dievaluasi karena hampir semua
// event menambah XP.
func candidateCriteriaTypes(eventType string) []string {
	types := []string{badgeModel.CriteriaXPMilestone}
	switch eventType {
	case EventCourseComplete:
		types = append(types, badgeModel.CriteriaCourseCompletion)
	case EventChallengeComplete:
		types = append(types, badgeModel.CriteriaChallengeCount)
	}
	return types
}
