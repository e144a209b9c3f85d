package service

import (
	"testing"

	"github.com/google/uuid"

	badgeModel "belajarku_backend/internals/features/gamification/badges/model"
)

func TestParseCriterion(t *testing.T) {
	courseID := uuid.New()

	tests := []struct {
		name    string
		badge   badgeModel.BadgeModel
		want    Criterion
		wantErr bool
	}{
		{
			name: "xp milestone",
			badge: badgeModel.BadgeModel{
				BadgeCriteriaType:  badgeModel.CriteriaXPMilestone,
				BadgeCriteriaValue: "100",
			},
			want: XPMilestone{Threshold: 100},
		},
		{
			name: "course completion",
			badge: badgeModel.BadgeModel{
				BadgeCriteriaType:  badgeModel.CriteriaCourseCompletion,
				BadgeCriteriaValue: courseID.String(),
			},
			want: CourseCompletion{CourseID: courseID},
		},
		{
			name: "challenge count",
			badge: badgeModel.BadgeModel{
				BadgeCriteriaType:  badgeModel.CriteriaChallengeCount,
				BadgeCriteriaValue: "5",
			},
			want: ChallengeCount{Threshold: 5},
		},
		{
			name: "manual",
			badge: badgeModel.BadgeModel{
				BadgeCriteriaType: badgeModel.CriteriaManual,
			},
			want: Manual{},
		},
		{
			name: "broken threshold",
			badge: badgeModel.BadgeModel{
				BadgeCriteriaType:  badgeModel.CriteriaXPMilestone,
				BadgeCriteriaValue: "seratus",
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			badge: badgeModel.BadgeModel{
				BadgeCriteriaType:  "LOGIN_COUNT",
				BadgeCriteriaValue: "3",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCriterion(tt.badge)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCriterion err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCriterion = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSatisfied(t *testing.T) {
	courseID := uuid.New()
	otherCourse := uuid.New()

	tests := []struct {
		name string
		crit Criterion
		snap Snapshot
		want bool
	}{
		{
			name: "xp milestone tercapai tepat di threshold",
			crit: XPMilestone{Threshold: 100},
			snap: Snapshot{TotalXP: 100, Event: BadgeEvent{Type: EventXPEarned}},
			want: true,
		},
		{
			name: "xp milestone belum tercapai",
			crit: XPMilestone{Threshold: 100},
			snap: Snapshot{TotalXP: 99, Event: BadgeEvent{Type: EventXPEarned}},
			want: false,
		},
		{
			name: "course completion dengan course yang cocok",
			crit: CourseCompletion{CourseID: courseID},
			snap: Snapshot{Event: BadgeEvent{Type: EventCourseComplete, TargetID: courseID}},
			want: true,
		},
		{
			name: "course completion dengan course lain",
			crit: CourseCompletion{CourseID: courseID},
			snap: Snapshot{Event: BadgeEvent{Type: EventCourseComplete, TargetID: otherCourse}},
			want: false,
		},
		{
			name: "course completion di event bukan course",
			crit: CourseCompletion{CourseID: courseID},
			snap: Snapshot{Event: BadgeEvent{Type: EventXPEarned, TargetID: courseID}},
			want: false,
		},
		{
			name: "challenge count tercapai",
			crit: ChallengeCount{Threshold: 3},
			snap: Snapshot{PassedChallenges: 3, Event: BadgeEvent{Type: EventChallengeComplete}},
			want: true,
		},
		{
			name: "challenge count kurang",
			crit: ChallengeCount{Threshold: 3},
			snap: Snapshot{PassedChallenges: 2, Event: BadgeEvent{Type: EventChallengeComplete}},
			want: false,
		},
		{
			name: "manual tidak pernah otomatis",
			crit: Manual{},
			snap: Snapshot{TotalXP: 999999, PassedChallenges: 999},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Satisfied(tt.crit, tt.snap); got != tt.want {
				t.Errorf("Satisfied = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCandidateCriteriaTypes(t *testing.T) {
	tests := []struct {
		event string
		want  []string
	}{
		{event: EventXPEarned, want: []string{badgeModel.CriteriaXPMilestone}},
		{event: EventStreak, want: []string{badgeModel.CriteriaXPMilestone}},
		{event: EventCourseComplete, want: []string{badgeModel.CriteriaXPMilestone, badgeModel.CriteriaCourseCompletion}},
		{event: EventChallengeComplete, want: []string{badgeModel.CriteriaXPMilestone, badgeModel.CriteriaChallengeCount}},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			got := candidateCriteriaTypes(tt.event)
			if len(got) != len(tt.want) {
				t.Fatalf("candidateCriteriaTypes(%s) = %v, want %v", tt.event, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("candidateCriteriaTypes(%s)[%d] = %s, want %s", tt.event, i, got[i], tt.want[i])
				}
			}
		})
	}
}
