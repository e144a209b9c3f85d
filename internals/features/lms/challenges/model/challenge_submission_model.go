package model

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeSubmissionModel: satu percobaan submit kode.
// Tidak ada unique index: user boleh submit berulang kali; badge
// CHALLENGE_COUNT menghitung distinct challenge yang lulus.
type ChallengeSubmissionModel struct {
	ChallengeSubmissionID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:challenge_submission_id" json:"challenge_submission_id"`
	ChallengeSubmissionUserID      uuid.UUID `gorm:"type:uuid;not null;index;column:challenge_submission_user_id" json:"challenge_submission_user_id"`
	ChallengeSubmissionChallengeID uuid.UUID `gorm:"type:uuid;not null;index;column:challenge_submission_challenge_id" json:"challenge_submission_challenge_id"`
	ChallengeSubmissionCode        string    `gorm:"type:text;not null;column:challenge_submission_code" json:"challenge_submission_code"`
	ChallengeSubmissionLanguage    string    `gorm:"type:varchar(20);not null;column:challenge_submission_language" json:"challenge_submission_language"`
	ChallengeSubmissionPassed      bool      `gorm:"not null;default:false;column:challenge_submission_passed" json:"challenge_submission_passed"`
	ChallengeSubmissionPassedCases int       `gorm:"not null;default:0;column:challenge_submission_passed_cases" json:"challenge_submission_passed_cases"`
	ChallengeSubmissionTotalCases  int       `gorm:"not null;default:0;column:challenge_submission_total_cases" json:"challenge_submission_total_cases"`
	// Detail kegagalan pertama (status sandbox atau diff output), kosong kalau lulus
	ChallengeSubmissionDetail string `gorm:"type:text;column:challenge_submission_detail" json:"challenge_submission_detail"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChallengeSubmissionModel) TableName() string {
	return "challenge_submissions"
}
