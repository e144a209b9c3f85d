package constants

// Besaran XP untuk tiap aksi. Diselaraskan dengan kurva level (K=100):
// satu course penuh kira-kira setara satu level awal.
const (
	XPSectionComplete = 10
	XPCourseComplete  = 100
	XPQuizPass        = 50
)

// Sumber XP untuk audit log (user_xp_logs.source).
const (
	XPSourceSection   = "section_complete"
	XPSourceCourse    = "course_complete"
	XPSourceQuiz      = "quiz_pass"
	XPSourceChallenge = "challenge_pass"
	XPSourceBadge     = "badge_reward"
	XPSourceQuest     = "daily_quest"
)

// Quiz
const (
	QuizPassThreshold  = 70.0
	QuizDefaultAttempts = 3 // 0 = tanpa batas
)
