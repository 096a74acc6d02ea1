package models

import "gorm.io/gorm"

// TestResult is one user's latest attempt at one test. Retaking a test
// overwrites the previous row; (user_id, test_id) is unique.
type TestResult struct {
	gorm.Model
	UserID        uint   `gorm:"not null;uniqueIndex:idx_user_test"`
	TestID        string `gorm:"not null;uniqueIndex:idx_user_test"`
	Sectional     bool
	Score         int
	Correct       int
	Wrong         int
	Skipped       int
	TotalPossible int
	Accuracy      float64
	// Full evaluation report and the raw submission, serialized as JSON.
	// The report is served as-is; the submission allows re-evaluation when
	// the analytics rules change.
	ReportJSON     string `gorm:"type:text"`
	SubmissionJSON string `gorm:"type:text"`
}
