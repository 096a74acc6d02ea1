package models

import "time"

// MonthlyProgress is one month's activity summary.
type MonthlyProgress struct {
	Month          time.Month     `json:"month"`
	Year           int            `json:"year"`
	StreakDays     int            `json:"streak_days"`
	TestsCompleted int64          `json:"tests_completed"`
	LoginFrequency map[string]int `json:"login_frequency"`
}

// ProgressOverview is the headline numbers for the dashboard.
type ProgressOverview struct {
	TotalStreakDays     int     `json:"total_streak_days"`
	TotalTestsCompleted int     `json:"total_tests_completed"`
	AverageAccuracy     float64 `json:"average_accuracy"`
	BestScore           int     `json:"best_score"`
}
