package controllers

import (
	"encoding/json"

	"catprep/backend/config"
	"catprep/backend/engine"
	"catprep/backend/middleware"
	"catprep/backend/models"
	"catprep/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg}
}

func (ac *AnalyticsController) loadReport(c *fiber.Ctx) (*engine.TestReport, error) {
	userID := middleware.UserID(c)
	testID := c.Params("id")

	var result models.TestResult
	if err := ac.DB.Where("user_id = ? AND test_id = ?", userID, testID).First(&result).Error; err != nil {
		return nil, utils.NotFound(c, "No result for this test")
	}

	var report engine.TestReport
	if err := json.Unmarshal([]byte(result.ReportJSON), &report); err != nil {
		return nil, utils.InternalServerError(c, "Stored report is corrupted")
	}
	return &report, nil
}

// GetSwot godoc
// @Summary SWOT insights for a test
// @Description Returns the strengths/weaknesses/opportunities/threats breakdown
// @Tags analytics
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /analytics/{id}/swot [get]
func (ac *AnalyticsController) GetSwot(c *fiber.Ctx) error {
	report, err := ac.loadReport(c)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, report.Swot)
}

// GetRankings godoc
// @Summary Missed opportunities and time wasters
// @Description Returns the ranked topic lists for a test
// @Tags analytics
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /analytics/{id}/rankings [get]
func (ac *AnalyticsController) GetRankings(c *fiber.Ctx) error {
	report, err := ac.loadReport(c)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"missed_opportunities": report.MissedOpportunities,
		"time_wasters":         report.TimeWasters,
	})
}

// GetTopics godoc
// @Summary Topic performance for a test
// @Description Returns per-topic totals, attempts and correct counts
// @Tags analytics
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /analytics/{id}/topics [get]
func (ac *AnalyticsController) GetTopics(c *fiber.Ctx) error {
	report, err := ac.loadReport(c)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"overall":  report.Topics,
		"sections": report.Sections,
	})
}

// GetTestAnalytics godoc
// @Summary Aggregate analytics for a test (admin)
// @Description Returns attempt counts and score statistics across all users
// @Tags analytics
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/tests/{id}/analytics [get]
func (ac *AnalyticsController) GetTestAnalytics(c *fiber.Ctx) error {
	testID := c.Params("id")

	var attempts int64
	ac.DB.Model(&models.TestResult{}).Where("test_id = ?", testID).Count(&attempts)

	var stats struct {
		AvgScore    float64 `json:"avg_score"`
		MaxScore    int     `json:"max_score"`
		MinScore    int     `json:"min_score"`
		AvgAccuracy float64 `json:"avg_accuracy"`
	}
	if attempts > 0 {
		ac.DB.Model(&models.TestResult{}).
			Where("test_id = ?", testID).
			Select("AVG(score) as avg_score, MAX(score) as max_score, MIN(score) as min_score, AVG(accuracy) as avg_accuracy").
			Scan(&stats)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"test_id":  testID,
		"attempts": attempts,
		"stats":    stats,
	})
}
