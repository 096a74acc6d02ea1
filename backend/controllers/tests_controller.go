package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"catprep/backend/config"
	"catprep/backend/engine"
	"catprep/backend/middleware"
	"catprep/backend/models"
	"catprep/backend/questionbank"
	"catprep/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TestsController struct {
	DB   *gorm.DB
	Cfg  *config.Config
	Bank *questionbank.Loader
}

func NewTestsController(db *gorm.DB, cfg *config.Config, bank *questionbank.Loader) *TestsController {
	return &TestsController{DB: db, Cfg: cfg, Bank: bank}
}

// loadSections resolves a test id and loads every section's question bank.
// A section whose bank file is missing is skipped rather than failing the
// whole test; the engine degrades to its coarse diagnosis when the
// remaining data is too thin.
func loadSections(bank *questionbank.Loader, testID string) ([]engine.Section, error) {
	configs, err := questionbank.SectionsForTest(testID)
	if err != nil {
		return nil, err
	}

	sections := make([]engine.Section, 0, len(configs))
	for _, conf := range configs {
		questions, err := bank.Section(conf.CSV)
		if errors.Is(err, questionbank.ErrBankNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sections = append(sections, engine.Section{Config: conf, Questions: questions})
	}
	return sections, nil
}

// GetCatalog godoc
// @Summary List available tests
// @Description Returns all full mocks and sectional tests
// @Tags tests
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tests/catalog [get]
func (tc *TestsController) GetCatalog(c *fiber.Ctx) error {
	type catalogEntry struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Sections []string `json:"sections"`
	}

	fullMocks := make([]catalogEntry, 0, 15)
	for _, id := range questionbank.FullMockIDs() {
		fullMocks = append(fullMocks, catalogEntry{
			ID:       id,
			Name:     "Mock Test " + id,
			Sections: []string{questionbank.SectionVARC, questionbank.SectionLRDI, questionbank.SectionQA},
		})
	}

	sectionals := make([]catalogEntry, 0, 10)
	for _, id := range questionbank.SectionalIDs() {
		configs, err := questionbank.SectionsForTest(id)
		if err != nil {
			continue
		}
		sectionals = append(sectionals, catalogEntry{
			ID:       id,
			Name:     configs[0].Name + " Sectional",
			Sections: []string{configs[0].ShortName},
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"full_mocks": fullMocks,
		"sectionals": sectionals,
	})
}

// SubmitTest godoc
// @Summary Submit test answers
// @Description Scores a submission, stores the result and returns the full report
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "Test ID"
// @Param submission body engine.WireSubmission true "Answers and timing data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tests/{id}/submit [post]
func (tc *TestsController) SubmitTest(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	testID := c.Params("id")

	var wire engine.WireSubmission
	if err := c.BodyParser(&wire); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	wire.TestID = testID

	sections, err := loadSections(tc.Bank, testID)
	if err != nil {
		if errors.Is(err, questionbank.ErrUnknownTest) {
			return utils.NotFound(c, "Unknown test")
		}
		return utils.InternalServerError(c, "Could not load question bank")
	}

	sub := wire.Parse()
	report := engine.BuildReport(testID, sections, sub)

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return utils.InternalServerError(c, "Could not serialize report")
	}
	submissionJSON, err := json.Marshal(wire)
	if err != nil {
		return utils.InternalServerError(c, "Could not serialize submission")
	}

	result := models.TestResult{
		UserID:         userID,
		TestID:         testID,
		Sectional:      report.Sectional,
		Score:          report.Total.Score,
		Correct:        report.Total.Correct,
		Wrong:          report.Total.Wrong,
		Skipped:        report.Total.Skipped,
		TotalPossible:  report.Total.TotalPossible,
		Accuracy:       report.Accuracy,
		ReportJSON:     string(reportJSON),
		SubmissionJSON: string(submissionJSON),
	}

	// Retakes overwrite the previous attempt
	var existing models.TestResult
	err = tc.DB.Where("user_id = ? AND test_id = ?", userID, testID).First(&existing).Error
	switch {
	case err == nil:
		result.ID = existing.ID
		result.CreatedAt = existing.CreatedAt
		if err := tc.DB.Save(&result).Error; err != nil {
			return utils.InternalServerError(c, "Could not update result")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tc.DB.Create(&result).Error; err != nil {
			return utils.InternalServerError(c, "Could not store result")
		}
		tc.DB.Model(&models.UserProgress{}).
			Where("user_id = ?", userID).
			UpdateColumn("tests_completed", gorm.Expr("tests_completed + 1"))
	default:
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, report)
}

// GetTestResult godoc
// @Summary Get stored test result
// @Description Returns the stored evaluation report for a test
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tests/{id}/result [get]
func (tc *TestsController) GetTestResult(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	testID := c.Params("id")

	var result models.TestResult
	if err := tc.DB.Where("user_id = ? AND test_id = ?", userID, testID).First(&result).Error; err != nil {
		return utils.NotFound(c, "No result for this test")
	}

	var report engine.TestReport
	if err := json.Unmarshal([]byte(result.ReportJSON), &report); err != nil {
		return utils.InternalServerError(c, "Stored report is corrupted")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"report":   report,
		"taken_at": result.UpdatedAt,
	})
}

// GetHistory godoc
// @Summary List past test results
// @Description Returns a paginated summary of the user's attempts
// @Tags tests
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} utils.PaginatedResponse
// @Security ApiKeyAuth
// @Router /tests/history [get]
func (tc *TestsController) GetHistory(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	query := tc.DB.Model(&models.TestResult{}).Where("user_id = ?", userID)

	var total int64
	query.Count(&total)

	var results []models.TestResult
	if err := query.Order("updated_at DESC").Offset(offset).Limit(pageSize).Find(&results).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch history")
	}

	history := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		history = append(history, map[string]interface{}{
			"test_id":        r.TestID,
			"is_sectional":   r.Sectional,
			"score":          r.Score,
			"correct":        r.Correct,
			"wrong":          r.Wrong,
			"skipped":        r.Skipped,
			"total_possible": r.TotalPossible,
			"accuracy":       r.Accuracy,
			"taken_at":       r.UpdatedAt,
		})
	}

	return utils.Paginate(c, history, total, page, pageSize)
}

// ReviewQuestion pairs a question's content with the user's outcome on it.
type ReviewQuestion struct {
	Number        int                       `json:"number"`
	Topic         string                    `json:"topic"`
	SubTopic      string                    `json:"subtopic"`
	Prompt        string                    `json:"prompt"`
	Passage       string                    `json:"passage,omitempty"`
	Options       []questionbank.Option     `json:"options,omitempty"`
	Solution      string                    `json:"solution"`
	QuestionType  questionbank.QuestionType `json:"question_type"`
	Status        engine.Status             `json:"status"`
	TimeClass     engine.TimeClass          `json:"combined_status_class"`
	TimeSpent     *float64                  `json:"time_spent"`
	UserAnswer    *string                   `json:"user_answer"`
	CorrectAnswer string                    `json:"correct_answer"`
}

// GetReview godoc
// @Summary Review a submitted test
// @Description Returns every question with its content and the user's outcome
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tests/{id}/review [get]
func (tc *TestsController) GetReview(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	testID := c.Params("id")

	var result models.TestResult
	if err := tc.DB.Where("user_id = ? AND test_id = ?", userID, testID).First(&result).Error; err != nil {
		return utils.NotFound(c, "No result for this test")
	}

	var wire engine.WireSubmission
	if err := json.Unmarshal([]byte(result.SubmissionJSON), &wire); err != nil {
		return utils.InternalServerError(c, "Stored submission is corrupted")
	}

	sections, err := loadSections(tc.Bank, testID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load question bank")
	}

	sub := wire.Parse()

	type sectionReview struct {
		Name      string           `json:"name"`
		ShortName string           `json:"short_name"`
		Questions []ReviewQuestion `json:"questions"`
	}

	review := make([]sectionReview, 0, len(sections))
	for secIdx, sec := range sections {
		outcomes := engine.SectionOutcomes(sec, sub.SectionAnswers(secIdx), sub.SectionTimesSpent(secIdx))

		questions := make([]ReviewQuestion, 0, len(sec.Questions))
		for i, q := range sec.Questions {
			out := outcomes[i]
			questions = append(questions, ReviewQuestion{
				Number:        out.Number,
				Topic:         q.Topic,
				SubTopic:      q.SubTopic,
				Prompt:        q.Prompt,
				Passage:       q.Passage,
				Options:       q.Options,
				Solution:      q.Solution,
				QuestionType:  q.Type,
				Status:        out.Status,
				TimeClass:     out.TimeClass,
				TimeSpent:     out.TimeSpent,
				UserAnswer:    out.UserAnswer,
				CorrectAnswer: out.CorrectAnswer,
			})
		}

		review = append(review, sectionReview{
			Name:      sec.Config.Name,
			ShortName: sec.Config.ShortName,
			Questions: questions,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"test_id":  testID,
		"sections": review,
	})
}
