package engine

import (
	"testing"

	"catprep/backend/questionbank"

	"github.com/stretchr/testify/assert"
)

func assertCategoryBounds(t *testing.T, swot SwotResult) {
	t.Helper()
	for name, items := range map[string][]SwotItem{
		"strengths":     swot.Strengths,
		"weaknesses":    swot.Weaknesses,
		"opportunities": swot.Opportunities,
		"threats":       swot.Threats,
	} {
		assert.GreaterOrEqual(t, len(items), 1, "category %s must not be empty", name)
		assert.LessOrEqual(t, len(items), 3, "category %s must be capped at 3", name)
	}
}

func hasTitle(items []SwotItem, title string) bool {
	for _, item := range items {
		if item.Title == title {
			return true
		}
	}
	return false
}

func TestFallbackSwotHighAccuracy(t *testing.T) {
	swot := FallbackSwot(8, 2)

	assert.True(t, hasTitle(swot.Strengths, "Strong Performance Accuracy"))
	assertCategoryBounds(t, swot)
}

func TestFallbackSwotLowAccuracy(t *testing.T) {
	swot := FallbackSwot(2, 8)

	assert.True(t, hasTitle(swot.Weaknesses, "Accuracy Enhancement Required"))
	assertCategoryBounds(t, swot)
}

func TestFallbackSwotNoData(t *testing.T) {
	swot := FallbackSwot(0, 0)

	assertCategoryBounds(t, swot)
}

func TestDiagnoseFullMockEmptySubmission(t *testing.T) {
	sections := []Section{{
		Config:    defaultConfig(),
		Questions: questionList(topicQ("Algebra", questionbank.DifficultyEasy, "A")),
	}}

	swot := DiagnoseFullMock(sections, Submission{})

	assertCategoryBounds(t, swot)
}

func TestDiagnoseFullMockWeaknessBranchExclusive(t *testing.T) {
	// All easy questions skipped: the "needs improvement" branch must fire
	// and the "good"/"average" branches must not.
	sections := []Section{{
		Config: defaultConfig(),
		Questions: questionList(
			topicQ("Algebra", questionbank.DifficultyEasy, "A"),
			topicQ("Algebra", questionbank.DifficultyEasy, "B"),
			topicQ("Geometry", questionbank.DifficultyEasy, "C"),
			topicQ("Geometry", questionbank.DifficultyMedium, "D"),
		),
	}}
	sub := Submission{
		Answers:       map[int]map[int]string{0: {3: "D"}},
		QuestionTimes: map[int]map[int]float64{0: {3: 40}},
	}

	swot := DiagnoseFullMock(sections, sub)

	const overallTitle = "Overall Question Selection Strategy"
	assert.True(t, hasTitle(swot.Weaknesses, overallTitle))
	assert.False(t, hasTitle(swot.Strengths, overallTitle))
	assert.False(t, hasTitle(swot.Opportunities, overallTitle))
	assertCategoryBounds(t, swot)
}

func TestDiagnoseFullMockStrengthBranch(t *testing.T) {
	sections := []Section{{
		Config: defaultConfig(),
		Questions: questionList(
			topicQ("Algebra", questionbank.DifficultyEasy, "A"),
			topicQ("Algebra", questionbank.DifficultyEasy, "B"),
			topicQ("Geometry", questionbank.DifficultyMedium, "C"),
			topicQ("Geometry", questionbank.DifficultyHard, "D"),
		),
	}}
	sub := Submission{
		Answers: map[int]map[int]string{0: {0: "A", 1: "B", 2: "C", 3: "D"}},
		QuestionTimes: map[int]map[int]float64{0: {
			0: 30, 1: 35, 2: 60, 3: 150,
		}},
	}

	swot := DiagnoseFullMock(sections, sub)

	assert.True(t, hasTitle(swot.Strengths, "Overall Question Selection Strategy"))
	assert.False(t, hasTitle(swot.Weaknesses, "Overall Question Selection Strategy"))
	assertCategoryBounds(t, swot)
}

func TestDiagnoseSectionalLowAttemptRateThreat(t *testing.T) {
	qs := make([]questionbank.Question, 0, 10)
	for i := 0; i < 10; i++ {
		qs = append(qs, topicQ("Arithmetic", questionbank.DifficultyMedium, "A"))
	}
	sec := Section{Config: defaultConfig(), Questions: qs}
	sub := Submission{
		Answers:       map[int]map[int]string{0: {0: "A", 1: "A", 2: "B"}},
		QuestionTimes: map[int]map[int]float64{0: {0: 50, 1: 55, 2: 70}},
	}

	score := ScoreSection(sec.Questions, sub.SectionAnswers(0))
	swot := DiagnoseSectional(sec, sub, score)

	assert.True(t, hasTitle(swot.Threats, "QA Time Management Pressure"))
	assertCategoryBounds(t, swot)
}
