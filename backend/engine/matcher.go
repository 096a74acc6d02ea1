package engine

import (
	"math"
	"strconv"
	"strings"

	"catprep/backend/questionbank"
)

// titaTolerance is the absolute tolerance for numeric TITA comparison.
const titaTolerance = 0.001

// IsCorrect decides whether an answer matches the question's correct value.
// MCQ answers compare as exact strings. TITA answers compare as floats
// within titaTolerance; anything that fails to parse counts as incorrect
// rather than an error. Skipped questions are handled by the caller and
// never reach here.
func IsCorrect(q questionbank.Question, userAnswer string) bool {
	if q.Type == questionbank.TypeTITA {
		userVal, err := strconv.ParseFloat(strings.TrimSpace(userAnswer), 64)
		if err != nil {
			return false
		}
		correctVal, err := strconv.ParseFloat(strings.TrimSpace(q.CorrectAnswer), 64)
		if err != nil {
			return false
		}
		return math.Abs(userVal-correctVal) <= titaTolerance
	}

	return userAnswer == q.CorrectAnswer
}
