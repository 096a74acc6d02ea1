package engine

import "catprep/backend/questionbank"

// Marking scheme. MCQ carries negative marking, TITA does not; the
// asymmetry matches the exam's rules and must not be "fixed".
const (
	marksCorrect  = 3
	marksMCQWrong = -1
)

// ScoreResult aggregates one section's answers into a score.
type ScoreResult struct {
	Score         int `json:"score"`
	Correct       int `json:"correct"`
	Wrong         int `json:"wrong"`
	Skipped       int `json:"skipped"`
	TotalPossible int `json:"total_possible"`
}

// ScoreSection classifies every question of a section as correct, wrong or
// skipped and applies the marking scheme. TotalPossible is 3 per question
// regardless of the MCQ/TITA mix.
func ScoreSection(questions []questionbank.Question, answers map[int]string) ScoreResult {
	var mcqCorrect, mcqWrong, titaCorrect, titaWrong, skipped int

	for i, q := range questions {
		ans, ok := answers[i]
		if !ok {
			skipped++
			continue
		}
		correct := IsCorrect(q, ans)
		if q.Type == questionbank.TypeTITA {
			if correct {
				titaCorrect++
			} else {
				titaWrong++
			}
		} else {
			if correct {
				mcqCorrect++
			} else {
				mcqWrong++
			}
		}
	}

	return ScoreResult{
		Score:         mcqCorrect*marksCorrect + mcqWrong*marksMCQWrong + titaCorrect*marksCorrect,
		Correct:       mcqCorrect + titaCorrect,
		Wrong:         mcqWrong + titaWrong,
		Skipped:       skipped,
		TotalPossible: len(questions) * marksCorrect,
	}
}
