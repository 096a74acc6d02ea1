package engine

import "catprep/backend/questionbank"

// Classify maps a question's status and time spent to its time class. A
// question with no recorded time falls into the "fast enough" branch:
// a guess with no timing data is not penalized by the time heuristic.
func Classify(status Status, timeSpent *float64, conf questionbank.SectionConfig) TimeClass {
	switch status {
	case StatusCorrect:
		if timeSpent == nil || *timeSpent <= conf.OptimalTimeCorrect {
			return TimeClassOptimalCorrect
		}
		return TimeClassLongerCorrect
	case StatusIncorrect:
		if timeSpent == nil || *timeSpent <= conf.QuickTimeIncorrect {
			return TimeClassQuickIncorrect
		}
		return TimeClassLongIncorrect
	default:
		return TimeClassSkipped
	}
}

// SectionOutcomes evaluates every question of a section for the review UI.
func SectionOutcomes(sec Section, answers map[int]string, times map[int]float64) []QuestionOutcome {
	outcomes := make([]QuestionOutcome, 0, len(sec.Questions))

	for i, q := range sec.Questions {
		var timeSpent *float64
		if t, ok := times[i]; ok {
			v := t
			timeSpent = &v
		}

		outcome := QuestionOutcome{
			Number:        i + 1,
			CorrectAnswer: q.CorrectAnswer,
			QuestionType:  q.Type,
			TimeSpent:     timeSpent,
		}

		if ans, ok := answers[i]; ok {
			a := ans
			outcome.UserAnswer = &a
			if IsCorrect(q, ans) {
				outcome.Status = StatusCorrect
			} else {
				outcome.Status = StatusIncorrect
			}
		} else {
			outcome.Status = StatusSkipped
		}

		outcome.TimeClass = Classify(outcome.Status, timeSpent, sec.Config)
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
