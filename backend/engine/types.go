package engine

import (
	"strconv"

	"catprep/backend/questionbank"
)

// Status is the per-question evaluation result.
type Status string

const (
	StatusSkipped   Status = "skipped"
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"
)

// TimeClass combines the status with whether time spent on the question was
// within the section's threshold. The values double as CSS classes on the
// review page, which is why they carry the "status-" prefix.
type TimeClass string

const (
	TimeClassSkipped        TimeClass = "status-skipped"
	TimeClassOptimalCorrect TimeClass = "status-optimal-correct"
	TimeClassLongerCorrect  TimeClass = "status-longer-correct"
	TimeClassQuickIncorrect TimeClass = "status-quick-incorrect"
	TimeClassLongIncorrect  TimeClass = "status-long-incorrect"
)

// Section bundles a section's config with its loaded question bank.
type Section struct {
	Config    questionbank.SectionConfig
	Questions []questionbank.Question
}

// Submission is one user's attempt, keyed by integer section and question
// indices. An absent answer entry means the question was skipped; explicit
// nulls on the wire are dropped during parsing so both look the same here.
type Submission struct {
	Answers       map[int]map[int]string
	QuestionTimes map[int]map[int]float64
	SectionTimes  []*float64
}

// SectionAnswers returns the answered questions of one section.
func (s Submission) SectionAnswers(secIdx int) map[int]string {
	return s.Answers[secIdx]
}

// SectionTimesSpent returns the per-question times of one section.
func (s Submission) SectionTimesSpent(secIdx int) map[int]float64 {
	return s.QuestionTimes[secIdx]
}

// WireAnswer is one answer cell as submitted by the test-taker UI.
type WireAnswer struct {
	Answer *string `json:"answer"`
}

// WireSubmission is the submit payload. Section and question indices arrive
// as stringified integers; that convention is the join key between the
// submission and the question bank and must be preserved on the wire.
type WireSubmission struct {
	TestID        string                           `json:"test_id"`
	Answers       map[string]map[string]WireAnswer `json:"answers"`
	SectionTimes  []*float64                       `json:"times"`
	QuestionTimes map[string]map[string]*float64   `json:"question_times"`
}

// Parse converts the wire payload to integer-keyed form. Null answers and
// null times are dropped, keys that are not integers are ignored.
func (w WireSubmission) Parse() Submission {
	sub := Submission{
		Answers:       make(map[int]map[int]string),
		QuestionTimes: make(map[int]map[int]float64),
		SectionTimes:  w.SectionTimes,
	}

	for secKey, answers := range w.Answers {
		secIdx, err := strconv.Atoi(secKey)
		if err != nil {
			continue
		}
		for qKey, cell := range answers {
			qIdx, err := strconv.Atoi(qKey)
			if err != nil || cell.Answer == nil {
				continue
			}
			if sub.Answers[secIdx] == nil {
				sub.Answers[secIdx] = make(map[int]string)
			}
			sub.Answers[secIdx][qIdx] = *cell.Answer
		}
	}

	for secKey, times := range w.QuestionTimes {
		secIdx, err := strconv.Atoi(secKey)
		if err != nil {
			continue
		}
		for qKey, t := range times {
			qIdx, err := strconv.Atoi(qKey)
			if err != nil || t == nil {
				continue
			}
			if sub.QuestionTimes[secIdx] == nil {
				sub.QuestionTimes[secIdx] = make(map[int]float64)
			}
			sub.QuestionTimes[secIdx][qIdx] = *t
		}
	}

	return sub
}

// QuestionOutcome is the per-question evaluation used by the review UI.
// Computed fresh for every scoring pass, never persisted.
type QuestionOutcome struct {
	Number        int                       `json:"number"`
	Status        Status                    `json:"status"`
	TimeClass     TimeClass                 `json:"combined_status_class"`
	TimeSpent     *float64                  `json:"time_spent"`
	UserAnswer    *string                   `json:"user_answer"`
	CorrectAnswer string                    `json:"correct_answer"`
	QuestionType  questionbank.QuestionType `json:"question_type"`
}
