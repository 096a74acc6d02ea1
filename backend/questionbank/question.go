package questionbank

import "strings"

// Difficulty is the normalized difficulty bucket for a question. The raw
// CSV value is free text; normalization happens once at load time.
type Difficulty string

const (
	DifficultyUnknown Difficulty = "unknown"
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
)

type QuestionType string

const (
	TypeMCQ  QuestionType = "MCQ"
	TypeTITA QuestionType = "TITA"
)

type Option struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Question is one row of a section's question bank. Questions have no
// identity beyond their position in the section.
type Question struct {
	Topic         string
	SubTopic      string
	Difficulty    Difficulty
	Type          QuestionType
	CorrectAnswer string
	Prompt        string
	Passage       string
	Solution      string
	Options       []Option
}

// ClassifyDifficulty maps a raw difficulty string to a bucket. Matching is
// case-insensitive substring, checked easy, then medium, then hard.
// Anything else is DifficultyUnknown and stays out of difficulty counts.
func ClassifyDifficulty(raw string) Difficulty {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "easy"):
		return DifficultyEasy
	case strings.Contains(s, "medium"):
		return DifficultyMedium
	case strings.Contains(s, "hard"):
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

func classifyType(raw string) QuestionType {
	if strings.TrimSpace(raw) == string(TypeTITA) {
		return TypeTITA
	}
	return TypeMCQ
}
