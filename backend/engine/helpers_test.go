package engine

import "catprep/backend/questionbank"

func questionList(qs ...questionbank.Question) []questionbank.Question {
	return qs
}

func topicQ(topic string, difficulty questionbank.Difficulty, answer string) questionbank.Question {
	return questionbank.Question{
		Topic:         topic,
		Difficulty:    difficulty,
		Type:          questionbank.TypeMCQ,
		CorrectAnswer: answer,
	}
}

func defaultConfig() questionbank.SectionConfig {
	return questionbank.SectionConfig{
		Name:               "Quantitative Aptitude",
		ShortName:          questionbank.SectionQA,
		OptimalTimeCorrect: questionbank.DefaultOptimalTimeCorrect,
		QuickTimeIncorrect: questionbank.DefaultQuickTimeIncorrect,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
