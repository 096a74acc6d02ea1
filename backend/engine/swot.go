package engine

import (
	"fmt"
	"strings"
)

// SwotItem is one diagnostic insight.
type SwotItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// SwotResult holds the four insight categories. After diagnosis every
// category has between 1 and 3 items.
type SwotResult struct {
	Strengths     []SwotItem `json:"strengths"`
	Weaknesses    []SwotItem `json:"weaknesses"`
	Opportunities []SwotItem `json:"opportunities"`
	Threats       []SwotItem `json:"threats"`
}

const maxItemsPerCategory = 3

// DiagnoseFullMock runs the question-selection rule cascade for a
// three-section full mock. When the submission carries no answer or timing
// data, or no section bank could be loaded, it degrades to the coarse
// accuracy-only diagnosis instead of failing.
func DiagnoseFullMock(sections []Section, sub Submission) SwotResult {
	if len(sections) == 0 || len(sub.Answers) == 0 || len(sub.QuestionTimes) == 0 {
		return FallbackSwot(totalCorrectWrong(sections, sub))
	}

	var swot SwotResult

	overall := analyzeOverallSelection(sections, sub)
	sectionMetrics := make([]sectionSelection, 0, len(sections))
	for secIdx, sec := range sections {
		sectionMetrics = append(sectionMetrics, analyzeSectionSelection(sec, sub.SectionAnswers(secIdx), false))
	}

	addOverallItems(&swot, overall, sectionMetrics)
	for _, m := range sectionMetrics {
		addSectionItems(&swot, m)
	}

	balanceSwot(&swot)
	return swot
}

// DiagnoseSectional runs the sectional-test variant of the cascade; same
// shape as the full-mock rules with its own constants.
func DiagnoseSectional(sec Section, sub Submission, score ScoreResult) SwotResult {
	if len(sec.Questions) == 0 {
		return FallbackSwot(score.Correct, score.Wrong)
	}

	var swot SwotResult
	m := analyzeSectionSelection(sec, sub.SectionAnswers(0), true)
	accuracy := pct(score.Correct, score.Correct+score.Wrong)

	addSectionalItems(&swot, m, score, accuracy)
	balanceSwot(&swot)
	return swot
}

// FallbackSwot is the coarse accuracy-only diagnosis used when the
// detailed analysis has nothing to work with.
func FallbackSwot(correct, wrong int) SwotResult {
	var swot SwotResult
	accuracy := pct(correct, correct+wrong)

	if accuracy >= 75 {
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       "Strong Performance Accuracy",
			Description: fmt.Sprintf("Your accuracy of %.0f%% demonstrates solid conceptual understanding.", accuracy),
			Tags:        []string{"accuracy", "concepts"},
		})
	} else if accuracy < 50 {
		swot.Weaknesses = append(swot.Weaknesses, SwotItem{
			Title:       "Accuracy Enhancement Required",
			Description: fmt.Sprintf("Accuracy of %.0f%% suggests need for more focused preparation.", accuracy),
			Tags:        []string{"accuracy", "preparation"},
		})
	}

	balanceSwot(&swot)
	return swot
}

func totalCorrectWrong(sections []Section, sub Submission) (int, int) {
	var correct, wrong int
	for secIdx, sec := range sections {
		score := ScoreSection(sec.Questions, sub.SectionAnswers(secIdx))
		correct += score.Correct
		wrong += score.Wrong
	}
	return correct, wrong
}

// Overall cascade: the three branches are mutually exclusive by
// construction; a "good" result never also reports "needs improvement".
func addOverallItems(swot *SwotResult, overall overallSelection, sectionMetrics []sectionSelection) {
	unattemptedEasy := overall.TotalEasy - overall.AttemptedEasy

	var missedEasyTopics []string
	for _, m := range sectionMetrics {
		for _, tc := range m.MissedEasyTopics {
			missedEasyTopics = append(missedEasyTopics, fmt.Sprintf("%s (%s)", tc.Topic, m.ShortName))
		}
	}

	switch {
	case overall.EasyAttemptPct >= 85 && overall.MediumAttemptPct >= 70 && overall.TimePriorityCorrect:
		description := fmt.Sprintf(
			"Good: your overall question selection was excellent, prioritizing easier questions with %.0f%% of easy questions and %.0f%% of medium questions attempted.",
			overall.EasyAttemptPct, overall.MediumAttemptPct)
		if len(missedEasyTopics) > 0 {
			top := missedEasyTopics
			if len(top) > 2 {
				top = top[:2]
			}
			description = fmt.Sprintf(
				"Good: your overall question selection was effective, prioritizing easier questions. However, %d easy questions in %s were missed. Refine scanning to catch all low-hanging fruit.",
				unattemptedEasy, strings.Join(top, ", "))
		}
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       "Overall Question Selection Strategy",
			Description: description,
			Tags:        []string{"strategy", "time management", "question selection"},
		})
	case overall.EasyAttemptPct >= 70 && overall.MediumAttemptPct >= 50:
		swot.Opportunities = append(swot.Opportunities, SwotItem{
			Title:       "Overall Question Selection Strategy",
			Description: "Average: you attempted a reasonable mix of questions. Focus on identifying and attempting all easy questions first, and be cautious about getting stuck on difficult ones too early.",
			Tags:        []string{"strategy", "question selection"},
		})
	case overall.EasyAttemptPct < 70 || float64(unattemptedEasy) >= 0.30*float64(overall.TotalEasy):
		swot.Weaknesses = append(swot.Weaknesses, SwotItem{
			Title:       "Overall Question Selection Strategy",
			Description: fmt.Sprintf("Needs improvement: your strategy could be enhanced. %d easy questions were left unattempted, while significant time may have been spent on harder ones. Prioritize easy and medium questions across all topics first.", unattemptedEasy),
			Tags:        []string{"strategy", "question selection", "time management"},
		})
	}
}

func addSectionItems(swot *SwotResult, m sectionSelection) {
	short := m.ShortName
	lower := strings.ToLower(short)

	if m.EasyAttemptPct >= 80 && len(m.StrongTopics) >= 2 {
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       short,
			Description: fmt.Sprintf("Good: your selection in %s was efficient, focusing on easier questions and your strengths in %s.", lower, strings.Join(m.StrongTopics[:2], " and ")),
			Tags:        []string{lower, "strategy", "topic mastery"},
		})
	} else if float64(m.UnattemptedEasy) >= 0.25*float64(m.TotalEasy) && m.AttemptedHard >= 1 {
		swot.Weaknesses = append(swot.Weaknesses, SwotItem{
			Title:       short,
			Description: fmt.Sprintf("Needs improvement: in %s, %d easy questions were missed while time was invested in harder ones. Ensure all easier questions are scanned and attempted first within this section.", lower, m.UnattemptedEasy),
			Tags:        []string{lower, "strategy", "prioritization"},
		})
	}

	// Actionable tip: only the first missed-easy topic is considered, and
	// only when the section was otherwise handled well.
	if m.EasyAttemptPct >= 80 && len(m.MissedEasyTopics) > 0 && len(m.StrongTopics) > 0 {
		topic := m.MissedEasyTopics[0].Topic
		if containsString(m.StrongTopics, topic) {
			swot.Opportunities = append(swot.Opportunities, SwotItem{
				Title:       short,
				Description: fmt.Sprintf("Refine your initial scan in %s to ensure no easy questions, especially in %s, are overlooked.", lower, topic),
				Tags:        []string{lower, tagify(topic), "scanning"},
			})
		}
	} else if m.UnattemptedEasy >= 3 {
		swot.Opportunities = append(swot.Opportunities, SwotItem{
			Title:       short,
			Description: fmt.Sprintf("Practice a \"first pass\" for %s: quickly scan all questions, solve obvious easy ones, mark medium, and skip hard for later.", lower),
			Tags:        []string{lower, "first pass", "strategy"},
		})
	}
}

func addSectionalItems(swot *SwotResult, m sectionSelection, score ScoreResult, accuracy float64) {
	short := m.ShortName
	lower := strings.ToLower(short)

	switch {
	case m.EasyAttemptPct >= 85 && m.MediumAttemptPct >= 70:
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       fmt.Sprintf("Excellent %s Question Selection", short),
			Description: fmt.Sprintf("Your strategy was outstanding - %.0f%% of easy questions and %.0f%% of medium questions attempted, showing smart prioritization.", m.EasyAttemptPct, m.MediumAttemptPct),
			Tags:        []string{lower, "strategy", "question selection"},
		})
	case m.EasyAttemptPct >= 75 && len(m.StrongTopics) >= 2:
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       fmt.Sprintf("Strategic %s Topic Selection", short),
			Description: fmt.Sprintf("Effective focus on easier questions and strong performance in %s.", strings.Join(m.StrongTopics[:2], " and ")),
			Tags:        []string{lower, "strategy", "topic mastery"},
		})
	case m.EasyAttemptPct >= 70 && m.MediumAttemptPct >= 50:
		swot.Opportunities = append(swot.Opportunities, SwotItem{
			Title:       fmt.Sprintf("%s Strategy Refinement", short),
			Description: fmt.Sprintf("Reasonable selection pattern (%.0f%% easy, %.0f%% medium). Focus on catching all easy questions first in %s.", m.EasyAttemptPct, m.MediumAttemptPct, short),
			Tags:        []string{lower, "strategy", "refinement"},
		})
	case m.EasyAttemptPct < 70 || float64(m.UnattemptedEasy) >= 0.25*float64(m.TotalEasy):
		swot.Weaknesses = append(swot.Weaknesses, SwotItem{
			Title:       fmt.Sprintf("%s Selection Strategy Enhancement Needed", short),
			Description: fmt.Sprintf("Strategy needs improvement - %d easy questions left unattempted. Prioritize scanning all easy questions first.", m.UnattemptedEasy),
			Tags:        []string{lower, "strategy", "prioritization"},
		})
	}

	if len(m.MissedEasyTopics) > 0 && len(m.StrongTopics) > 0 {
		tc := m.MissedEasyTopics[0]
		if containsString(m.StrongTopics, tc.Topic) {
			swot.Opportunities = append(swot.Opportunities, SwotItem{
				Title:       fmt.Sprintf("Refine %s Scanning in %s", short, tc.Topic),
				Description: fmt.Sprintf("Despite strength in %s, %d easy questions were missed. Improve initial scanning to catch all easy wins.", tc.Topic, tc.Count),
				Tags:        []string{lower, tagify(tc.Topic), "scanning"},
			})
		}
	} else if m.UnattemptedEasy >= 3 {
		swot.Opportunities = append(swot.Opportunities, SwotItem{
			Title:       fmt.Sprintf("Implement %s Two-Pass Strategy", short),
			Description: "Practice a systematic approach: first pass for all easy questions, second pass for medium, then hard questions if time permits.",
			Tags:        []string{lower, "two pass", "systematic"},
		})
	}

	if accuracy >= 80 && m.EasyAttemptPct >= 75 {
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       fmt.Sprintf("High %s Accuracy with Good Strategy", short),
			Description: fmt.Sprintf("Excellent %.0f%% accuracy combined with smart question selection shows strong %s preparation.", accuracy, short),
			Tags:        []string{lower, "accuracy", "preparation"},
		})
	}

	attemptRate := pct(score.Correct+score.Wrong, score.Correct+score.Wrong+score.Skipped)
	if attemptRate < 60 {
		swot.Threats = append(swot.Threats, SwotItem{
			Title:       fmt.Sprintf("%s Time Management Pressure", short),
			Description: fmt.Sprintf("Only %.0f%% questions attempted suggests time pressure. Practice pacing and quick question scanning.", attemptRate),
			Tags:        []string{lower, "time management", "pacing"},
		})
	} else if attemptRate >= 85 && accuracy >= 70 {
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       fmt.Sprintf("Excellent %s Time Management", short),
			Description: fmt.Sprintf("High attempt rate (%.0f%%) with good accuracy shows effective time management in %s.", attemptRate, short),
			Tags:        []string{lower, "time management", "efficiency"},
		})
	}
}

// balanceSwot guarantees 1..3 items per category: empty categories get a
// fixed fallback item, overfull ones keep their first three in insertion
// order.
func balanceSwot(swot *SwotResult) {
	if len(swot.Strengths) == 0 {
		swot.Strengths = append(swot.Strengths, SwotItem{
			Title:       "Test Completion Commitment",
			Description: "You completed the mock test, demonstrating dedication to systematic CAT preparation.",
			Tags:        []string{"commitment", "practice"},
		})
	}
	if len(swot.Weaknesses) == 0 {
		swot.Weaknesses = append(swot.Weaknesses, SwotItem{
			Title:       "Strategic Awareness Development",
			Description: "Building more awareness around question selection timing can enhance your test-taking efficiency.",
			Tags:        []string{"strategy", "awareness"},
		})
	}
	if len(swot.Opportunities) == 0 {
		swot.Opportunities = append(swot.Opportunities, SwotItem{
			Title:       "Question Selection Mastery",
			Description: "Developing a systematic first-pass strategy can significantly improve your score by ensuring easy wins.",
			Tags:        []string{"strategy", "systematic approach"},
		})
	}
	if len(swot.Threats) == 0 {
		swot.Threats = append(swot.Threats, SwotItem{
			Title:       "Time Pressure Under Exam Conditions",
			Description: "Real exam pressure might affect question selection decisions. Practice maintaining strategic discipline.",
			Tags:        []string{"exam pressure", "strategy maintenance"},
		})
	}

	swot.Strengths = capItems(swot.Strengths)
	swot.Weaknesses = capItems(swot.Weaknesses)
	swot.Opportunities = capItems(swot.Opportunities)
	swot.Threats = capItems(swot.Threats)
}

func capItems(items []SwotItem) []SwotItem {
	if len(items) > maxItemsPerCategory {
		return items[:maxItemsPerCategory]
	}
	return items
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func tagify(topic string) string {
	return strings.ReplaceAll(strings.ToLower(topic), " ", "_")
}
