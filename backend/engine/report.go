package engine

import "catprep/backend/questionbank"

// TopicSummary is one topic's aggregate with its name attached, kept in a
// slice so the display order survives JSON round-trips.
type TopicSummary struct {
	Topic string `json:"topic"`
	TopicAggregate
}

// SectionReport is one section's scored result.
type SectionReport struct {
	Name      string            `json:"name"`
	ShortName string            `json:"short_name"`
	Score     ScoreResult       `json:"score"`
	TimeSpent *float64          `json:"time_spent"`
	Outcomes  []QuestionOutcome `json:"questions"`
	Topics    []TopicSummary    `json:"topics"`
}

// TestReport is the full evaluation of one submission.
type TestReport struct {
	TestID              string              `json:"test_id"`
	Sectional           bool                `json:"is_sectional"`
	Sections            []SectionReport     `json:"sections"`
	Total               ScoreResult         `json:"total"`
	Accuracy            float64             `json:"accuracy"`
	Topics              []TopicSummary      `json:"topics"`
	Swot                SwotResult          `json:"swot"`
	MissedOpportunities []MissedOpportunity `json:"missed_opportunities"`
	TimeWasters         []TimeWaster        `json:"time_wasters"`
}

// BuildReport scores a submission against its loaded sections and runs the
// full diagnostic pipeline. Pure: same bank and submission always produce
// the same report.
func BuildReport(testID string, sections []Section, sub Submission) TestReport {
	sectional := questionbank.IsSectional(testID)

	report := TestReport{
		TestID:    testID,
		Sectional: sectional,
		Sections:  make([]SectionReport, 0, len(sections)),
	}

	merged := newTopicStats()

	for secIdx, sec := range sections {
		answers := sub.SectionAnswers(secIdx)
		times := sub.SectionTimesSpent(secIdx)

		score := ScoreSection(sec.Questions, answers)
		stats := AggregateTopics(sec.Questions, answers)

		var timeSpent *float64
		if secIdx < len(sub.SectionTimes) {
			timeSpent = sub.SectionTimes[secIdx]
		}

		report.Sections = append(report.Sections, SectionReport{
			Name:      sec.Config.Name,
			ShortName: sec.Config.ShortName,
			Score:     score,
			TimeSpent: timeSpent,
			Outcomes:  SectionOutcomes(sec, answers, times),
			Topics:    topicSummaries(stats),
		})

		report.Total.Score += score.Score
		report.Total.Correct += score.Correct
		report.Total.Wrong += score.Wrong
		report.Total.Skipped += score.Skipped
		report.Total.TotalPossible += score.TotalPossible

		mergeTopics(merged, stats)
	}

	report.Accuracy = pct(report.Total.Correct, report.Total.Correct+report.Total.Wrong)
	report.Topics = topicSummaries(merged)

	if sectional && len(sections) == 1 {
		report.Swot = DiagnoseSectional(sections[0], sub, report.Total)
	} else {
		report.Swot = DiagnoseFullMock(sections, sub)
	}

	report.MissedOpportunities = RankMissedOpportunities(sections, sub, !sectional)
	report.TimeWasters = RankTimeWasters(sections, sub, !sectional)

	return report
}

func topicSummaries(stats *TopicStats) []TopicSummary {
	summaries := make([]TopicSummary, 0, len(stats.Topics()))
	for _, topic := range stats.Topics() {
		summaries = append(summaries, TopicSummary{Topic: topic, TopicAggregate: *stats.Get(topic)})
	}
	return summaries
}

func mergeTopics(dst *TopicStats, src *TopicStats) {
	for _, topic := range src.Topics() {
		from := src.Get(topic)
		agg := dst.get(topic)
		agg.Total += from.Total
		agg.Attempted += from.Attempted
		agg.Correct += from.Correct
		agg.EasyMissed += from.EasyMissed
	}
}
