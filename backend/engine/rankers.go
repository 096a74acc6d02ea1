package engine

import (
	"sort"

	"catprep/backend/questionbank"
)

const maxRankedEntries = 6

// Expected seconds per question by difficulty, used by the time-waster
// ranking. Unknown difficulty is treated as medium.
const (
	expectedTimeEasy   = 45.0
	expectedTimeMedium = 75.0
	expectedTimeHard   = 120.0
)

// MissedOpportunity is a topic where easy questions were left on the table.
type MissedOpportunity struct {
	Topic      string `json:"topic"`
	Section    string `json:"section"`
	MissedEasy int    `json:"missed_easy"`
	Efficiency string `json:"efficiency"`
}

// TimeWaster is a topic where the average time per attempted question
// exceeded the difficulty-weighted expectation.
type TimeWaster struct {
	Topic       string  `json:"topic"`
	Section     string  `json:"section"`
	AvgTime     float64 `json:"avg_time_seconds"`
	OptimalTime float64 `json:"optimal_time_seconds"`
	Efficiency  string  `json:"efficiency"`
}

// RankMissedOpportunities lists topics by count of unattempted easy
// questions, descending, at most 6 entries. Full mocks are backfilled so
// every section shows up in the list.
func RankMissedOpportunities(sections []Section, sub Submission, fullMock bool) []MissedOpportunity {
	var ranked []MissedOpportunity

	for secIdx, sec := range sections {
		stats := AggregateTopics(sec.Questions, sub.SectionAnswers(secIdx))
		for _, topic := range stats.Topics() {
			agg := stats.Get(topic)
			if agg.EasyMissed == 0 {
				continue
			}
			efficiency := "Medium Efficiency"
			if agg.EasyMissed >= 2 {
				efficiency = "Low Efficiency"
			}
			ranked = append(ranked, MissedOpportunity{
				Topic:      topic,
				Section:    sec.Config.ShortName,
				MissedEasy: agg.EasyMissed,
				Efficiency: efficiency,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MissedEasy > ranked[j].MissedEasy
	})
	if len(ranked) > maxRankedEntries {
		ranked = ranked[:maxRankedEntries]
	}

	if fullMock {
		missing := missingSections(missedOpportunitySections(ranked))
		if len(missing) > 0 {
			// Trim once, before appending, so one placeholder cannot push
			// out another
			if len(ranked) > maxRankedEntries-len(missing) {
				ranked = ranked[:maxRankedEntries-len(missing)]
			}
			for _, short := range missing {
				ranked = append(ranked, MissedOpportunity{
					Topic:      "General",
					Section:    short,
					MissedEasy: 0,
					Efficiency: "Medium Efficiency",
				})
			}
		}
	}

	return ranked
}

// RankTimeWasters lists topics by average time spent per attempted
// question, descending, at most 6 entries. A topic qualifies only when its
// average exceeds the difficulty-weighted expectation.
func RankTimeWasters(sections []Section, sub Submission, fullMock bool) []TimeWaster {
	var ranked []TimeWaster

	for secIdx, sec := range sections {
		answers := sub.SectionAnswers(secIdx)
		times := sub.SectionTimesSpent(secIdx)

		order, byTopic := topicTimeStats(sec.Questions, answers, times)
		for _, topic := range order {
			ts := byTopic[topic]
			if ts.attempted == 0 {
				continue
			}
			avg := ts.timeSum / float64(ts.attempted)
			optimal := ts.expectedSum / float64(ts.attempted)
			if avg <= optimal {
				continue
			}
			ranked = append(ranked, TimeWaster{
				Topic:       topic,
				Section:     sec.Config.ShortName,
				AvgTime:     avg,
				OptimalTime: optimal,
				Efficiency:  timeEfficiency(avg, optimal),
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvgTime > ranked[j].AvgTime
	})
	if len(ranked) > maxRankedEntries {
		ranked = ranked[:maxRankedEntries]
	}

	if fullMock {
		missing := missingSections(timeWasterSections(ranked))
		if len(missing) > 0 {
			if len(ranked) > maxRankedEntries-len(missing) {
				ranked = ranked[:maxRankedEntries-len(missing)]
			}
			for _, short := range missing {
				ranked = append(ranked, TimeWaster{
					Topic:       "General",
					Section:     short,
					AvgTime:     0,
					OptimalTime: expectedTimeMedium,
					Efficiency:  "High",
				})
			}
		}
	}

	return ranked
}

type topicTime struct {
	attempted   int
	timeSum     float64
	expectedSum float64
}

func topicTimeStats(questions []questionbank.Question, answers map[int]string, times map[int]float64) ([]string, map[string]*topicTime) {
	var order []string
	byTopic := make(map[string]*topicTime)

	for i, q := range questions {
		if _, attempted := answers[i]; !attempted {
			continue
		}
		t, hasTime := times[i]
		if !hasTime || t <= 0 {
			continue
		}

		topic := q.Topic
		if topic == "" {
			topic = "Unknown Topic"
		}
		ts, ok := byTopic[topic]
		if !ok {
			ts = &topicTime{}
			byTopic[topic] = ts
			order = append(order, topic)
		}
		ts.attempted++
		ts.timeSum += t
		ts.expectedSum += expectedTime(q.Difficulty)
	}

	return order, byTopic
}

func expectedTime(d questionbank.Difficulty) float64 {
	switch d {
	case questionbank.DifficultyEasy:
		return expectedTimeEasy
	case questionbank.DifficultyHard:
		return expectedTimeHard
	default:
		return expectedTimeMedium
	}
}

func timeEfficiency(avg, optimal float64) string {
	switch {
	case avg > 1.5*optimal:
		return "Low"
	case avg > 1.2*optimal:
		return "Medium"
	default:
		return "High"
	}
}

func missedOpportunitySections(entries []MissedOpportunity) map[string]bool {
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Section] = true
	}
	return present
}

func timeWasterSections(entries []TimeWaster) map[string]bool {
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Section] = true
	}
	return present
}

// missingSections returns the full-mock sections absent from a ranking, in
// display order.
func missingSections(present map[string]bool) []string {
	var missing []string
	for _, short := range []string{questionbank.SectionVARC, questionbank.SectionLRDI, questionbank.SectionQA} {
		if !present[short] {
			missing = append(missing, short)
		}
	}
	return missing
}
