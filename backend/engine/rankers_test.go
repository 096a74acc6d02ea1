package engine

import (
	"testing"

	"catprep/backend/questionbank"

	"github.com/stretchr/testify/assert"
)

func TestRankMissedOpportunities(t *testing.T) {
	sections := []Section{{
		Config: defaultConfig(),
		Questions: questionList(
			topicQ("Algebra", questionbank.DifficultyEasy, "A"),
			topicQ("Algebra", questionbank.DifficultyEasy, "B"),
			topicQ("Geometry", questionbank.DifficultyEasy, "C"),
			topicQ("Arithmetic", questionbank.DifficultyMedium, "D"),
		),
	}}
	// Nothing attempted: Algebra misses 2 easy, Geometry misses 1
	ranked := RankMissedOpportunities(sections, Submission{}, false)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "Algebra", ranked[0].Topic)
	assert.Equal(t, 2, ranked[0].MissedEasy)
	assert.Equal(t, "Low Efficiency", ranked[0].Efficiency)
	assert.Equal(t, "Geometry", ranked[1].Topic)
	assert.Equal(t, 1, ranked[1].MissedEasy)
	assert.Equal(t, "Medium Efficiency", ranked[1].Efficiency)
}

func TestRankMissedOpportunitiesCapAndOrder(t *testing.T) {
	topics := []string{"T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8"}
	var qs []questionbank.Question
	for i, topic := range topics {
		// topic Tn contributes n+1 missed easy questions
		for j := 0; j <= i; j++ {
			qs = append(qs, topicQ(topic, questionbank.DifficultyEasy, "A"))
		}
	}
	sections := []Section{{Config: defaultConfig(), Questions: qs}}

	ranked := RankMissedOpportunities(sections, Submission{}, false)

	assert.Len(t, ranked, 6)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].MissedEasy, ranked[i].MissedEasy, "list must be sorted descending")
	}
	assert.Equal(t, "T8", ranked[0].Topic)
}

func TestRankMissedOpportunitiesBackfill(t *testing.T) {
	sections := []Section{{
		Config: defaultConfig(), // QA
		Questions: questionList(
			topicQ("Algebra", questionbank.DifficultyEasy, "A"),
		),
	}}

	ranked := RankMissedOpportunities(sections, Submission{}, true)

	present := map[string]bool{}
	for _, e := range ranked {
		present[e.Section] = true
	}
	assert.True(t, present[questionbank.SectionQA])
	assert.True(t, present[questionbank.SectionVARC], "full mock rankings must cover every section")
	assert.True(t, present[questionbank.SectionLRDI])
	assert.LessOrEqual(t, len(ranked), 6)
}

func sectionsPresent(sections []string) map[string]bool {
	present := map[string]bool{}
	for _, s := range sections {
		present[s] = true
	}
	return present
}

func TestRankMissedOpportunitiesBackfillFullList(t *testing.T) {
	// Six topics, all in one section, fill the list on their own. Both
	// other sections still have to make it in, so two entries get trimmed
	// for two placeholders.
	var qs []questionbank.Question
	for i, topic := range []string{"T1", "T2", "T3", "T4", "T5", "T6"} {
		for j := 0; j <= i; j++ {
			qs = append(qs, topicQ(topic, questionbank.DifficultyEasy, "A"))
		}
	}
	sections := []Section{{Config: defaultConfig(), Questions: qs}}

	ranked := RankMissedOpportunities(sections, Submission{}, true)

	assert.Len(t, ranked, 6)
	got := make([]string, 0, len(ranked))
	for _, e := range ranked {
		got = append(got, e.Section)
	}
	present := sectionsPresent(got)
	assert.True(t, present[questionbank.SectionQA])
	assert.True(t, present[questionbank.SectionVARC])
	assert.True(t, present[questionbank.SectionLRDI])

	// The four highest-count topics survive the trim
	assert.Equal(t, "T6", ranked[0].Topic)
	assert.Equal(t, "T3", ranked[3].Topic)
}

func TestRankTimeWastersBackfillFullList(t *testing.T) {
	topics := []string{"T1", "T2", "T3", "T4", "T5", "T6"}
	var qs []questionbank.Question
	answers := map[int]string{}
	times := map[int]float64{}
	for i, topic := range topics {
		qs = append(qs, topicQ(topic, questionbank.DifficultyEasy, "A"))
		answers[i] = "A"
		times[i] = 200 - float64(i)*10
	}
	sections := []Section{{Config: defaultConfig(), Questions: qs}}
	sub := Submission{
		Answers:       map[int]map[int]string{0: answers},
		QuestionTimes: map[int]map[int]float64{0: times},
	}

	ranked := RankTimeWasters(sections, sub, true)

	assert.Len(t, ranked, 6)
	got := make([]string, 0, len(ranked))
	for _, e := range ranked {
		got = append(got, e.Section)
	}
	present := sectionsPresent(got)
	assert.True(t, present[questionbank.SectionQA])
	assert.True(t, present[questionbank.SectionVARC])
	assert.True(t, present[questionbank.SectionLRDI])

	assert.Equal(t, "T1", ranked[0].Topic)
	assert.Equal(t, 200.0, ranked[0].AvgTime)
}

func TestRankTimeWasters(t *testing.T) {
	sections := []Section{{
		Config: defaultConfig(),
		Questions: questionList(
			topicQ("Algebra", questionbank.DifficultyEasy, "A"),    // 120s on a 45s question
			topicQ("Geometry", questionbank.DifficultyEasy, "B"),   // 60s on a 45s question
			topicQ("Arithmetic", questionbank.DifficultyEasy, "C"), // 30s, not a waster
		),
	}}
	sub := Submission{
		Answers:       map[int]map[int]string{0: {0: "A", 1: "B", 2: "C"}},
		QuestionTimes: map[int]map[int]float64{0: {0: 120, 1: 60, 2: 30}},
	}

	ranked := RankTimeWasters(sections, sub, false)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "Algebra", ranked[0].Topic)
	assert.Equal(t, "Low", ranked[0].Efficiency, "more than 1.5x optimal")
	assert.Equal(t, 120.0, ranked[0].AvgTime)
	assert.Equal(t, 45.0, ranked[0].OptimalTime)

	assert.Equal(t, "Geometry", ranked[1].Topic)
	assert.Equal(t, "Medium", ranked[1].Efficiency, "between 1.2x and 1.5x optimal")
}

func TestRankTimeWastersSkipsUntimedAndFast(t *testing.T) {
	sections := []Section{{
		Config: defaultConfig(),
		Questions: questionList(
			topicQ("Algebra", questionbank.DifficultyHard, "A"),
			topicQ("Geometry", questionbank.DifficultyMedium, "B"),
		),
	}}
	// Hard question answered in 100s (under the 120s expectation), medium
	// answered without timing data
	sub := Submission{
		Answers:       map[int]map[int]string{0: {0: "A", 1: "B"}},
		QuestionTimes: map[int]map[int]float64{0: {0: 100}},
	}

	ranked := RankTimeWasters(sections, sub, false)

	assert.Empty(t, ranked)
}
