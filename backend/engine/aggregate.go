package engine

import "catprep/backend/questionbank"

// TopicAggregate counts one topic's outcomes within a section.
type TopicAggregate struct {
	Total      int `json:"total"`
	Attempted  int `json:"attempted"`
	Correct    int `json:"correct"`
	EasyMissed int `json:"easy_missed"`
}

// TopicStats keeps topic aggregates in first-seen order so that insight
// text and rankings come out the same on every run over the same input.
type TopicStats struct {
	order  []string
	byName map[string]*TopicAggregate
}

func newTopicStats() *TopicStats {
	return &TopicStats{byName: make(map[string]*TopicAggregate)}
}

func (t *TopicStats) get(topic string) *TopicAggregate {
	agg, ok := t.byName[topic]
	if !ok {
		agg = &TopicAggregate{}
		t.byName[topic] = agg
		t.order = append(t.order, topic)
	}
	return agg
}

// Topics returns topic names in first-seen order.
func (t *TopicStats) Topics() []string {
	return t.order
}

// Get looks up a topic's aggregate, nil if the topic never appeared.
func (t *TopicStats) Get(topic string) *TopicAggregate {
	return t.byName[topic]
}

// AggregateTopics walks one section's questions and groups outcomes by
// topic: totals, attempts, correct answers, and easy questions left
// unattempted.
func AggregateTopics(questions []questionbank.Question, answers map[int]string) *TopicStats {
	stats := newTopicStats()

	for i, q := range questions {
		topic := q.Topic
		if topic == "" {
			topic = "Unknown Topic"
		}
		agg := stats.get(topic)
		agg.Total++

		ans, attempted := answers[i]
		if attempted {
			agg.Attempted++
			if IsCorrect(q, ans) {
				agg.Correct++
			}
		} else if q.Difficulty == questionbank.DifficultyEasy {
			agg.EasyMissed++
		}
	}

	return stats
}

type topicCount struct {
	Topic string
	Count int
}

// overallSelection summarizes question selection strategy across all
// sections of a full mock.
type overallSelection struct {
	TotalEasy        int
	TotalMedium      int
	TotalHard        int
	AttemptedEasy    int
	AttemptedMedium  int
	AttemptedHard    int
	EasyAttemptPct   float64
	MediumAttemptPct float64
	HardAttemptPct   float64
	AvgEasyTime      float64
	AvgHardTime      float64
	// true when the learner spent less time per easy question than per
	// hard one, i.e. prioritized in the right direction.
	TimePriorityCorrect bool
}

func analyzeOverallSelection(sections []Section, sub Submission) overallSelection {
	var m overallSelection
	var easyTimes, hardTimes []float64

	for secIdx, sec := range sections {
		answers := sub.SectionAnswers(secIdx)
		times := sub.SectionTimesSpent(secIdx)

		for i, q := range sec.Questions {
			_, attempted := answers[i]
			t, hasTime := times[i]

			switch q.Difficulty {
			case questionbank.DifficultyEasy:
				m.TotalEasy++
				if attempted {
					m.AttemptedEasy++
					if hasTime && t > 0 {
						easyTimes = append(easyTimes, t)
					}
				}
			case questionbank.DifficultyMedium:
				m.TotalMedium++
				if attempted {
					m.AttemptedMedium++
				}
			case questionbank.DifficultyHard:
				m.TotalHard++
				if attempted {
					m.AttemptedHard++
					if hasTime && t > 0 {
						hardTimes = append(hardTimes, t)
					}
				}
			}
		}
	}

	m.EasyAttemptPct = pct(m.AttemptedEasy, m.TotalEasy)
	m.MediumAttemptPct = pct(m.AttemptedMedium, m.TotalMedium)
	m.HardAttemptPct = pct(m.AttemptedHard, m.TotalHard)
	m.AvgEasyTime = mean(easyTimes)
	m.AvgHardTime = mean(hardTimes)
	m.TimePriorityCorrect = m.AvgEasyTime > 0 && m.AvgHardTime > 0 && m.AvgEasyTime < m.AvgHardTime

	return m
}

// sectionSelection summarizes selection strategy within one section.
type sectionSelection struct {
	Name             string
	ShortName        string
	TotalEasy        int
	TotalMedium      int
	TotalHard        int
	AttemptedEasy    int
	AttemptedMedium  int
	AttemptedHard    int
	EasyAttemptPct   float64
	MediumAttemptPct float64
	UnattemptedEasy  int
	StrongTopics     []string
	MissedEasyTopics []topicCount
	Topics           *TopicStats
}

// Strong-topic thresholds. Sectional tests have fewer questions per topic,
// so both the attempt floor and the accuracy bar are lower.
const (
	strongMinAttemptedFull      = 3
	strongMinAccuracyFull       = 75.0
	strongMinAttemptedSectional = 2
	strongMinAccuracySectional  = 70.0
)

func analyzeSectionSelection(sec Section, answers map[int]string, sectional bool) sectionSelection {
	m := sectionSelection{
		Name:      sec.Config.Name,
		ShortName: sec.Config.ShortName,
		Topics:    AggregateTopics(sec.Questions, answers),
	}

	for i, q := range sec.Questions {
		_, attempted := answers[i]
		switch q.Difficulty {
		case questionbank.DifficultyEasy:
			m.TotalEasy++
			if attempted {
				m.AttemptedEasy++
			}
		case questionbank.DifficultyMedium:
			m.TotalMedium++
			if attempted {
				m.AttemptedMedium++
			}
		case questionbank.DifficultyHard:
			m.TotalHard++
			if attempted {
				m.AttemptedHard++
			}
		}
	}

	m.EasyAttemptPct = pct(m.AttemptedEasy, m.TotalEasy)
	m.MediumAttemptPct = pct(m.AttemptedMedium, m.TotalMedium)
	m.UnattemptedEasy = m.TotalEasy - m.AttemptedEasy

	minAttempted, minAccuracy := strongMinAttemptedFull, strongMinAccuracyFull
	if sectional {
		minAttempted, minAccuracy = strongMinAttemptedSectional, strongMinAccuracySectional
	}

	for _, topic := range m.Topics.Topics() {
		perf := m.Topics.Get(topic)
		if perf.Attempted >= minAttempted && pct(perf.Correct, perf.Attempted) >= minAccuracy {
			m.StrongTopics = append(m.StrongTopics, topic)
		}
		if perf.EasyMissed > 0 {
			m.MissedEasyTopics = append(m.MissedEasyTopics, topicCount{Topic: topic, Count: perf.EasyMissed})
		}
	}

	return m
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
