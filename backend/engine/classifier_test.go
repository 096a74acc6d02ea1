package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	conf := defaultConfig()

	cases := []struct {
		name      string
		status    Status
		timeSpent *float64
		want      TimeClass
	}{
		{"correct within threshold", StatusCorrect, floatPtr(90), TimeClassOptimalCorrect},
		{"correct over threshold", StatusCorrect, floatPtr(90.5), TimeClassLongerCorrect},
		{"correct without time", StatusCorrect, nil, TimeClassOptimalCorrect},
		{"incorrect within threshold", StatusIncorrect, floatPtr(60), TimeClassQuickIncorrect},
		{"incorrect over threshold", StatusIncorrect, floatPtr(61), TimeClassLongIncorrect},
		{"incorrect without time", StatusIncorrect, nil, TimeClassQuickIncorrect},
		{"skipped", StatusSkipped, floatPtr(120), TimeClassSkipped},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.status, tc.timeSpent, conf))
		})
	}
}

func TestSectionOutcomes(t *testing.T) {
	sec := Section{
		Config:    defaultConfig(),
		Questions: questionList(mcq("A"), mcq("B"), tita("7")),
	}
	answers := map[int]string{0: "A", 1: "X"}
	times := map[int]float64{0: 45, 1: 100}

	outcomes := SectionOutcomes(sec, answers, times)

	assert.Len(t, outcomes, 3)

	assert.Equal(t, 1, outcomes[0].Number)
	assert.Equal(t, StatusCorrect, outcomes[0].Status)
	assert.Equal(t, TimeClassOptimalCorrect, outcomes[0].TimeClass)
	assert.Equal(t, "A", *outcomes[0].UserAnswer)

	assert.Equal(t, StatusIncorrect, outcomes[1].Status)
	assert.Equal(t, TimeClassLongIncorrect, outcomes[1].TimeClass)

	assert.Equal(t, StatusSkipped, outcomes[2].Status)
	assert.Equal(t, TimeClassSkipped, outcomes[2].TimeClass)
	assert.Nil(t, outcomes[2].UserAnswer)
	assert.Nil(t, outcomes[2].TimeSpent)
}
