package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireSubmissionParse(t *testing.T) {
	payload := `{
		"test_id": "3",
		"answers": {
			"0": {"0": {"answer": "A"}, "1": {"answer": null}, "x": {"answer": "B"}},
			"1": {"2": {"answer": "42"}}
		},
		"times": [3600, null, 1200],
		"question_times": {
			"0": {"0": 45.5, "1": null},
			"bad": {"0": 10}
		}
	}`

	var wire WireSubmission
	require.NoError(t, json.Unmarshal([]byte(payload), &wire))

	sub := wire.Parse()

	assert.Equal(t, map[int]string{0: "A"}, sub.Answers[0], "null answers and non-integer keys are dropped")
	assert.Equal(t, map[int]string{2: "42"}, sub.Answers[1])

	assert.Equal(t, map[int]float64{0: 45.5}, sub.QuestionTimes[0])
	assert.Len(t, sub.QuestionTimes, 1, "sections with non-integer keys are ignored")

	require.Len(t, sub.SectionTimes, 3)
	assert.Equal(t, 3600.0, *sub.SectionTimes[0])
	assert.Nil(t, sub.SectionTimes[1])
}

func TestWireSubmissionParseEmpty(t *testing.T) {
	sub := WireSubmission{}.Parse()

	assert.Empty(t, sub.Answers)
	assert.Empty(t, sub.QuestionTimes)
}
