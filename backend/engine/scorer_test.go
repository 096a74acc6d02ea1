package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSectionMCQOnly(t *testing.T) {
	qs := questionList(mcq("A"), mcq("B"), mcq("C"), mcq("D"), mcq("A"))
	answers := map[int]string{0: "A", 1: "B", 2: "X", 4: "A"}

	result := ScoreSection(qs, answers)

	assert.Equal(t, 8, result.Score)
	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 1, result.Wrong)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 15, result.TotalPossible)
}

func TestScoreSectionTITANoPenalty(t *testing.T) {
	qs := questionList(tita("10"), tita("20"))
	answers := map[int]string{0: "10", 1: "99"}

	result := ScoreSection(qs, answers)

	assert.Equal(t, 3, result.Score, "wrong TITA contributes 0, never -1")
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 1, result.Wrong)
	assert.Equal(t, 6, result.TotalPossible)
}

func TestScoreSectionAllSkipped(t *testing.T) {
	qs := questionList(mcq("A"), tita("5"), mcq("B"))

	result := ScoreSection(qs, nil)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 0, result.Wrong)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 9, result.TotalPossible)
}

func TestScoreSectionIdempotent(t *testing.T) {
	qs := questionList(mcq("A"), mcq("B"), tita("3.14"))
	answers := map[int]string{0: "A", 1: "C", 2: "3.1405"}

	first := ScoreSection(qs, answers)
	second := ScoreSection(qs, answers)

	assert.Equal(t, first, second)
}
