package profilersdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillAnswers returns a complete answer set with every item set to v, then
// applies the overrides.
func fillAnswers(v int, overrides map[string]int) map[string]int {
	answers := make(map[string]int)
	for _, it := range DefaultAttitudeItems() {
		answers[it.ID] = v
	}
	for id, ov := range overrides {
		answers[id] = ov
	}
	return answers
}

func TestReverseAnswerInvolution(t *testing.T) {
	for v := 0; v <= 2; v++ {
		assert.Equal(t, v, ReverseAnswer(ReverseAnswer(v)))
	}
	assert.Equal(t, 2, ReverseAnswer(0))
	assert.Equal(t, 1, ReverseAnswer(1))
	assert.Equal(t, 0, ReverseAnswer(2))
}

func TestAggregateAttitudeAltMedScenario(t *testing.T) {
	// Every alternative-medicine item agreed with, everything else denied.
	answers := make(map[string]int)
	for _, it := range DefaultAttitudeItems() {
		if it.Scale == ScaleAltMed {
			answers[it.ID] = 2
		} else {
			answers[it.ID] = 0
		}
	}

	sums, err := AggregateAttitude(answers, DefaultAttitudeItems())
	require.NoError(t, err)

	assert.Equal(t, 14, sums[ScaleAltMed])
	// Reverse items turn a 0 into a 2, so scales with one reverse item land
	// on 2, not 0.
	assert.Equal(t, 2, sums[ScaleAnxiety])
	assert.Equal(t, 2, sums[ScaleIgnore])
	assert.Equal(t, 2, sums[ScaleWorkEscape])
	assert.Equal(t, 2, sums[ScaleSecondaryGain])
	assert.Equal(t, 0, sums[ScaleLowSelfesteem])
}

func TestAggregateAttitudeNegativeWeights(t *testing.T) {
	// a31 and a34 carry weight -1; agreeing with them lowers the
	// low-selfesteem sum below zero.
	answers := fillAnswers(0, map[string]int{"a31": 2, "a34": 2})

	sums, err := AggregateAttitude(answers, DefaultAttitudeItems())
	require.NoError(t, err)
	assert.Equal(t, -4, sums[ScaleLowSelfesteem])
}

func TestAggregateAttitudeValidation(t *testing.T) {
	items := DefaultAttitudeItems()

	t.Run("incomplete answer set", func(t *testing.T) {
		answers := fillAnswers(1, nil)
		delete(answers, "a01")
		_, err := AggregateAttitude(answers, items)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, SurveyAttitude, vErr.Survey)
	})

	t.Run("unknown item id", func(t *testing.T) {
		answers := fillAnswers(1, nil)
		delete(answers, "a01")
		answers["a99"] = 1
		_, err := AggregateAttitude(answers, items)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("answer outside domain", func(t *testing.T) {
		for _, bad := range []int{-1, 3} {
			answers := fillAnswers(1, map[string]int{"a02": bad})
			_, err := AggregateAttitude(answers, items)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		}
	})
}
