package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState(t *testing.T) LearningState {
	t.Helper()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	st := NewLearningState(now)
	for i, term := range []string{"der", "die", "das"} {
		p := NewWordProgress(term, now)
		for j := 0; j <= i; j++ {
			p.Record(j%2 == 0, now.Add(time.Duration(j)*time.Minute))
		}
		st.WordProgress[term] = p
	}
	st.CurrentWordIndex = 3
	st.TotalWordsIntroduced = 3
	return st
}

func TestCloneIsDeep(t *testing.T) {
	st := sampleState(t)
	clone := st.Clone()

	p := clone.WordProgress["der"]
	p.Record(false, time.Now())
	clone.WordProgress["der"] = p
	clone.CurrentWordIndex = 99

	assert.Equal(t, 3, st.CurrentWordIndex)
	assert.Equal(t, 1, st.WordProgress["der"].Attempts,
		"mutating the clone must not touch the original")
	assert.Equal(t, st.Tracked(), clone.Tracked())
}

func TestStateJSONRoundTrip(t *testing.T) {
	st := sampleState(t)

	data, err := json.Marshal(st)
	require.NoError(t, err)

	var got LearningState
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, st.CurrentWordIndex, got.CurrentWordIndex)
	assert.Equal(t, st.TotalWordsIntroduced, got.TotalWordsIntroduced)
	assert.True(t, st.SessionStarted.Equal(got.SessionStarted))
	require.Len(t, got.WordProgress, len(st.WordProgress))
	for term, want := range st.WordProgress {
		have, ok := got.WordProgress[term]
		require.True(t, ok, "missing %q after round trip", term)
		assert.Equal(t, want.Attempts, have.Attempts)
		assert.Equal(t, want.Correct, have.Correct)
		assert.Equal(t, want.Accuracy, have.Accuracy)
		assert.Equal(t, want.MasteryLevel, have.MasteryLevel)
		assert.True(t, want.LastSeen.Equal(have.LastSeen))
		assert.True(t, want.IntroducedAt.Equal(have.IntroducedAt))
	}
}

func TestParseMasteryLevel(t *testing.T) {
	assert.Equal(t, MasteryMastered, ParseMasteryLevel(" Mastered "))
	assert.Equal(t, MasteryLearning, ParseMasteryLevel("unknown"))
	assert.False(t, MasteryLevel("expert").Valid())
	assert.True(t, MasteryPracticed.Matured())
	assert.False(t, MasteryLearning.Matured())
}
