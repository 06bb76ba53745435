package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var progressT0 = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

// apply records a sequence of outcomes, advancing the clock between answers.
func apply(p *WordProgress, outcomes ...bool) {
	now := progressT0
	for _, correct := range outcomes {
		now = now.Add(time.Minute)
		p.Record(correct, now)
	}
}

func TestNewWordProgress(t *testing.T) {
	p := NewWordProgress("haus", progressT0)
	assert.Equal(t, "haus", p.Word)
	assert.Zero(t, p.Attempts)
	assert.Zero(t, p.Correct)
	assert.Zero(t, p.Accuracy)
	assert.Equal(t, MasteryLearning, p.MasteryLevel)
	assert.Equal(t, progressT0, p.IntroducedAt)
	assert.True(t, p.LastSeen.IsZero(), "fresh word must count as never answered")
	assert.False(t, p.Answered())
}

func TestRecordKeepsCountersConsistent(t *testing.T) {
	p := NewWordProgress("haus", progressT0)
	outcomes := []bool{true, false, true, true, false, false, true}

	correct := 0
	for i, outcome := range outcomes {
		p.Record(outcome, progressT0.Add(time.Duration(i)*time.Minute))
		if outcome {
			correct++
		}

		require.Equal(t, i+1, p.Attempts)
		require.Equal(t, correct, p.Correct)
		require.GreaterOrEqual(t, p.Attempts, p.Correct)
		require.InDelta(t, float64(correct)/float64(i+1), p.Accuracy, 1e-12)
	}
	assert.True(t, p.Answered())
}

func TestRecordUpdatesLastSeen(t *testing.T) {
	p := NewWordProgress("haus", progressT0)
	answeredAt := progressT0.Add(2 * time.Hour)
	p.Record(true, answeredAt)
	assert.Equal(t, answeredAt, p.LastSeen)
}

func TestMasteryTransitions(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []bool
		want     MasteryLevel
	}{
		{"untouched stays learning", nil, MasteryLearning},
		{"two correct too few attempts", []bool{true, true}, MasteryLearning},
		{"three correct reaches practiced", []bool{true, true, true}, MasteryPracticed},
		{"three attempts at 2/3 reaches practiced", []bool{true, false, true}, MasteryPracticed},
		{"three attempts at 1/3 stays learning", []bool{false, false, true}, MasteryLearning},
		{"five correct reaches mastered", []bool{true, true, true, true, true}, MasteryMastered},
		{"four of five reaches mastered", []bool{true, true, true, true, false}, MasteryMastered},
		{"five attempts at 0.6 only practiced", []bool{true, true, true, false, false}, MasteryPracticed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewWordProgress("w", progressT0)
			apply(&p, tt.outcomes...)
			assert.Equal(t, tt.want, p.MasteryLevel)
		})
	}
}

func TestMasteredWordAccuracyIsPerfectAfterFiveCorrect(t *testing.T) {
	p := NewWordProgress("w0", progressT0)
	apply(&p, true, true, true, true, true)
	assert.Equal(t, MasteryMastered, p.MasteryLevel)
	assert.Equal(t, 1.0, p.Accuracy)
}

func TestMasteryDemotionToPracticed(t *testing.T) {
	p := NewWordProgress("w", progressT0)
	apply(&p, true, true, true, true, true)
	require.Equal(t, MasteryMastered, p.MasteryLevel)

	// Sustained misses drag the all-time accuracy below the mastered bar but
	// above the practiced bar: 5/7 ≈ 0.714.
	apply(&p, false, false)
	assert.Equal(t, MasteryPracticed, p.MasteryLevel)
}

func TestMasteryNeverFallsBackToLearning(t *testing.T) {
	p := NewWordProgress("w", progressT0)
	apply(&p, true, true, true, true, true)
	require.Equal(t, MasteryMastered, p.MasteryLevel)

	// Drive the accuracy below even the practiced bar: 5/10 = 0.5.
	apply(&p, false, false, false, false, false)
	assert.Equal(t, MasteryPracticed, p.MasteryLevel,
		"a word that was ever mastered keeps at least practiced")
}

func TestMaturedRequiresThreeAttempts(t *testing.T) {
	// Invariant: every word past learning has at least three attempts.
	p := NewWordProgress("w", progressT0)
	for i := 0; i < 20; i++ {
		apply(&p, i%3 != 0)
		if p.MasteryLevel != MasteryLearning {
			assert.GreaterOrEqual(t, p.Attempts, 3)
		}
	}
}
