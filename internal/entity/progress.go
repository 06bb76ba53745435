package entity

import "time"

// Mastery thresholds. Accuracy is all-time Correct/Attempts, so a word must
// keep its ratio up as history accumulates, not just hit a streak.
const (
	practicedMinAttempts = 3
	practicedMinAccuracy = 0.6
	masteredMinAttempts  = 5
	masteredMinAccuracy  = 0.8
)

// WordProgress tracks the learner's history with a single word.
type WordProgress struct {
	Word         string       `json:"word"`
	Attempts     int          `json:"attempts"`
	Correct      int          `json:"correct"`
	Accuracy     float64      `json:"accuracy"`
	LastSeen     time.Time    `json:"last_seen"` // zero means never answered
	MasteryLevel MasteryLevel `json:"mastery_level"`
	IntroducedAt time.Time    `json:"introduced_at"`
}

// NewWordProgress returns the fresh record for a word entering the active pool.
func NewWordProgress(word string, now time.Time) WordProgress {
	return WordProgress{
		Word:         word,
		MasteryLevel: MasteryLearning,
		IntroducedAt: now,
	}
}

// Record applies one answer outcome. Counters, accuracy and the mastery level
// are all recomputed from the updated totals, never from stale values.
func (p *WordProgress) Record(correct bool, now time.Time) {
	p.Attempts++
	if correct {
		p.Correct++
	}
	p.Accuracy = float64(p.Correct) / float64(p.Attempts)
	p.LastSeen = now
	p.MasteryLevel = nextMastery(p.MasteryLevel, p.Attempts, p.Accuracy)
}

// Answered reports whether the word has ever been presented and answered.
func (p WordProgress) Answered() bool {
	return p.Attempts > 0
}

// nextMastery re-runs both threshold tests against the current totals.
// A word can fall from mastered back to practiced when its all-time accuracy
// drops below the mastered bar, but it never falls back to learning.
func nextMastery(current MasteryLevel, attempts int, accuracy float64) MasteryLevel {
	switch {
	case attempts >= masteredMinAttempts && accuracy >= masteredMinAccuracy:
		return MasteryMastered
	case attempts >= practicedMinAttempts && accuracy >= practicedMinAccuracy:
		return MasteryPracticed
	default:
		return current
	}
}
