package entity

import "time"

// LearningState is the engine's full snapshot for one learner+language pair.
// Engine operations treat it as a value: anything that changes it works on a
// clone and returns the clone, so a persisted snapshot is never half-updated.
//
// CurrentWordIndex counts how many entries of the frequency-ordered
// vocabulary have been admitted; the prefix vocabulary[0:CurrentWordIndex]
// is the active pool. WordProgress holds exactly the active prefix's records,
// keyed by word term. Since words are never retired,
// len(WordProgress) == CurrentWordIndex and
// TotalWordsIntroduced == CurrentWordIndex hold throughout; the fields are
// kept separate so a retirement feature would not need a format change.
type LearningState struct {
	CurrentWordIndex     int                     `json:"current_word_index"`
	WordProgress         map[string]WordProgress `json:"word_progress"`
	SessionStarted       time.Time               `json:"session_started"`
	TotalWordsIntroduced int                     `json:"total_words_introduced"`
}

// NewLearningState returns an empty state created at now.
func NewLearningState(now time.Time) LearningState {
	return LearningState{
		WordProgress:   make(map[string]WordProgress),
		SessionStarted: now,
	}
}

// Clone returns a deep copy; the progress map is never shared between the
// copy and the original.
func (s LearningState) Clone() LearningState {
	out := s
	out.WordProgress = make(map[string]WordProgress, len(s.WordProgress))
	for k, v := range s.WordProgress {
		out.WordProgress[k] = v
	}
	return out
}

// Tracked returns the number of words with a progress record.
func (s LearningState) Tracked() int {
	return len(s.WordProgress)
}

// LearningStats aggregates progress for display. The three level counts
// partition Total. OverallAccuracy is the unweighted mean of per-word
// accuracies: every word counts equally regardless of how often it was asked.
type LearningStats struct {
	Total           int     `json:"total"`
	Learning        int     `json:"learning"`
	Practiced       int     `json:"practiced"`
	Mastered        int     `json:"mastered"`
	OverallAccuracy float64 `json:"overall_accuracy"`
}
