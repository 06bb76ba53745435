package usecase

import (
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/fluentloop/smartvocab/internal/entity"
)

// Engine defaults. PoolSize-style limits are passed per call (the caller owns
// the pool ceiling); these only tune the policy itself.
const (
	defaultExpandBatch       = 3
	defaultReviewProbability = 0.2

	// expandMaturedRatio is the fraction of the active pool that must be
	// practiced or mastered before new words are admitted. Words never
	// answered count against the ratio, which stalls expansion until most
	// of the pool has matured.
	expandMaturedRatio = 0.7
)

// Rand is the source of randomness for selection decisions. *rand.Rand
// satisfies it; tests substitute a deterministic fake to pin down outcomes.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// LearningConfig tunes a learning usecase. Zero values become defaults.
type LearningConfig struct {
	ExpandBatch       int              // words admitted per expansion; zero → 3
	ReviewProbability float64          // chance of a mastered-word review; zero → 0.2
	Clock             func() time.Time // zero → time.Now
	Rand              Rand             // zero → process-level math/rand source
}

// LearningUsecase is the adaptive word-selection engine. It is stateless:
// every operation takes the learner's state snapshot explicitly and returns a
// new value, so one instance can serve any number of learner sessions. The
// caller persists the returned state after each mutating call.
//
// The usecase is generic over the vocabulary entry type E and reads entries
// through the key function injected at construction, so it never depends on
// one language's field layout. Vocabulary slices are frequency-ordered and
// stable for the duration of a session; the active pool is always a prefix.
type LearningUsecase[E any] interface {
	// Initialize admits min(poolSize, len(vocab)) words from the front of the
	// vocabulary and returns a fresh state. An empty vocabulary yields a
	// state with an empty pool.
	Initialize(vocab []E, poolSize int) entity.LearningState

	// RecordOutcome applies one answer for wordKey and returns the updated
	// state. Unknown keys are tolerated: a fresh record is created rather
	// than the call rejected.
	RecordOutcome(st entity.LearningState, wordKey string, correct bool) entity.LearningState

	// ShouldExpand reports whether the active pool has matured enough
	// (≥70% practiced or mastered) to admit new words. Always false once the
	// vocabulary is exhausted.
	ShouldExpand(st entity.LearningState, vocab []E) bool

	// Expand admits up to ExpandBatch new words, bounded by the remaining
	// vocabulary and by poolSize relative to the tracked-word count. A no-op
	// expansion returns the state unchanged.
	Expand(st entity.LearningState, vocab []E, poolSize int) entity.LearningState

	// SelectNext picks the word to present next. It reports false when the
	// active pool is empty. Selection never mutates state.
	SelectNext(st entity.LearningState, vocab []E) (E, bool)

	// Stats derives aggregate progress metrics from the state.
	Stats(st entity.LearningState) entity.LearningStats
}

// NewLearningUsecase builds the engine for entries of type E, identified by
// the given key function.
func NewLearningUsecase[E any](key func(E) string, cfg LearningConfig) LearningUsecase[E] {
	batch := cfg.ExpandBatch
	if batch <= 0 {
		batch = defaultExpandBatch
	}
	reviewProb := cfg.ReviewProbability
	if reviewProb == 0 {
		reviewProb = defaultReviewProbability
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &smartLearning[E]{
		key:        key,
		batch:      batch,
		reviewProb: reviewProb,
		clock:      clock,
		rand:       rng,
	}
}

type smartLearning[E any] struct {
	key        func(E) string
	batch      int
	reviewProb float64
	clock      func() time.Time
	rand       Rand
}

func (u *smartLearning[E]) Initialize(vocab []E, poolSize int) entity.LearningState {
	if poolSize < 1 {
		poolSize = 1
	}
	now := u.clock()
	st := entity.NewLearningState(now)

	admit := poolSize
	if admit > len(vocab) {
		admit = len(vocab)
	}
	for _, e := range vocab[:admit] {
		k := u.key(e)
		st.WordProgress[k] = entity.NewWordProgress(k, now)
	}
	st.CurrentWordIndex = admit
	st.TotalWordsIntroduced = admit
	return st
}

func (u *smartLearning[E]) RecordOutcome(st entity.LearningState, wordKey string, correct bool) entity.LearningState {
	now := u.clock()
	next := st.Clone()

	p, ok := next.WordProgress[wordKey]
	if !ok {
		// Answer for a word the pool never admitted: track it rather than
		// drop the outcome.
		p = entity.NewWordProgress(wordKey, now)
	}
	p.Record(correct, now)
	next.WordProgress[wordKey] = p
	return next
}

func (u *smartLearning[E]) ShouldExpand(st entity.LearningState, vocab []E) bool {
	if st.CurrentWordIndex >= len(vocab) {
		return false
	}
	tracked := len(st.WordProgress)
	if tracked == 0 {
		// Nothing to mature yet; let a degenerate empty pool grow.
		return true
	}
	matured := lo.CountBy(lo.Values(st.WordProgress), func(p entity.WordProgress) bool {
		return p.MasteryLevel.Matured()
	})
	return float64(matured)/float64(tracked) >= expandMaturedRatio
}

func (u *smartLearning[E]) Expand(st entity.LearningState, vocab []E, poolSize int) entity.LearningState {
	admit := u.batch
	if remaining := len(vocab) - st.CurrentWordIndex; remaining < admit {
		admit = remaining
	}
	// Ceiling is relative to the tracked-word count, not the index, so a
	// future retirement feature keeps working.
	if capacity := poolSize - st.Tracked(); capacity < admit {
		admit = capacity
	}
	if admit <= 0 {
		return st
	}

	now := u.clock()
	next := st.Clone()
	for _, e := range vocab[st.CurrentWordIndex : st.CurrentWordIndex+admit] {
		k := u.key(e)
		next.WordProgress[k] = entity.NewWordProgress(k, now)
	}
	next.CurrentWordIndex += admit
	next.TotalWordsIntroduced += admit
	return next
}

// candidate pairs an active vocabulary entry with its effective progress.
type candidate[E any] struct {
	entry    E
	progress entity.WordProgress
}

func (u *smartLearning[E]) SelectNext(st entity.LearningState, vocab []E) (E, bool) {
	var zero E

	active := st.CurrentWordIndex
	if active > len(vocab) {
		active = len(vocab)
	}
	if active <= 0 {
		return zero, false
	}

	// Partition the active prefix by mastery level, preserving vocabulary
	// order so ties resolve to the more frequent word.
	buckets := make(map[entity.MasteryLevel][]candidate[E], 3)
	for _, e := range vocab[:active] {
		k := u.key(e)
		p, ok := st.WordProgress[k]
		if !ok {
			// Active word without a record: treat as untouched.
			p = entity.NewWordProgress(k, time.Time{})
		}
		level := p.MasteryLevel
		if !level.Valid() {
			level = entity.MasteryLearning
		}
		buckets[level] = append(buckets[level], candidate[E]{entry: e, progress: p})
	}
	mastered := buckets[entity.MasteryMastered]

	// Review injection: occasionally re-present the least-recently-seen
	// mastered word to reinforce retention.
	if len(mastered) > 0 && u.rand.Float64() < u.reviewProb {
		best := lo.MinBy(mastered, func(a, b candidate[E]) bool {
			return a.progress.LastSeen.Before(b.progress.LastSeen)
		})
		return best.entry, true
	}

	// Otherwise drill the weakest word: learning words first, then practiced.
	pool := buckets[entity.MasteryLearning]
	if len(pool) == 0 {
		pool = buckets[entity.MasteryPracticed]
	}
	if len(pool) > 0 {
		best := lo.MinBy(pool, func(a, b candidate[E]) bool {
			return a.progress.Accuracy < b.progress.Accuracy
		})
		return best.entry, true
	}

	// Everything active is mastered: keep the session going with a uniform
	// random pick.
	if len(mastered) > 0 {
		return mastered[u.rand.Intn(len(mastered))].entry, true
	}
	return zero, false
}

func (u *smartLearning[E]) Stats(st entity.LearningState) entity.LearningStats {
	stats := entity.LearningStats{Total: st.Tracked()}
	if stats.Total == 0 {
		return stats
	}
	sum := 0.0
	for _, p := range st.WordProgress {
		switch p.MasteryLevel {
		case entity.MasteryMastered:
			stats.Mastered++
		case entity.MasteryPracticed:
			stats.Practiced++
		default:
			stats.Learning++
		}
		sum += p.Accuracy
	}
	stats.OverallAccuracy = sum / float64(stats.Total)
	return stats
}
