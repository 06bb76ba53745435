package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/repository"
)

type memorySnapshotRepository struct {
	mu    sync.RWMutex
	items map[repository.SnapshotKey]string
}

// NewMemorySnapshotRepository keeps snapshots in process memory, for tests
// and throwaway sessions. It still round-trips the state through JSON so it
// exercises exactly the encoding the sqlite store persists.
func NewMemorySnapshotRepository() repository.SnapshotRepository {
	return &memorySnapshotRepository{items: make(map[repository.SnapshotKey]string)}
}

func (r *memorySnapshotRepository) Load(ctx context.Context, key repository.SnapshotKey) (entity.LearningState, error) {
	if err := ctx.Err(); err != nil {
		return entity.LearningState{}, err
	}
	if err := validateKey(key); err != nil {
		return entity.LearningState{}, err
	}
	r.mu.RLock()
	raw, ok := r.items[normalizeKey(key)]
	r.mu.RUnlock()
	if !ok {
		return entity.LearningState{}, entity.ErrSnapshotNotFound
	}
	var st entity.LearningState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return entity.LearningState{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return st, nil
}

func (r *memorySnapshotRepository) Save(ctx context.Context, key repository.SnapshotKey, st entity.LearningState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	r.mu.Lock()
	r.items[normalizeKey(key)] = string(raw)
	r.mu.Unlock()
	return nil
}

func (r *memorySnapshotRepository) Delete(ctx context.Context, key repository.SnapshotKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.items, normalizeKey(key))
	r.mu.Unlock()
	return nil
}

// normalizeKey applies the language default so "" and "en" address the same
// snapshot, matching the sqlite store's behaviour.
func normalizeKey(key repository.SnapshotKey) repository.SnapshotKey {
	key.Language = entity.Language(key.Language.CodeOrDefault())
	return key
}
