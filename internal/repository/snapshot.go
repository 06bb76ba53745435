package repository

import (
	"context"

	"github.com/fluentloop/smartvocab/internal/entity"
)

// SnapshotKey identifies one learner's state for one target language.
type SnapshotKey struct {
	Learner  string
	Language entity.Language
}

// SnapshotRepository persists learning state verbatim as a textual snapshot.
// Implementations never interpret the state; they only round-trip it, so the
// engine stays the single owner of the format. Load returns
// entity.ErrSnapshotNotFound when no snapshot exists for the key.
type SnapshotRepository interface {
	Load(ctx context.Context, key SnapshotKey) (entity.LearningState, error)
	Save(ctx context.Context, key SnapshotKey, st entity.LearningState) error
	Delete(ctx context.Context, key SnapshotKey) error
}
