package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/repository"
)

// The store is a plain key-value table: the snapshot column carries the JSON
// state verbatim and is never queried into.
const snapshotSchema = `
CREATE TABLE IF NOT EXISTS learning_snapshots (
	learner    TEXT NOT NULL,
	language   TEXT NOT NULL,
	snapshot   TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (learner, language)
)`

type snapshotRepository struct {
	db    *sql.DB
	clock func() time.Time
}

// NewSnapshotRepository constructs a sqlite-backed snapshot store, creating
// its table on first use.
func NewSnapshotRepository(db *sql.DB) (repository.SnapshotRepository, error) {
	if _, err := db.Exec(snapshotSchema); err != nil {
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &snapshotRepository{db: db, clock: time.Now}, nil
}

func (r *snapshotRepository) Load(ctx context.Context, key repository.SnapshotKey) (entity.LearningState, error) {
	if err := validateKey(key); err != nil {
		return entity.LearningState{}, err
	}
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot FROM learning_snapshots WHERE learner = ? AND language = ?`,
		key.Learner, key.Language.CodeOrDefault(),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.LearningState{}, entity.ErrSnapshotNotFound
	}
	if err != nil {
		return entity.LearningState{}, fmt.Errorf("load snapshot: %w", err)
	}

	var st entity.LearningState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return entity.LearningState{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return st, nil
}

func (r *snapshotRepository) Save(ctx context.Context, key repository.SnapshotKey, st entity.LearningState) error {
	if err := validateKey(key); err != nil {
		return err
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO learning_snapshots (learner, language, snapshot, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (learner, language)
		 DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		key.Learner, key.Language.CodeOrDefault(), string(raw), r.clock().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepository) Delete(ctx context.Context, key repository.SnapshotKey) error {
	if err := validateKey(key); err != nil {
		return err
	}
	// Deleting a missing snapshot is not an error: reset is idempotent.
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM learning_snapshots WHERE learner = ? AND language = ?`,
		key.Learner, key.Language.CodeOrDefault(),
	)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func validateKey(key repository.SnapshotKey) error {
	if key.Learner == "" {
		return entity.ErrInvalidLearner
	}
	return nil
}
