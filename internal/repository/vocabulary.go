package repository

import (
	"context"

	"github.com/fluentloop/smartvocab/internal/entity"
)

// VocabularyRepository supplies the word list for a target language, ordered
// by frequency rank (index 0 = most common). The order must be stable for the
// duration of a session: the engine's active pool is a prefix of it.
type VocabularyRepository interface {
	Load(ctx context.Context, lang entity.Language) ([]entity.Word, error)
}
