package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/repository"
)

type fileVocabulary struct {
	dir string
}

// NewFileVocabulary reads vocabularies from <dir>/<language>.json: a JSON
// array of words whose order is the frequency rank (index 0 = most common).
func NewFileVocabulary(dir string) repository.VocabularyRepository {
	return &fileVocabulary{dir: dir}
}

func (s *fileVocabulary) Load(ctx context.Context, lang entity.Language) ([]entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, lang.CodeOrDefault()+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", entity.ErrVocabularyNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}

	var words []entity.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("decode vocabulary %s: %w", path, err)
	}

	// The engine keys the active pool by term; duplicates or blanks would
	// silently collapse progress records, so reject the file instead.
	seen := make(map[string]struct{}, len(words))
	for i := range words {
		term := entity.NormalizeWordToken(words[i].Term)
		if term == "" {
			return nil, fmt.Errorf("%w: entry %d of %s", entity.ErrInvalidWordTerm, i, path)
		}
		if _, dup := seen[term]; dup {
			return nil, fmt.Errorf("%w: %q in %s", entity.ErrDuplicateWordTerm, term, path)
		}
		seen[term] = struct{}{}
		words[i].Term = term
	}
	return words, nil
}
