package app

import (
	"github.com/fluentloop/smartvocab/internal/adapter/source"
	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/infrastructure/config"
	"github.com/fluentloop/smartvocab/internal/repository"
	"github.com/fluentloop/smartvocab/internal/usecase"
)

// ProvideLearning instantiates the engine for entity.Word vocabularies,
// keyed by the target-language term.
func ProvideLearning(cfg *config.Config) usecase.LearningUsecase[entity.Word] {
	return usecase.NewLearningUsecase(entity.Word.Key, usecase.LearningConfig{
		ExpandBatch:       cfg.Learning.ExpandBatch,
		ReviewProbability: cfg.Learning.ReviewProbability,
	})
}

// ProvideVocabulary builds the JSON-file vocabulary source.
func ProvideVocabulary(cfg *config.Config) repository.VocabularyRepository {
	return source.NewFileVocabulary(cfg.Vocabulary.Dir)
}
