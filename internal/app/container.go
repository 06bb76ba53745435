package app

import (
	"github.com/sirupsen/logrus"

	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/infrastructure/config"
	"github.com/fluentloop/smartvocab/internal/repository"
	"github.com/fluentloop/smartvocab/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Learning   usecase.LearningUsecase[entity.Word]
	Snapshots  repository.SnapshotRepository
	Vocabulary repository.VocabularyRepository
}
