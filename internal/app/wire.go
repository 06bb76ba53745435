//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	adapterrepo "github.com/fluentloop/smartvocab/internal/adapter/repository"
	"github.com/fluentloop/smartvocab/internal/infrastructure/config"
	"github.com/fluentloop/smartvocab/internal/infrastructure/database"
	"github.com/fluentloop/smartvocab/internal/infrastructure/logging"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewConnection,
)

var repositorySet = wire.NewSet(
	adapterrepo.NewSnapshotRepository,
	ProvideVocabulary,
)

var usecaseSet = wire.NewSet(
	ProvideLearning,
)

var loggingSet = wire.NewSet(
	logging.NewLogger,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		loggingSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
