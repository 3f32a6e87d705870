//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/protoscout-org/protoscout/internal/adapters/etherscan"
	"github.com/protoscout-org/protoscout/internal/adapters/interactive"
	"github.com/protoscout-org/protoscout/internal/adapters/repository/pool"
	"github.com/protoscout-org/protoscout/internal/adapters/repository/roles"
	"github.com/protoscout-org/protoscout/internal/adapters/subgraph"
	"github.com/protoscout-org/protoscout/internal/adapters/template"
	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/logging"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// InitApp creates a fully wired App instance.
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.NewLogger,

		// Adapters
		pool.NewFileStore,
		wire.Bind(new(usecase.PoolRepository), new(*pool.FileStore)),
		roles.NewLoader,
		wire.Bind(new(usecase.ProtocolRepository), new(*roles.Loader)),
		template.NewContextWriterAdapter,
		wire.Bind(new(usecase.ContextWriter), new(*template.ContextWriterAdapter)),
		etherscan.NewClient,
		wire.Bind(new(usecase.ABIFetcher), new(*etherscan.Client)),
		subgraph.NewRunner,
		wire.Bind(new(usecase.SubgraphRunner), new(*subgraph.Runner)),
		subgraph.NewTemplater,
		wire.Bind(new(usecase.SourceTemplater), new(*subgraph.Templater)),
		interactive.NewPrompterAdapter,
		wire.Bind(new(usecase.Prompter), new(*interactive.PrompterAdapter)),

		// Use cases
		usecase.NewDetectProtocol,
		usecase.NewMergePool,
		usecase.NewFetchABIs,
		usecase.NewShowPool,
		usecase.NewListRoles,
		usecase.NewDeploySubgraph,

		// App
		NewApp,
	)
	return nil, nil
}
