// Package app wires the use cases, adapters and configuration into one
// application container.
package app

import (
	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// App is the main application container that holds all use cases.
type App struct {
	Config *config.RuntimeConfig

	DetectProtocol *usecase.DetectProtocol
	MergePool      *usecase.MergePool
	FetchABIs      *usecase.FetchABIs
	ShowPool       *usecase.ShowPool
	ListRoles      *usecase.ListRoles
	DeploySubgraph *usecase.DeploySubgraph
}

// NewApp creates a new application instance with all use cases.
func NewApp(
	cfg *config.RuntimeConfig,
	detectProtocol *usecase.DetectProtocol,
	mergePool *usecase.MergePool,
	fetchABIs *usecase.FetchABIs,
	showPool *usecase.ShowPool,
	listRoles *usecase.ListRoles,
	deploySubgraph *usecase.DeploySubgraph,
) (*App, error) {
	return &App{
		Config:         cfg,
		DetectProtocol: detectProtocol,
		MergePool:      mergePool,
		FetchABIs:      fetchABIs,
		ShowPool:       showPool,
		ListRoles:      listRoles,
		DeploySubgraph: deploySubgraph,
	}, nil
}
