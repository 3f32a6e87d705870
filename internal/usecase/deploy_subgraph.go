package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/protoscout-org/protoscout/internal/config"
)

// DeploySubgraphParams contains parameters for a subgraph deployment.
type DeploySubgraphParams struct {
	Protocol string
	Version  string
	Prod     bool

	// Endpoint overrides; empty falls back to the runtime configuration.
	GraphNodeURL string
	IPFSURL      string
}

// DeploySubgraphResult contains the outcome of a deployment.
type DeploySubgraphResult struct {
	Protocol     string
	Network      string
	SubgraphName string
	Version      string
	NodeURL      string
	IPFSURL      string
}

// DeploySubgraph drives the graph-cli pipeline for one protocol's subgraph:
// install, codegen, source templating, build, create, deploy. Templated
// sources are restored afterwards whether or not the deploy succeeded.
type DeploySubgraph struct {
	config    *config.RuntimeConfig
	protocols ProtocolRepository
	runner    SubgraphRunner
	templater SourceTemplater
	prompter  Prompter
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeploySubgraph creates a new DeploySubgraph use case.
func NewDeploySubgraph(
	cfg *config.RuntimeConfig,
	protocols ProtocolRepository,
	runner SubgraphRunner,
	templater SourceTemplater,
	prompter Prompter,
	sink ProgressSink,
	log *slog.Logger,
) *DeploySubgraph {
	return &DeploySubgraph{
		config:    cfg,
		protocols: protocols,
		runner:    runner,
		templater: templater,
		prompter:  prompter,
		sink:      sink,
		log:       log,
	}
}

// Run executes the deployment pipeline.
func (uc *DeploySubgraph) Run(ctx context.Context, params DeploySubgraphParams) (result *DeploySubgraphResult, err error) {
	protocol, err := uc.protocols.GetProtocol(ctx, params.Protocol)
	if err != nil {
		return nil, err
	}
	if protocol.SubgraphPath == "" {
		return nil, fmt.Errorf("protocol %s has no subgraph_path configured", params.Protocol)
	}

	nodeURL := params.GraphNodeURL
	if nodeURL == "" {
		nodeURL = uc.config.Graph.NodeURL
	}
	ipfsURL := params.IPFSURL
	if ipfsURL == "" {
		if params.Prod && uc.config.Graph.ProdIPFSURL != "" {
			ipfsURL = uc.config.Graph.ProdIPFSURL
		} else {
			ipfsURL = uc.config.Graph.IPFSURL
		}
	}

	version := params.Version
	if version == "" {
		version = "v0.0.1"
	}

	dir := protocol.SubgraphPath
	if err := uc.runner.CheckSubgraph(ctx, dir); err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "install", Message: "yarn install", Spinner: true})
	if err := uc.runner.Install(ctx, dir); err != nil {
		return nil, fmt.Errorf("yarn install: %w", err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "codegen", Message: "graph codegen", Spinner: true})
	if err := uc.runner.Codegen(ctx, dir); err != nil {
		return nil, fmt.Errorf("graph codegen: %w", err)
	}

	uc.log.Info("templating subgraph sources", "network", protocol.Network)
	originals, err := uc.templater.Apply(ctx, dir, protocol.Network)
	if err != nil {
		return nil, fmt.Errorf("templating sources: %w", err)
	}
	defer func() {
		if restoreErr := uc.templater.Restore(ctx, originals); restoreErr != nil {
			uc.log.Error("failed to restore templated sources", "err", restoreErr)
			if err == nil {
				err = restoreErr
			}
		}
	}()

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "build", Message: "graph build", Spinner: true})
	if err := uc.runner.Build(ctx, dir); err != nil {
		return nil, fmt.Errorf("graph build: %w", err)
	}

	if err := uc.runner.Create(ctx, dir, nodeURL, protocol.SubgraphName); err != nil {
		return nil, fmt.Errorf("graph create: %w", err)
	}

	if params.Prod {
		if uc.config.NonInteractive {
			return nil, fmt.Errorf("refusing to deploy to production without confirmation in non-interactive mode")
		}
		confirmed, err := uc.prompter.Confirm(ctx,
			fmt.Sprintf("Deploy %s to production", protocol.SubgraphName))
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, fmt.Errorf("deployment aborted")
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deploy", Message: "graph deploy", Spinner: true})
	if err := uc.runner.Deploy(ctx, dir, DeployOptions{
		NodeURL:      nodeURL,
		IPFSURL:      ipfsURL,
		SubgraphName: protocol.SubgraphName,
		Network:      protocol.Network,
		VersionLabel: version,
	}); err != nil {
		return nil, fmt.Errorf("graph deploy: %w", err)
	}

	return &DeploySubgraphResult{
		Protocol:     protocol.Name,
		Network:      protocol.Network,
		SubgraphName: protocol.SubgraphName,
		Version:      version,
		NodeURL:      nodeURL,
		IPFSURL:      ipfsURL,
	}, nil
}
