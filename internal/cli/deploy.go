package cli

import (
	"github.com/spf13/cobra"

	"github.com/protoscout-org/protoscout/internal/cli/render"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// NewDeployCmd creates the deploy command.
func NewDeployCmd() *cobra.Command {
	var (
		version string
		prod    bool
		nodeURL string
		ipfsURL string
	)

	cmd := &cobra.Command{
		Use:   "deploy <protocol>",
		Short: "Build and deploy a protocol's subgraph",
		Long: `Deploy runs the full subgraph pipeline for a protocol: yarn install,
graph codegen, source templating, graph build, create and deploy.

Templated sources are restored after the run regardless of outcome.
Production deployments require interactive confirmation.`,
		Example: `  # Deploy ENS to the local graph node
  protoscout deploy ens

  # Production deployment with an explicit version label
  protoscout deploy ens --prod --version v1.2.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeploySubgraph.Run(cmd.Context(), usecase.DeploySubgraphParams{
				Protocol:     args[0],
				Version:      version,
				Prod:         prod,
				GraphNodeURL: nodeURL,
				IPFSURL:      ipfsURL,
			})
			if err != nil {
				return err
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Version label for graph deploy (defaults to v0.0.1)")
	cmd.Flags().BoolVar(&prod, "prod", false, "Deploy to production (asks for confirmation)")
	cmd.Flags().StringVar(&nodeURL, "graph-node-url", "", "Graph node URL override")
	cmd.Flags().StringVar(&ipfsURL, "ipfs-url", "", "IPFS URL override")

	return cmd
}
