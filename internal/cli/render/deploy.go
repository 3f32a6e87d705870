package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

// DeployRenderer renders the outcome of a subgraph deployment.
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer.
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render prints the deployment summary.
func (r *DeployRenderer) Render(result *usecase.DeploySubgraphResult) error {
	fmt.Fprintln(r.out, color.New(color.FgGreen, color.Bold).Sprintf(
		"✓ Deployed %s (%s)", result.SubgraphName, result.Version))
	fmt.Fprintf(r.out, "  Network:    %s\n", result.Network)
	fmt.Fprintf(r.out, "  Graph node: %s\n", result.NodeURL)
	fmt.Fprintf(r.out, "  IPFS:       %s\n", result.IPFSURL)
	return nil
}

var _ Renderer[*usecase.DeploySubgraphResult] = (*DeployRenderer)(nil)
