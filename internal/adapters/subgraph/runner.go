// Package subgraph drives the yarn/graph-cli toolchain for subgraph packages.
package subgraph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

// Runner executes subgraph toolchain commands in a package directory.
type Runner struct {
	log *slog.Logger
}

// NewRunner creates a new toolchain runner.
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{log: log.With("component", "SubgraphRunner")}
}

// CheckSubgraph verifies the directory holds a deployable subgraph package.
func (r *Runner) CheckSubgraph(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("subgraph directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("subgraph path %s is not a directory", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, "package.json")); err != nil {
		return fmt.Errorf("no package.json in %s: %w", dir, err)
	}
	return nil
}

// Install runs yarn install.
func (r *Runner) Install(ctx context.Context, dir string) error {
	return r.run(ctx, dir, "yarn", "install")
}

// Codegen runs graph codegen via the package script.
func (r *Runner) Codegen(ctx context.Context, dir string) error {
	return r.run(ctx, dir, "yarn", "codegen")
}

// Build runs graph build via the package script.
func (r *Runner) Build(ctx context.Context, dir string) error {
	return r.run(ctx, dir, "yarn", "build")
}

// Create registers the subgraph name with the graph node.
func (r *Runner) Create(ctx context.Context, dir, nodeURL, name string) error {
	return r.run(ctx, dir, "yarn", "run", "graph", "create", "--node", nodeURL, name)
}

// Deploy deploys the built subgraph to the graph node.
func (r *Runner) Deploy(ctx context.Context, dir string, opts usecase.DeployOptions) error {
	args := []string{"run", "graph", "deploy",
		"--node", opts.NodeURL,
		"--ipfs", opts.IPFSURL,
		"--version-label", opts.VersionLabel,
	}
	if opts.Network != "" {
		args = append(args, "--network", opts.Network)
	}
	args = append(args, opts.SubgraphName)
	return r.run(ctx, dir, "yarn", args...)
}

func (r *Runner) run(ctx context.Context, dir, name string, args ...string) error {
	start := time.Now()
	r.log.Debug("running toolchain command", "cmd", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	duration := time.Since(start)

	if err != nil {
		r.log.Error("toolchain command failed", "cmd", name, "error", err, "duration", duration)
		return fmt.Errorf("%s %v failed: %w\nOutput: %s", name, args, err, string(output))
	}

	r.log.Debug("toolchain command completed", "cmd", name, "duration", duration)
	return nil
}

var _ usecase.SubgraphRunner = (*Runner)(nil)
