package usecase

import (
	"context"

	"github.com/protoscout-org/protoscout/internal/domain"
)

// PoolRepository handles persistence of the candidate pool document.
type PoolRepository interface {
	// LoadPool reads the pool preserving document insertion order. A missing
	// pool file yields an empty pool, not an error.
	LoadPool(ctx context.Context) (*domain.Pool, error)
	SavePool(ctx context.Context, pool *domain.Pool) error
}

// ProtocolRepository provides access to the protocol/role configuration.
type ProtocolRepository interface {
	// GetProtocol returns the protocol configuration with roles in
	// declaration order.
	GetProtocol(ctx context.Context, name string) (*domain.ProtocolSpec, error)
	ListProtocols(ctx context.Context) ([]string, error)
}

// OutputFormat selects the serialization of the synthesized context.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ContextWriter persists a synthesized template context.
type ContextWriter interface {
	WriteContext(ctx context.Context, tc *domain.TemplateContext, path string, format OutputFormat) error
}

// ABIFetcher retrieves verified-contract ABIs from an explorer API.
type ABIFetcher interface {
	FetchABI(ctx context.Context, address string) (domain.ABI, error)
}

// SubgraphRunner drives the graph-cli/yarn toolchain for a subgraph package.
type SubgraphRunner interface {
	// CheckSubgraph verifies the directory holds a deployable subgraph
	// package (package.json present).
	CheckSubgraph(ctx context.Context, dir string) error
	Install(ctx context.Context, dir string) error
	Codegen(ctx context.Context, dir string) error
	Build(ctx context.Context, dir string) error
	Create(ctx context.Context, dir, nodeURL, name string) error
	Deploy(ctx context.Context, dir string, opts DeployOptions) error
}

// DeployOptions carries the flags for `graph deploy`.
type DeployOptions struct {
	NodeURL      string
	IPFSURL      string
	SubgraphName string
	Network      string
	VersionLabel string
}

// SourceTemplater substitutes deployment placeholders in subgraph sources and
// restores the originals afterwards.
type SourceTemplater interface {
	// Apply rewrites placeholder markers in the package sources and returns
	// the original contents keyed by path, for Restore.
	Apply(ctx context.Context, dir, network string) (map[string]string, error)
	Restore(ctx context.Context, originals map[string]string) error
}

// Prompter asks the operator for confirmation.
type Prompter interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events.
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// ExtraABI is an ad-hoc ABI blob supplied at invocation time, to be hashed
// into the pool.
type ExtraABI struct {
	Source string // where the blob came from, for error messages
	Data   []byte
}
