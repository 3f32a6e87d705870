package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/domain"
)

// DetectProtocolParams contains parameters for protocol detection.
type DetectProtocolParams struct {
	Protocol  string
	ExtraABIs []ExtraABI

	// OutPath is where the synthesized context is written; empty skips the
	// file and leaves rendering to the caller.
	OutPath string
	Format  OutputFormat

	// SavePool writes the pool back when extra ABIs were merged in.
	SavePool bool
}

// DetectProtocolResult contains the outcome of a detection run.
type DetectProtocolResult struct {
	Protocol   *domain.ProtocolSpec
	Assignment *domain.Assignment
	Context    *domain.TemplateContext

	PoolSize int
	Merged   int // extra ABIs newly added to the pool
	Reused   int // extra ABIs already present under the same hash
	OutPath  string
}

// DetectProtocol discovers which pool contract fills each protocol role and
// synthesizes the template context for the subgraph pipeline.
type DetectProtocol struct {
	config    *config.RuntimeConfig
	pool      PoolRepository
	protocols ProtocolRepository
	writer    ContextWriter
	sink      ProgressSink
	log       *slog.Logger
}

// NewDetectProtocol creates a new DetectProtocol use case.
func NewDetectProtocol(
	cfg *config.RuntimeConfig,
	pool PoolRepository,
	protocols ProtocolRepository,
	writer ContextWriter,
	sink ProgressSink,
	log *slog.Logger,
) *DetectProtocol {
	return &DetectProtocol{
		config:    cfg,
		pool:      pool,
		protocols: protocols,
		writer:    writer,
		sink:      sink,
		log:       log,
	}
}

// Run executes the detection pipeline: load pool, merge extras, resolve the
// assignment, synthesize and write the context. Malformed input aborts before
// anything is written.
func (uc *DetectProtocol) Run(ctx context.Context, params DetectProtocolParams) (*DetectProtocolResult, error) {
	protocol, err := uc.protocols.GetProtocol(ctx, params.Protocol)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading candidate pool",
		Spinner: true,
	})

	pool, err := uc.pool.LoadPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading candidate pool: %w", err)
	}

	merged, reused, err := mergeExtras(pool, params.ExtraABIs)
	if err != nil {
		return nil, err
	}
	for _, key := range reused {
		uc.log.Debug("extra ABI already in pool", "key", key)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "matching",
		Message: fmt.Sprintf("Matching %d roles against %d candidates", len(protocol.Roles), pool.Len()),
		Spinner: true,
	})

	assignment := domain.ResolveAssignment(protocol.Roles, pool)

	tc, err := domain.SynthesizeContext(*protocol, assignment)
	if err != nil {
		return nil, err
	}

	if params.OutPath != "" {
		format := params.Format
		if format == "" {
			format = FormatJSON
		}
		if err := uc.writer.WriteContext(ctx, tc, params.OutPath, format); err != nil {
			return nil, fmt.Errorf("writing template context: %w", err)
		}
	}

	if params.SavePool && len(merged) > 0 {
		if err := uc.pool.SavePool(ctx, pool); err != nil {
			return nil, fmt.Errorf("saving merged pool: %w", err)
		}
		uc.log.Info("pool updated", "added", len(merged))
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: fmt.Sprintf("Assigned %d of %d roles", assignment.Len(), len(protocol.Roles)),
	})

	return &DetectProtocolResult{
		Protocol:   protocol,
		Assignment: assignment,
		Context:    tc,
		PoolSize:   pool.Len(),
		Merged:     len(merged),
		Reused:     len(reused),
		OutPath:    params.OutPath,
	}, nil
}

// mergeExtras normalizes and hashes each extra ABI into the pool, so the
// pooled copy is canonical and identical content lands on one key. Returns
// the keys that were added and the keys that were already present (duplicate
// content is idempotent). Any malformed blob fails the whole merge.
func mergeExtras(pool *domain.Pool, extras []ExtraABI) (added, reused []string, err error) {
	for _, extra := range extras {
		abi, err := domain.ParseABI(extra.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing ABI from %s: %w", extra.Source, err)
		}
		normalized, err := abi.Normalize()
		if err != nil {
			return nil, nil, fmt.Errorf("normalizing ABI from %s: %w", extra.Source, err)
		}
		key, err := domain.PoolKey(normalized)
		if err != nil {
			return nil, nil, fmt.Errorf("hashing ABI from %s: %w", extra.Source, err)
		}
		if pool.Add(key, normalized) {
			added = append(added, key)
		} else {
			reused = append(reused, key)
		}
	}
	return added, reused, nil
}
