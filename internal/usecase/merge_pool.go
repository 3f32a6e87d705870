package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/protoscout-org/protoscout/internal/config"
)

// MergePoolParams contains parameters for merging extra ABIs into the pool.
type MergePoolParams struct {
	ExtraABIs []ExtraABI
}

// MergePoolResult contains the outcome of a pool merge.
type MergePoolResult struct {
	Added    []string // pool keys newly created
	Reused   []string // keys that already existed with the same content
	PoolSize int
}

// MergePool adds ad-hoc ABIs to the candidate pool file, keyed by content
// hash so repeated merges of the same ABI collapse to one entry.
type MergePool struct {
	config *config.RuntimeConfig
	pool   PoolRepository
	log    *slog.Logger
}

// NewMergePool creates a new MergePool use case.
func NewMergePool(cfg *config.RuntimeConfig, pool PoolRepository, log *slog.Logger) *MergePool {
	return &MergePool{config: cfg, pool: pool, log: log}
}

// Run executes the merge and persists the pool when anything was added.
func (uc *MergePool) Run(ctx context.Context, params MergePoolParams) (*MergePoolResult, error) {
	if len(params.ExtraABIs) == 0 {
		return nil, fmt.Errorf("no ABI files supplied")
	}

	pool, err := uc.pool.LoadPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading candidate pool: %w", err)
	}

	added, reused, err := mergeExtras(pool, params.ExtraABIs)
	if err != nil {
		return nil, err
	}

	if len(added) > 0 {
		if err := uc.pool.SavePool(ctx, pool); err != nil {
			return nil, fmt.Errorf("saving pool: %w", err)
		}
	}
	uc.log.Info("pool merge finished", "added", len(added), "reused", len(reused))

	return &MergePoolResult{
		Added:    added,
		Reused:   reused,
		PoolSize: pool.Len(),
	}, nil
}
