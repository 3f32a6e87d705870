package usecase

import (
	"context"
	"fmt"

	"github.com/protoscout-org/protoscout/internal/config"
)

// PoolEntrySummary describes one pool entry for display.
type PoolEntrySummary struct {
	Key        string
	Entries    int
	Signatures []string
}

// ShowPoolResult contains the pool listing.
type ShowPoolResult struct {
	Path    string
	Entries []PoolEntrySummary
}

// ShowPool lists the candidate pool with event signature summaries.
type ShowPool struct {
	config *config.RuntimeConfig
	pool   PoolRepository
}

// NewShowPool creates a new ShowPool use case.
func NewShowPool(cfg *config.RuntimeConfig, pool PoolRepository) *ShowPool {
	return &ShowPool{config: cfg, pool: pool}
}

// Run loads the pool and summarizes each entry in document order.
func (uc *ShowPool) Run(ctx context.Context) (*ShowPoolResult, error) {
	pool, err := uc.pool.LoadPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading candidate pool: %w", err)
	}

	result := &ShowPoolResult{Path: uc.config.PoolPath}
	for _, key := range pool.Keys() {
		abi, _ := pool.Get(key)
		result.Entries = append(result.Entries, PoolEntrySummary{
			Key:        key,
			Entries:    len(abi),
			Signatures: abi.EventSignatures(),
		})
	}

	return result, nil
}
