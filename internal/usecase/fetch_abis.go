package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/domain"
)

// FetchABIsParams contains parameters for populating the pool from an
// explorer API.
type FetchABIsParams struct {
	Addresses []string
}

// FetchOutcome describes the result for one address.
type FetchOutcome struct {
	Address string
	Events  int
	Skipped bool // already in the pool
	Err     error
}

// FetchABIsResult contains the per-address outcomes.
type FetchABIsResult struct {
	Outcomes []FetchOutcome
	Fetched  int
	PoolSize int
}

// FetchABIs fetches verified-contract ABIs for a list of addresses and adds
// them to the pool keyed by lowercase address. Retry and pacing policy lives
// in the fetcher adapter; this use case only sequences the calls.
type FetchABIs struct {
	config  *config.RuntimeConfig
	fetcher ABIFetcher
	pool    PoolRepository
	sink    ProgressSink
	log     *slog.Logger
}

// NewFetchABIs creates a new FetchABIs use case.
func NewFetchABIs(cfg *config.RuntimeConfig, fetcher ABIFetcher, pool PoolRepository, sink ProgressSink, log *slog.Logger) *FetchABIs {
	return &FetchABIs{config: cfg, fetcher: fetcher, pool: pool, sink: sink, log: log}
}

// Run fetches each address in turn. Individual fetch failures are recorded
// per address; the pool is saved with whatever succeeded.
func (uc *FetchABIs) Run(ctx context.Context, params FetchABIsParams) (*FetchABIsResult, error) {
	if len(params.Addresses) == 0 {
		return nil, fmt.Errorf("no addresses supplied")
	}
	for _, address := range params.Addresses {
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
		}
	}

	pool, err := uc.pool.LoadPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading candidate pool: %w", err)
	}

	result := &FetchABIsResult{}
	for i, address := range params.Addresses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := strings.ToLower(address)
		if _, exists := pool.Get(key); exists {
			uc.log.Debug("address already in pool", "address", key)
			result.Outcomes = append(result.Outcomes, FetchOutcome{Address: key, Skipped: true})
			continue
		}

		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "fetching",
			Message: fmt.Sprintf("Fetching ABI %d/%d: %s", i+1, len(params.Addresses), key),
			Spinner: true,
		})

		abi, err := uc.fetcher.FetchABI(ctx, address)
		if err != nil {
			uc.log.Warn("fetch failed", "address", key, "err", err)
			result.Outcomes = append(result.Outcomes, FetchOutcome{Address: key, Err: err})
			continue
		}

		pool.Add(key, abi)
		result.Fetched++
		result.Outcomes = append(result.Outcomes, FetchOutcome{
			Address: key,
			Events:  len(abi.Events()),
		})
	}

	if result.Fetched > 0 {
		if err := uc.pool.SavePool(ctx, pool); err != nil {
			return nil, fmt.Errorf("saving pool: %w", err)
		}
	}

	result.PoolSize = pool.Len()
	return result, nil
}
