package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/domain"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

func TestFetchABIs(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{}

	// Mixed-case input; pool keys are lowercased.
	checksummed := "0x1111111111111111111111111111111111111111"

	t.Run("fetches and saves new entries", func(t *testing.T) {
		poolRepo := new(MockPoolRepository)
		poolRepo.On("LoadPool", ctx).Return(domain.NewPool(), nil)
		poolRepo.On("SavePool", ctx, mock.Anything).Return(nil)

		fetcher := new(MockABIFetcher)
		fetcher.On("FetchABI", ctx, checksummed).Return(registryABI(), nil)

		uc := usecase.NewFetchABIs(cfg, fetcher, poolRepo, &RecordingSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.FetchABIsParams{Addresses: []string{checksummed}})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Fetched)
		assert.Equal(t, 1, result.PoolSize)
		require.Len(t, result.Outcomes, 1)
		assert.Equal(t, strings.ToLower(checksummed), result.Outcomes[0].Address)
		assert.Equal(t, 1, result.Outcomes[0].Events)
		poolRepo.AssertExpectations(t)
	})

	t.Run("skips addresses already pooled", func(t *testing.T) {
		pool := domain.NewPool()
		pool.Add(strings.ToLower(checksummed), registryABI())

		poolRepo := new(MockPoolRepository)
		poolRepo.On("LoadPool", ctx).Return(pool, nil)

		fetcher := new(MockABIFetcher)

		uc := usecase.NewFetchABIs(cfg, fetcher, poolRepo, &RecordingSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.FetchABIsParams{Addresses: []string{checksummed}})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Fetched)
		assert.True(t, result.Outcomes[0].Skipped)
		fetcher.AssertNotCalled(t, "FetchABI", mock.Anything, mock.Anything)
		poolRepo.AssertNotCalled(t, "SavePool", mock.Anything, mock.Anything)
	})

	t.Run("records per-address failures and keeps going", func(t *testing.T) {
		other := "0x2222222222222222222222222222222222222222"

		poolRepo := new(MockPoolRepository)
		poolRepo.On("LoadPool", ctx).Return(domain.NewPool(), nil)
		poolRepo.On("SavePool", ctx, mock.Anything).Return(nil)

		fetcher := new(MockABIFetcher)
		fetcher.On("FetchABI", ctx, checksummed).Return(nil, errors.New("contract not verified"))
		fetcher.On("FetchABI", ctx, other).Return(registryABI(), nil)

		uc := usecase.NewFetchABIs(cfg, fetcher, poolRepo, &RecordingSink{}, testLogger())
		result, err := uc.Run(ctx, usecase.FetchABIsParams{Addresses: []string{checksummed, other}})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Fetched)
		require.Len(t, result.Outcomes, 2)
		assert.ErrorContains(t, result.Outcomes[0].Err, "not verified")
		assert.NoError(t, result.Outcomes[1].Err)
	})

	t.Run("rejects malformed addresses up front", func(t *testing.T) {
		uc := usecase.NewFetchABIs(cfg, new(MockABIFetcher), new(MockPoolRepository), &RecordingSink{}, testLogger())
		_, err := uc.Run(ctx, usecase.FetchABIsParams{Addresses: []string{"not-an-address"}})

		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})
}

func TestMergePool(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{}

	extra := []byte(`[{"type":"event","name":"NewOwner","inputs":[{"type":"bytes32"},{"type":"bytes32"},{"type":"address"}]}]`)

	t.Run("adds and persists new content", func(t *testing.T) {
		poolRepo := new(MockPoolRepository)
		poolRepo.On("LoadPool", ctx).Return(domain.NewPool(), nil)
		poolRepo.On("SavePool", ctx, mock.Anything).Return(nil)

		uc := usecase.NewMergePool(cfg, poolRepo, testLogger())
		result, err := uc.Run(ctx, usecase.MergePoolParams{
			ExtraABIs: []usecase.ExtraABI{{Source: "a.json", Data: extra}},
		})

		require.NoError(t, err)
		assert.Len(t, result.Added, 1)
		assert.Empty(t, result.Reused)
		poolRepo.AssertExpectations(t)
	})

	t.Run("does not save when everything was a duplicate", func(t *testing.T) {
		abi, err := domain.ParseABI(extra)
		require.NoError(t, err)
		key, err := domain.PoolKey(abi)
		require.NoError(t, err)

		pool := domain.NewPool()
		pool.Add(key, abi)

		poolRepo := new(MockPoolRepository)
		poolRepo.On("LoadPool", ctx).Return(pool, nil)

		uc := usecase.NewMergePool(cfg, poolRepo, testLogger())
		result, err := uc.Run(ctx, usecase.MergePoolParams{
			ExtraABIs: []usecase.ExtraABI{{Source: "a.json", Data: extra}},
		})

		require.NoError(t, err)
		assert.Empty(t, result.Added)
		assert.Len(t, result.Reused, 1)
		poolRepo.AssertNotCalled(t, "SavePool", mock.Anything, mock.Anything)
	})

	t.Run("requires at least one file", func(t *testing.T) {
		uc := usecase.NewMergePool(cfg, new(MockPoolRepository), testLogger())
		_, err := uc.Run(ctx, usecase.MergePoolParams{})
		assert.Error(t, err)
	})
}
