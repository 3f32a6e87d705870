package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/protoscout-org/protoscout/internal/domain"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// MockPoolRepository is a mock implementation of PoolRepository
type MockPoolRepository struct {
	mock.Mock
}

func (m *MockPoolRepository) LoadPool(ctx context.Context) (*domain.Pool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pool), args.Error(1)
}

func (m *MockPoolRepository) SavePool(ctx context.Context, pool *domain.Pool) error {
	args := m.Called(ctx, pool)
	return args.Error(0)
}

// MockProtocolRepository is a mock implementation of ProtocolRepository
type MockProtocolRepository struct {
	mock.Mock
}

func (m *MockProtocolRepository) GetProtocol(ctx context.Context, name string) (*domain.ProtocolSpec, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProtocolSpec), args.Error(1)
}

func (m *MockProtocolRepository) ListProtocols(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockContextWriter is a mock implementation of ContextWriter
type MockContextWriter struct {
	mock.Mock
}

func (m *MockContextWriter) WriteContext(ctx context.Context, tc *domain.TemplateContext, path string, format usecase.OutputFormat) error {
	args := m.Called(ctx, tc, path, format)
	return args.Error(0)
}

// MockABIFetcher is a mock implementation of ABIFetcher
type MockABIFetcher struct {
	mock.Mock
}

func (m *MockABIFetcher) FetchABI(ctx context.Context, address string) (domain.ABI, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ABI), args.Error(1)
}

// MockSubgraphRunner is a mock implementation of SubgraphRunner
type MockSubgraphRunner struct {
	mock.Mock
}

func (m *MockSubgraphRunner) CheckSubgraph(ctx context.Context, dir string) error {
	return m.Called(ctx, dir).Error(0)
}

func (m *MockSubgraphRunner) Install(ctx context.Context, dir string) error {
	return m.Called(ctx, dir).Error(0)
}

func (m *MockSubgraphRunner) Codegen(ctx context.Context, dir string) error {
	return m.Called(ctx, dir).Error(0)
}

func (m *MockSubgraphRunner) Build(ctx context.Context, dir string) error {
	return m.Called(ctx, dir).Error(0)
}

func (m *MockSubgraphRunner) Create(ctx context.Context, dir, nodeURL, name string) error {
	return m.Called(ctx, dir, nodeURL, name).Error(0)
}

func (m *MockSubgraphRunner) Deploy(ctx context.Context, dir string, opts usecase.DeployOptions) error {
	return m.Called(ctx, dir, opts).Error(0)
}

// MockSourceTemplater is a mock implementation of SourceTemplater
type MockSourceTemplater struct {
	mock.Mock
}

func (m *MockSourceTemplater) Apply(ctx context.Context, dir, network string) (map[string]string, error) {
	args := m.Called(ctx, dir, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSourceTemplater) Restore(ctx context.Context, originals map[string]string) error {
	return m.Called(ctx, originals).Error(0)
}

// MockPrompter is a mock implementation of Prompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	args := m.Called(ctx, message)
	return args.Bool(0), args.Error(1)
}

// RecordingSink records progress events for assertions
type RecordingSink struct {
	Events []usecase.ProgressEvent
	Infos  []string
	Errors []string
}

func (s *RecordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.Events = append(s.Events, event)
}

func (s *RecordingSink) Info(message string) {
	s.Infos = append(s.Infos, message)
}

func (s *RecordingSink) Error(message string) {
	s.Errors = append(s.Errors, message)
}
