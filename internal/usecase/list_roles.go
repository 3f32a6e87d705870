package usecase

import (
	"context"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/domain"
)

// ListRolesParams contains parameters for listing role specifications.
type ListRolesParams struct {
	// Protocol is optional; when empty only the protocol names are listed.
	Protocol string
}

// ListRolesResult contains either the protocol catalog or one protocol's
// role specs.
type ListRolesResult struct {
	Protocols []string
	Spec      *domain.ProtocolSpec
}

// ListRoles lists configured protocols and their role specifications.
type ListRoles struct {
	config    *config.RuntimeConfig
	protocols ProtocolRepository
}

// NewListRoles creates a new ListRoles use case.
func NewListRoles(cfg *config.RuntimeConfig, protocols ProtocolRepository) *ListRoles {
	return &ListRoles{config: cfg, protocols: protocols}
}

// Run lists protocol names, or the full role spec when a protocol is named.
func (uc *ListRoles) Run(ctx context.Context, params ListRolesParams) (*ListRolesResult, error) {
	names, err := uc.protocols.ListProtocols(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListRolesResult{Protocols: names}
	if params.Protocol == "" {
		return result, nil
	}

	spec, err := uc.protocols.GetProtocol(ctx, params.Protocol)
	if err != nil {
		return nil, err
	}
	result.Spec = spec

	return result, nil
}
