package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoscout-org/protoscout/internal/domain"
)

const (
	addrRegistry   = "0x1111111111111111111111111111111111111111"
	addrController = "0x2222222222222222222222222222222222222222"
	addrToken      = "0x3333333333333333333333333333333333333333"
)

func registryABI() domain.ABI {
	return domain.ABI{
		event("NewOwner", "bytes32", "bytes32", "address"),
		event("NewResolver", "bytes32", "address"),
	}
}

func controllerABI() domain.ABI {
	return domain.ABI{
		event("NameRegistered", "string", "bytes32", "address", "uint256", "uint256"),
		event("NameRenewed", "string", "bytes32", "uint256", "uint256"),
	}
}

func roleSpecs() []domain.RoleSpec {
	return []domain.RoleSpec{
		{
			Name:        "registry",
			DefaultName: "Registry",
			Events: []domain.EventRequirement{
				requirement("NewOwner", "bytes32", "bytes32", "address"),
			},
		},
		{
			Name:        "controller",
			DefaultName: "Controller",
			Events: []domain.EventRequirement{
				requirement("NameRegistered", "string", "bytes32", "address", "uint256"),
			},
		},
	}
}

func TestResolveAssignment(t *testing.T) {
	t.Run("assigns each role the first satisfying candidate", func(t *testing.T) {
		pool := domain.NewPool()
		pool.Add(addrToken, domain.ABI{event("Approval", "address", "address", "uint256")})
		pool.Add(addrRegistry, registryABI())
		pool.Add(addrController, controllerABI())

		assignment := domain.ResolveAssignment(roleSpecs(), pool)
		require.Equal(t, 2, assignment.Len())

		registry, ok := assignment.Get("registry")
		require.True(t, ok)
		assert.Equal(t, addrRegistry, registry.Address)
		assert.Equal(t, "Registry", registry.DefaultName)

		controller, ok := assignment.Get("controller")
		require.True(t, ok)
		assert.Equal(t, addrController, controller.Address)
	})

	t.Run("never assigns an address twice", func(t *testing.T) {
		// One contract emits the events of both roles; only the first role
		// in declaration order gets it.
		combined := append(registryABI(), controllerABI()...)
		pool := domain.NewPool()
		pool.Add(addrRegistry, combined)

		assignment := domain.ResolveAssignment(roleSpecs(), pool)
		require.Equal(t, 1, assignment.Len())

		registry, ok := assignment.Get("registry")
		require.True(t, ok)
		assert.Equal(t, addrRegistry, registry.Address)

		_, ok = assignment.Get("controller")
		assert.False(t, ok)
	})

	t.Run("greedy choice depends on pool order", func(t *testing.T) {
		combined := append(registryABI(), controllerABI()...)

		pool := domain.NewPool()
		pool.Add(addrController, combined)
		pool.Add(addrRegistry, registryABI())

		assignment := domain.ResolveAssignment(roleSpecs(), pool)

		// The combined contract comes first in pool order, so the registry
		// role claims it even though a dedicated registry candidate exists
		// later. No backtracking.
		registry, ok := assignment.Get("registry")
		require.True(t, ok)
		assert.Equal(t, addrController, registry.Address)

		_, ok = assignment.Get("controller")
		assert.False(t, ok)
	})

	t.Run("unmatched roles stay absent", func(t *testing.T) {
		pool := domain.NewPool()
		pool.Add(addrToken, domain.ABI{event("Approval", "address", "address", "uint256")})

		assignment := domain.ResolveAssignment(roleSpecs(), pool)
		assert.Equal(t, 0, assignment.Len())
	})

	t.Run("empty pool yields empty assignment", func(t *testing.T) {
		assignment := domain.ResolveAssignment(roleSpecs(), domain.NewPool())
		assert.Empty(t, assignment.Roles())
	})
}

func TestPool(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		pool := domain.NewPool()
		pool.Add("c", nil)
		pool.Add("a", nil)
		pool.Add("b", nil)

		assert.Equal(t, []string{"c", "a", "b"}, pool.Keys())
	})

	t.Run("duplicate add keeps the existing entry", func(t *testing.T) {
		pool := domain.NewPool()
		original := registryABI()
		assert.True(t, pool.Add("k", original))
		assert.False(t, pool.Add("k", controllerABI()))

		abi, ok := pool.Get("k")
		require.True(t, ok)
		assert.Equal(t, original, abi)
		assert.Equal(t, 1, pool.Len())
	})
}
