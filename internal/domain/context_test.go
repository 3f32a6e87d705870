package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/protoscout-org/protoscout/internal/domain"
)

func testProtocol() domain.ProtocolSpec {
	return domain.ProtocolSpec{
		Name:    "ens",
		Network: "mainnet",
		Roles: []domain.RoleSpec{
			{
				Name:        "registry",
				DefaultName: "Registry",
				Events: []domain.EventRequirement{
					requirement("NewOwner", "bytes32", "bytes32", "address"),
				},
			},
			{
				Name:        "resolver",
				DefaultName: "Resolver",
				Dynamic:     true,
				Events: []domain.EventRequirement{
					requirement("AddrChanged", "bytes32", "address"),
				},
			},
			{
				Name:        "controller",
				DefaultName: "Controller",
				Events: []domain.EventRequirement{
					requirement("NameRegistered", "string", "bytes32", "address", "uint256"),
				},
			},
		},
	}
}

func TestSynthesizeContext(t *testing.T) {
	protocol := testProtocol()

	pool := domain.NewPool()
	pool.Add(addrRegistry, registryABI())

	assignment := domain.ResolveAssignment(protocol.Roles, pool)
	ctx, err := domain.SynthesizeContext(protocol, assignment)
	require.NoError(t, err)

	t.Run("protocol header keys", func(t *testing.T) {
		name, _ := ctx.Get("protocol")
		assert.Equal(t, "ens", name)
		network, _ := ctx.Get("network")
		assert.Equal(t, "mainnet", network)
	})

	t.Run("present role", func(t *testing.T) {
		present, _ := ctx.Get("registry_present")
		assert.Equal(t, true, present)

		address, _ := ctx.Get("registry_address")
		assert.Equal(t, addrRegistry, address)

		abiValue, _ := ctx.Get("registry_abi")
		abiJSON, ok := abiValue.(string)
		require.True(t, ok)
		parsed, err := domain.ParseABI([]byte(abiJSON))
		require.NoError(t, err)
		assert.Len(t, parsed, 2)

		startBlock, _ := ctx.Get("registry_start_block")
		assert.Equal(t, domain.Unresolved, startBlock)
	})

	t.Run("absent role emits explicit nulls", func(t *testing.T) {
		present, _ := ctx.Get("controller_present")
		assert.Equal(t, false, present)

		address, ok := ctx.Get("controller_address")
		assert.True(t, ok)
		assert.Nil(t, address)

		abiValue, ok := ctx.Get("controller_abi")
		assert.True(t, ok)
		assert.Nil(t, abiValue)
	})

	t.Run("dynamic role has no address key", func(t *testing.T) {
		_, ok := ctx.Get("resolver_address")
		assert.False(t, ok)

		present, _ := ctx.Get("resolver_present")
		assert.Equal(t, false, present)
	})

	t.Run("base flag appends root domain placeholders", func(t *testing.T) {
		base := protocol
		base.Base = true

		baseCtx, err := domain.SynthesizeContext(base, assignment)
		require.NoError(t, err)

		rootNode, ok := baseCtx.Get("base_root_node")
		require.True(t, ok)
		assert.Equal(t, domain.Unresolved, rootNode)

		_, ok = ctx.Get("base_root_node")
		assert.False(t, ok)
	})
}

func TestTemplateContextJSONRoundTrip(t *testing.T) {
	protocol := testProtocol()

	pool := domain.NewPool()
	pool.Add(addrRegistry, registryABI())
	pool.Add(addrController, controllerABI())

	assignment := domain.ResolveAssignment(protocol.Roles, pool)
	ctx, err := domain.SynthesizeContext(protocol, assignment)
	require.NoError(t, err)

	data, err := json.Marshal(ctx)
	require.NoError(t, err)

	reparsed := domain.NewTemplateContext()
	require.NoError(t, json.Unmarshal(data, reparsed))

	assert.Equal(t, ctx.Keys(), reparsed.Keys())

	// Presence flags and addresses survive the round trip exactly.
	for _, key := range []string{"registry_present", "resolver_present", "controller_present",
		"registry_address", "controller_address"} {
		want, _ := ctx.Get(key)
		got, ok := reparsed.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestTemplateContextYAML(t *testing.T) {
	ctx := domain.NewTemplateContext()
	ctx.Set("zebra", "z")
	ctx.Set("alpha", nil)
	ctx.Set("count", 3)

	out, err := yaml.Marshal(ctx)
	require.NoError(t, err)

	// Insertion order, not alphabetical.
	assert.Equal(t, "zebra: z\nalpha: null\ncount: 3\n", string(out))
}

func TestTemplateContextSetKeepsPosition(t *testing.T) {
	ctx := domain.NewTemplateContext()
	ctx.Set("a", 1)
	ctx.Set("b", 2)
	ctx.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, ctx.Keys())
	v, _ := ctx.Get("a")
	assert.Equal(t, 3, v)
}
