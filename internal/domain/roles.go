package domain

// EventRequirement is one event a role's governing contract is known to emit:
// an expected name plus the ordered list of expected input types.
type EventRequirement struct {
	Name   string     `json:"name" yaml:"name"`
	Inputs []ABIInput `json:"inputs" yaml:"inputs"`
}

// RoleSpec identifies a named slot in a multi-contract protocol deployment
// and the event requirements a candidate contract must satisfy to fill it.
type RoleSpec struct {
	// Name is the role key, e.g. "registry" or "controller".
	Name string

	// DefaultName is the display name emitted into the template context.
	DefaultName string

	// Dynamic marks roles that are referenced dynamically at runtime rather
	// than pinned to a single address; no address key is emitted for them.
	Dynamic bool

	// Events lists the requirements; all of them must match for a candidate
	// to satisfy the role.
	Events []EventRequirement
}

// ProtocolSpec is the full configuration of one protocol family: its roles in
// declaration order plus the subgraph deployment settings.
type ProtocolSpec struct {
	Name         string
	Network      string
	SubgraphPath string
	SubgraphName string

	// Base marks L2/base-chain deployments; the synthesized context gets
	// extra root-domain placeholder keys when set.
	Base bool

	Roles []RoleSpec
}
