// Package roles loads the protocol/role configuration document. Role order
// inside a protocol is the assignment order, so the loader walks the YAML
// node tree instead of decoding into Go maps.
package roles

import (
	"context"
	"fmt"
	"os"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/domain"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// Loader reads protocol specifications from the configured YAML document.
type Loader struct {
	path string
}

// NewLoader creates a protocol loader for the configured protocols path.
func NewLoader(cfg *config.RuntimeConfig) *Loader {
	return &Loader{path: cfg.ProtocolsPath}
}

// GetProtocol returns the named protocol spec with roles in declaration
// order. Unknown names return UnknownProtocolErr with known protocols
// ranked by similarity to the requested name.
func (l *Loader) GetProtocol(ctx context.Context, name string) (*domain.ProtocolSpec, error) {
	specs, err := l.load()
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		if spec.Name == name {
			return &spec, nil
		}
	}

	known := make([]string, len(specs))
	for i, spec := range specs {
		known[i] = spec.Name
	}
	return nil, domain.UnknownProtocolErr{Name: name, Known: rankBySimilarity(name, known)}
}

// ListProtocols returns the configured protocol names in document order.
func (l *Loader) ListProtocols(ctx context.Context) ([]string, error) {
	specs, err := l.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	return names, nil
}

// rankBySimilarity puts fuzzy matches for the requested name first so error
// output leads with the likely typo fixes.
func rankBySimilarity(name string, known []string) []string {
	matches := fuzzy.Find(name, known)
	if len(matches) == 0 {
		return known
	}

	ranked := make([]string, 0, len(known))
	seen := make(map[string]bool)
	for _, match := range matches {
		ranked = append(ranked, match.Str)
		seen[match.Str] = true
	}
	for _, candidate := range known {
		if !seen[candidate] {
			ranked = append(ranked, candidate)
		}
	}
	return ranked
}

func (l *Loader) load() ([]domain.ProtocolSpec, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading protocol configuration: %w", err)
	}
	return ParseProtocols(data)
}

type protocolYAML struct {
	Network      string `yaml:"network"`
	SubgraphPath string `yaml:"subgraph_path"`
	SubgraphName string `yaml:"subgraph_name"`
	Base         bool   `yaml:"base"`
}

type roleYAML struct {
	DefaultName string                    `yaml:"default_name"`
	Dynamic     bool                      `yaml:"dynamic"`
	Events      []domain.EventRequirement `yaml:"events"`
}

// ParseProtocols decodes the protocols document preserving protocol and role
// declaration order.
func ParseProtocols(data []byte) ([]domain.ProtocolSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing protocol configuration: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	protocolsNode := mappingValue(root, "protocols")
	if protocolsNode == nil {
		return nil, fmt.Errorf("protocol configuration has no protocols section")
	}
	if protocolsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("protocols section must be a mapping")
	}

	var specs []domain.ProtocolSpec
	for i := 0; i < len(protocolsNode.Content); i += 2 {
		nameNode, specNode := protocolsNode.Content[i], protocolsNode.Content[i+1]

		spec, err := parseProtocol(nameNode.Value, specNode)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseProtocol(name string, node *yaml.Node) (domain.ProtocolSpec, error) {
	var raw protocolYAML
	if err := node.Decode(&raw); err != nil {
		return domain.ProtocolSpec{}, fmt.Errorf("protocol %s: %w", name, err)
	}

	spec := domain.ProtocolSpec{
		Name:         name,
		Network:      raw.Network,
		SubgraphPath: raw.SubgraphPath,
		SubgraphName: raw.SubgraphName,
		Base:         raw.Base,
	}

	rolesNode := mappingValue(node, "roles")
	if rolesNode == nil {
		return spec, nil
	}
	if rolesNode.Kind != yaml.MappingNode {
		return domain.ProtocolSpec{}, fmt.Errorf("protocol %s: roles must be a mapping", name)
	}

	for i := 0; i < len(rolesNode.Content); i += 2 {
		roleName, roleNode := rolesNode.Content[i].Value, rolesNode.Content[i+1]

		var raw roleYAML
		if err := roleNode.Decode(&raw); err != nil {
			return domain.ProtocolSpec{}, fmt.Errorf("protocol %s role %s: %w", name, roleName, err)
		}
		spec.Roles = append(spec.Roles, domain.RoleSpec{
			Name:        roleName,
			DefaultName: raw.DefaultName,
			Dynamic:     raw.Dynamic,
			Events:      raw.Events,
		})
	}

	return spec, nil
}

// mappingValue returns the value node for a key in a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

var _ usecase.ProtocolRepository = (*Loader)(nil)
