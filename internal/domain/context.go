package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Unresolved marks template-context values that require operator input (start
// blocks, testnet addresses). They are emitted verbatim rather than guessed
// so the downstream templating step can refuse to run on an unfinished
// context.
const Unresolved = "__UNRESOLVED__"

// TemplateContext is the flat key/value document handed to the subgraph
// templating step. Keys keep the order they were added in, so serialized
// output stays stable and reviewable.
type TemplateContext struct {
	keys   []string
	values map[string]any
}

// NewTemplateContext creates an empty template context.
func NewTemplateContext() *TemplateContext {
	return &TemplateContext{values: make(map[string]any)}
}

// Set adds or replaces a key. A replaced key keeps its original position.
func (c *TemplateContext) Set(key string, value any) {
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value stored under key.
func (c *TemplateContext) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns all keys in insertion order.
func (c *TemplateContext) Keys() []string {
	return c.keys
}

// Len returns the number of keys.
func (c *TemplateContext) Len() int {
	return len(c.keys)
}

// MarshalJSON writes the context as a JSON object with keys in insertion
// order.
func (c *TemplateContext) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		valueJSON, err := json.Marshal(c.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshaling context key %q: %w", key, err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving its key order.
func (c *TemplateContext) UnmarshalJSON(data []byte) error {
	c.keys = nil
	c.values = make(map[string]any)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("template context must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in template context", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding context key %q: %w", key, err)
		}
		c.Set(key, value)
	}

	_, err = dec.Token()
	return err
}

// MarshalYAML renders the context as a YAML mapping with keys in insertion
// order.
func (c *TemplateContext) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range c.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(c.values[key]); err != nil {
			return nil, fmt.Errorf("encoding context key %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// SynthesizeContext turns a resolved assignment into the template context for
// a protocol.
//
// Every role contributes the same key set whether or not it was discovered:
// absent roles emit presence=false and explicit nulls, so templating can
// detect "role not present" without probing for missing keys. Start-block and
// testnet-address keys are always placeholders; they need operator input
// downstream.
func SynthesizeContext(protocol ProtocolSpec, assignment *Assignment) (*TemplateContext, error) {
	ctx := NewTemplateContext()
	ctx.Set("protocol", protocol.Name)
	ctx.Set("network", protocol.Network)

	for _, role := range protocol.Roles {
		ra, present := assignment.Get(role.Name)
		ctx.Set(role.Name+"_present", present)

		if !present {
			ctx.Set(role.Name+"_name", nil)
			if !role.Dynamic {
				ctx.Set(role.Name+"_address", nil)
			}
			ctx.Set(role.Name+"_abi", nil)
			ctx.Set(role.Name+"_start_block", nil)
			ctx.Set(role.Name+"_testnet_address", nil)
			continue
		}

		ctx.Set(role.Name+"_name", ra.DefaultName)
		if !role.Dynamic {
			ctx.Set(role.Name+"_address", ra.Address)
		}
		abiJSON, err := json.Marshal(ra.ABI)
		if err != nil {
			return nil, fmt.Errorf("serializing ABI for role %s: %w", role.Name, err)
		}
		ctx.Set(role.Name+"_abi", string(abiJSON))
		ctx.Set(role.Name+"_start_block", Unresolved)
		ctx.Set(role.Name+"_testnet_address", Unresolved)
	}

	if protocol.Base {
		ctx.Set("base_root_node", Unresolved)
		ctx.Set("base_root_name", Unresolved)
	}

	return ctx, nil
}
