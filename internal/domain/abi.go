package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ABIInput describes a single parameter of an ABI entry.
type ABIInput struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Type    string `json:"type" yaml:"type"`
	Indexed bool   `json:"indexed,omitempty" yaml:"indexed,omitempty"`
}

// ABIEntry is one element of a contract ABI. The source JSON object is
// retained verbatim so that re-serialization never drops fields we do not
// model (tuples, state mutability, anonymous flags, ...).
type ABIEntry struct {
	Type   string
	Name   string
	Inputs []ABIInput

	raw json.RawMessage
}

// ABI is an ordered sequence of ABI entries.
type ABI []ABIEntry

func (e *ABIEntry) UnmarshalJSON(data []byte) error {
	var fields struct {
		Type   string     `json:"type"`
		Name   string     `json:"name"`
		Inputs []ABIInput `json:"inputs"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	e.Type = fields.Type
	e.Name = fields.Name
	e.Inputs = fields.Inputs
	e.raw = append(e.raw[:0:0], data...)
	return nil
}

func (e ABIEntry) MarshalJSON() ([]byte, error) {
	if e.raw != nil {
		var buf bytes.Buffer
		if err := json.Compact(&buf, e.raw); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	// Entry constructed in code rather than parsed.
	return json.Marshal(struct {
		Type   string     `json:"type"`
		Name   string     `json:"name,omitempty"`
		Inputs []ABIInput `json:"inputs,omitempty"`
	}{e.Type, e.Name, e.Inputs})
}

// sortKey is the ordering key used by Normalize: the entry name when present,
// otherwise its type.
func (e ABIEntry) sortKey() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Type
}

// ParseABI decodes a raw ABI document (a JSON array of entries).
func ParseABI(data []byte) (ABI, error) {
	var a ABI
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}

// Normalize returns a copy of the ABI with entries ordered by name (falling
// back to type) ascending. The sort is stable, so entries sharing a key keep
// their original relative order. Entries carrying neither a name nor a type
// make the whole ABI invalid.
func (a ABI) Normalize() (ABI, error) {
	for i, entry := range a {
		if entry.Name == "" && entry.Type == "" {
			return nil, MalformedABIEntryErr{Index: i}
		}
	}
	normalized := make(ABI, len(a))
	copy(normalized, a)
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].sortKey() < normalized[j].sortKey()
	})
	return normalized, nil
}

// Events filters the ABI down to its event entries, preserving order.
func (a ABI) Events() []ABIEntry {
	var events []ABIEntry
	for _, entry := range a {
		if entry.Type == "event" {
			events = append(events, entry)
		}
	}
	return events
}
