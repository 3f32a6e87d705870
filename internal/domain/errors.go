package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrUnknownProtocol is returned when a protocol name is not configured
	ErrUnknownProtocol = errors.New("unknown protocol")

	// ErrInvalidAddress is returned when a contract address is malformed
	ErrInvalidAddress = errors.New("invalid address")
)

// MalformedABIEntryErr reports an ABI entry that carries neither a name nor a
// type. Such an ABI is rejected wholesale; normalization never skips entries.
type MalformedABIEntryErr struct {
	Index int
}

func (e MalformedABIEntryErr) Error() string {
	return fmt.Sprintf("malformed ABI entry at index %d: neither name nor type present", e.Index)
}

// UnknownProtocolErr wraps ErrUnknownProtocol with the configured protocol
// names so callers can suggest alternatives.
type UnknownProtocolErr struct {
	Name  string
	Known []string
}

func (e UnknownProtocolErr) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("protocol %q not found in configuration", e.Name)
	}
	return fmt.Sprintf("protocol %q not found in configuration, possible options:\n  %s",
		e.Name, strings.Join(e.Known, "\n  "))
}

func (e UnknownProtocolErr) Unwrap() error {
	return ErrUnknownProtocol
}
