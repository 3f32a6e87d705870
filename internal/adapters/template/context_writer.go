// Package template persists synthesized template contexts for the subgraph
// templating step.
package template

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/protoscout-org/protoscout/internal/domain"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// ContextWriterAdapter serializes template contexts as JSON or YAML.
type ContextWriterAdapter struct{}

// NewContextWriterAdapter creates a new context writer.
func NewContextWriterAdapter() *ContextWriterAdapter {
	return &ContextWriterAdapter{}
}

// WriteContext serializes the context to path in the requested format.
func (w *ContextWriterAdapter) WriteContext(ctx context.Context, tc *domain.TemplateContext, path string, format usecase.OutputFormat) error {
	data, err := Marshal(tc, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal serializes a template context in the requested format.
func Marshal(tc *domain.TemplateContext, format usecase.OutputFormat) ([]byte, error) {
	switch format {
	case usecase.FormatJSON, "":
		data, err := json.MarshalIndent(tc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case usecase.FormatYAML:
		return yaml.Marshal(tc)
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

var _ usecase.ContextWriter = (*ContextWriterAdapter)(nil)
