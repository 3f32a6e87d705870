package subgraph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

const networkMarker = "{{network}}"

// Templater substitutes deployment markers in subgraph mapping sources for
// the duration of a deploy, then restores the originals.
type Templater struct{}

// NewTemplater creates a new source templater.
func NewTemplater() *Templater {
	return &Templater{}
}

// Apply rewrites the network marker in src/*.ts files and returns the
// original contents keyed by path so Restore can undo the edit.
func (t *Templater) Apply(ctx context.Context, dir, network string) (map[string]string, error) {
	pattern := filepath.Join(dir, "src", "*.ts")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	originals := make(map[string]string)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return originals, fmt.Errorf("reading %s: %w", path, err)
		}
		content := string(data)
		if !strings.Contains(content, networkMarker) {
			continue
		}

		originals[path] = content
		templated := strings.ReplaceAll(content, networkMarker, network)
		if err := os.WriteFile(path, []byte(templated), 0644); err != nil {
			return originals, fmt.Errorf("templating %s: %w", path, err)
		}
	}
	return originals, nil
}

// Restore writes the original contents back. It keeps going on individual
// failures and reports the first error, so a bad file does not leave the
// rest templated.
func (t *Templater) Restore(ctx context.Context, originals map[string]string) error {
	var firstErr error
	for path, content := range originals {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("restoring %s: %w", path, err)
		}
	}
	return firstErr
}

var _ usecase.SourceTemplater = (*Templater)(nil)
