package subgraph

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, "src", name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTemplater(t *testing.T) {
	ctx := context.Background()
	templater := NewTemplater()

	t.Run("substitutes the network marker and restores", func(t *testing.T) {
		dir := t.TempDir()
		mapping := writeSource(t, dir, "mapping.ts", `const network = "{{network}}";`)
		plain := writeSource(t, dir, "utils.ts", `export const ONE = 1;`)

		originals, err := templater.Apply(ctx, dir, "sepolia")
		require.NoError(t, err)

		data, err := os.ReadFile(mapping)
		require.NoError(t, err)
		assert.Equal(t, `const network = "sepolia";`, string(data))

		// Files without the marker are left alone and not tracked.
		_, tracked := originals[plain]
		assert.False(t, tracked)
		assert.Len(t, originals, 1)

		require.NoError(t, templater.Restore(ctx, originals))
		data, err = os.ReadFile(mapping)
		require.NoError(t, err)
		assert.Equal(t, `const network = "{{network}}";`, string(data))
	})

	t.Run("no sources is not an error", func(t *testing.T) {
		originals, err := templater.Apply(ctx, t.TempDir(), "mainnet")
		require.NoError(t, err)
		assert.Empty(t, originals)
	})
}

func TestCheckSubgraph(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(testLogger())

	t.Run("accepts a package directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{}`), 0644))
		assert.NoError(t, runner.CheckSubgraph(ctx, dir))
	})

	t.Run("rejects a directory without package.json", func(t *testing.T) {
		assert.ErrorContains(t, runner.CheckSubgraph(ctx, t.TempDir()), "package.json")
	})

	t.Run("rejects a missing directory", func(t *testing.T) {
		assert.Error(t, runner.CheckSubgraph(ctx, filepath.Join(t.TempDir(), "nope")))
	})
}
