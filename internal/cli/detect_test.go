package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected usecase.OutputFormat
		wantErr  bool
	}{
		{name: "empty defaults to json", format: "", expected: usecase.FormatJSON},
		{name: "json", format: "json", expected: usecase.FormatJSON},
		{name: "yaml", format: "yaml", expected: usecase.FormatYAML},
		{name: "yml alias", format: "yml", expected: usecase.FormatYAML},
		{name: "invalid format", format: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReadExtraABIs(t *testing.T) {
	t.Run("reads files with their paths as source", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "registry.abi.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

		extras, err := readExtraABIs([]string{path})
		require.NoError(t, err)
		require.Len(t, extras, 1)
		assert.Equal(t, path, extras[0].Source)
		assert.Equal(t, []byte(`[]`), extras[0].Data)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := readExtraABIs([]string{filepath.Join(t.TempDir(), "missing.json")})
		assert.Error(t, err)
	})

	t.Run("no files yields no extras", func(t *testing.T) {
		extras, err := readExtraABIs(nil)
		require.NoError(t, err)
		assert.Empty(t, extras)
	})
}
