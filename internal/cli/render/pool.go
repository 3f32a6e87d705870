package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

// maxSignatures caps how many event signatures are listed per pool entry.
const maxSignatures = 6

// PoolRenderer renders the candidate pool listing.
type PoolRenderer struct {
	out io.Writer
}

// NewPoolRenderer creates a new pool renderer.
func NewPoolRenderer(out io.Writer) *PoolRenderer {
	return &PoolRenderer{out: out}
}

// Render prints each pool entry with its event signatures.
func (r *PoolRenderer) Render(result *usecase.ShowPoolResult) error {
	if len(result.Entries) == 0 {
		fmt.Fprintf(r.out, "Pool is empty (%s)\n", result.Path)
		return nil
	}

	fmt.Fprintf(r.out, "Candidate pool: %s\n\n", result.Path)

	t := newPlainTable(r.out)
	t.AppendHeader(table.Row{"KEY", "ENTRIES", "EVENTS"})
	for _, entry := range result.Entries {
		t.AppendRow(table.Row{
			keyStyle.Sprint(entry.Key),
			entry.Entries,
			formatSignatures(entry.Signatures),
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\nTotal entries: %d\n", len(result.Entries))
	return nil
}

func formatSignatures(signatures []string) string {
	if len(signatures) == 0 {
		return faintStyle.Sprint("(no events)")
	}
	shown := signatures
	suffix := ""
	if len(shown) > maxSignatures {
		suffix = faintStyle.Sprintf("\n… and %d more", len(shown)-maxSignatures)
		shown = shown[:maxSignatures]
	}
	return strings.Join(shown, "\n") + suffix
}

var _ Renderer[*usecase.ShowPoolResult] = (*PoolRenderer)(nil)
