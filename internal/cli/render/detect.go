package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

var (
	roleStyle     = color.New(color.FgGreen, color.Bold)
	dynamicStyle  = color.New(color.FgMagenta)
	absentStyle   = color.New(color.FgRed)
	keyStyle      = color.New(color.FgWhite)
	faintStyle    = color.New(color.Faint)
	headlineStyle = color.New(color.Bold, color.FgHiWhite)
)

// DetectRenderer renders the outcome of a protocol detection run.
type DetectRenderer struct {
	out io.Writer
}

// NewDetectRenderer creates a new detection renderer.
func NewDetectRenderer(out io.Writer) *DetectRenderer {
	return &DetectRenderer{out: out}
}

// Render prints the role assignment table and a context summary.
func (r *DetectRenderer) Render(result *usecase.DetectProtocolResult) error {
	title := cases.Title(language.English).String(result.Protocol.Name)
	fmt.Fprintln(r.out, headlineStyle.Sprintf("%s on %s", title, result.Protocol.Network))
	fmt.Fprintf(r.out, "Candidate pool: %d entries", result.PoolSize)
	if result.Merged > 0 || result.Reused > 0 {
		fmt.Fprintf(r.out, " (%d merged, %d already pooled)", result.Merged, result.Reused)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out)

	t := newPlainTable(r.out)
	t.AppendHeader(table.Row{"ROLE", "CANDIDATE", "NAME"})

	for _, role := range result.Protocol.Roles {
		if role.Dynamic {
			t.AppendRow(table.Row{
				roleStyle.Sprint(role.Name),
				dynamicStyle.Sprint("(dynamic)"),
				faintStyle.Sprint(role.DefaultName),
			})
			continue
		}
		if assigned, ok := result.Assignment.Get(role.Name); ok {
			t.AppendRow(table.Row{
				roleStyle.Sprint(role.Name),
				keyStyle.Sprint(assigned.Address),
				assigned.DefaultName,
			})
		} else {
			t.AppendRow(table.Row{
				absentStyle.Sprint(role.Name),
				absentStyle.Sprint("(no match)"),
				faintStyle.Sprint(role.DefaultName),
			})
		}
	}
	t.Render()
	fmt.Fprintln(r.out)

	if result.OutPath != "" {
		fmt.Fprintf(r.out, "Template context written to %s (%d keys)\n",
			result.OutPath, result.Context.Len())
	} else {
		fmt.Fprintf(r.out, "Template context: %d keys\n", result.Context.Len())
	}

	return nil
}

// newPlainTable builds a borderless left-aligned table writer.
func newPlainTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = true
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "   "
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})
	return t
}

var _ Renderer[*usecase.DetectProtocolResult] = (*DetectRenderer)(nil)
