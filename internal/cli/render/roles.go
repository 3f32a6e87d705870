package render

import (
	"fmt"
	"io"

	"github.com/protoscout-org/protoscout/internal/usecase"
)

// RolesRenderer renders the protocol catalog and role specifications.
type RolesRenderer struct {
	out io.Writer
}

// NewRolesRenderer creates a new roles renderer.
func NewRolesRenderer(out io.Writer) *RolesRenderer {
	return &RolesRenderer{out: out}
}

// Render prints either the protocol names or one protocol's role spec.
func (r *RolesRenderer) Render(result *usecase.ListRolesResult) error {
	if result.Spec == nil {
		if len(result.Protocols) == 0 {
			fmt.Fprintln(r.out, "No protocols configured")
			return nil
		}
		fmt.Fprintln(r.out, headlineStyle.Sprint("Configured protocols:"))
		for _, name := range result.Protocols {
			fmt.Fprintf(r.out, "  %s\n", name)
		}
		return nil
	}

	spec := result.Spec
	fmt.Fprintln(r.out, headlineStyle.Sprintf("%s (%s)", spec.Name, spec.Network))
	if spec.SubgraphName != "" {
		fmt.Fprintf(r.out, "Subgraph: %s\n", spec.SubgraphName)
	}
	if spec.Base {
		fmt.Fprintln(r.out, faintStyle.Sprint("Base protocol"))
	}
	fmt.Fprintln(r.out)

	for _, role := range spec.Roles {
		header := roleStyle.Sprint(role.Name)
		if role.Dynamic {
			header += " " + dynamicStyle.Sprint("(dynamic)")
		}
		fmt.Fprintf(r.out, "%s (default name: %s)\n", header, role.DefaultName)
		for _, event := range role.Events {
			fmt.Fprintf(r.out, "    %s\n", faintStyle.Sprint(event.Signature()))
		}
	}

	return nil
}

var _ Renderer[*usecase.ListRolesResult] = (*RolesRenderer)(nil)
