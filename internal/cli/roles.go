package cli

import (
	"github.com/spf13/cobra"

	"github.com/protoscout-org/protoscout/internal/cli/render"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// NewRolesCmd creates the roles command.
func NewRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles [protocol]",
		Short: "List configured protocols and their role specifications",
		Example: `  # List protocol names
  protoscout roles

  # Show the full role spec for ENS
  protoscout roles ens`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListRolesParams{}
			if len(args) > 0 {
				params.Protocol = args[0]
			}

			result, err := app.ListRoles.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewRolesRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}
}
