package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/protoscout-org/protoscout/internal/cli/render"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// NewPoolCmd creates the pool command group.
func NewPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage the candidate ABI pool",
		Long:  "Commands for inspecting and populating the candidate ABI pool.",
	}

	cmd.AddCommand(newPoolShowCmd())
	cmd.AddCommand(newPoolMergeCmd())
	cmd.AddCommand(newPoolFetchCmd())

	return cmd
}

func newPoolShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "List pool entries with their event signatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowPool.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewPoolRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}
}

func newPoolMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <abi-file>...",
		Short: "Merge ABI JSON files into the pool",
		Long: `Merge adds each ABI file to the pool keyed by content hash, so merging
the same ABI twice is a no-op.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			extras, err := readExtraABIs(args)
			if err != nil {
				return err
			}

			result, err := app.MergePool.Run(cmd.Context(), usecase.MergePoolParams{
				ExtraABIs: extras,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range result.Added {
				fmt.Fprintf(out, "%s %s\n", color.GreenString("added"), key)
			}
			for _, key := range result.Reused {
				fmt.Fprintf(out, "%s %s\n", color.YellowString("exists"), key)
			}
			fmt.Fprintf(out, "Pool size: %d\n", result.PoolSize)
			return nil
		},
	}
}

func newPoolFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <address>...",
		Short: "Fetch verified-contract ABIs from the explorer API",
		Long: `Fetch retrieves the verified ABI for each address from the configured
explorer API and adds it to the pool keyed by lowercase address. Addresses
already pooled are skipped.`,
		Example: `  protoscout pool fetch 0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e

  # Against sepolia's explorer
  protoscout -n sepolia pool fetch 0x1234...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.FetchABIs.Run(cmd.Context(), usecase.FetchABIsParams{
				Addresses: args,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, outcome := range result.Outcomes {
				switch {
				case outcome.Err != nil:
					failed++
					fmt.Fprintf(out, "%s %s: %v\n", color.RedString("failed"), outcome.Address, outcome.Err)
				case outcome.Skipped:
					fmt.Fprintf(out, "%s %s\n", color.YellowString("pooled"), outcome.Address)
				default:
					fmt.Fprintf(out, "%s %s (%d events)\n", color.GreenString("fetched"), outcome.Address, outcome.Events)
				}
			}
			fmt.Fprintf(out, "Pool size: %d\n", result.PoolSize)

			if failed > 0 {
				return fmt.Errorf("%d of %d fetches failed", failed, len(result.Outcomes))
			}
			return nil
		},
	}
}
