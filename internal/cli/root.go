// Package cli defines the protoscout command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/protoscout-org/protoscout/internal/adapters/progress"
	"github.com/protoscout-org/protoscout/internal/app"
	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "protoscout",
		Short: "Protocol role discovery for subgraph deployments",
		Long: `Protoscout matches verified contract ABIs against protocol role
specifications and synthesizes the template context that drives subgraph
source templating and deployment.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			config.BindGlobalFlags(v, cmd)

			var sink usecase.ProgressSink
			if v.GetBool("non_interactive") {
				sink = progress.NewNopSink()
			} else {
				sink = progress.NewSpinnerSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts and spinners")
	rootCmd.PersistentFlags().String("pool", "", "Path to the candidate pool file (defaults to abis.json)")
	rootCmd.PersistentFlags().String("protocols", "", "Path to the protocol role config (defaults to protocols.yaml)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use for explorer lookups (e.g., mainnet, sepolia)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	detectCmd := NewDetectCmd()
	detectCmd.GroupID = "main"
	rootCmd.AddCommand(detectCmd)

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	poolCmd := NewPoolCmd()
	poolCmd.GroupID = "management"
	rootCmd.AddCommand(poolCmd)

	rolesCmd := NewRolesCmd()
	rolesCmd.GroupID = "management"
	rootCmd.AddCommand(rolesCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
