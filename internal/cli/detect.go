package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/protoscout-org/protoscout/internal/cli/render"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// NewDetectCmd creates the detect command.
func NewDetectCmd() *cobra.Command {
	var (
		abiFiles []string
		outPath  string
		format   string
		savePool bool
	)

	cmd := &cobra.Command{
		Use:   "detect <protocol>",
		Short: "Resolve protocol roles against the candidate pool",
		Long: `Detect matches every candidate ABI in the pool against the protocol's
role specifications and synthesizes the deployment template context.

Extra ABI files can be merged into the pool for the run; identical content
collapses onto the existing entry.`,
		Example: `  # Detect ENS roles and print the assignment
  protoscout detect ens

  # Write the template context for the subgraph pipeline
  protoscout detect ens --out subgraph-context.json

  # Merge a locally compiled ABI into the run and persist it
  protoscout detect ens --abi ./out/Registry.abi.json --save-pool`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			extras, err := readExtraABIs(abiFiles)
			if err != nil {
				return err
			}

			outputFormat, err := parseFormat(format)
			if err != nil {
				return err
			}

			params := usecase.DetectProtocolParams{
				Protocol:  args[0],
				ExtraABIs: extras,
				OutPath:   outPath,
				Format:    outputFormat,
				SavePool:  savePool,
			}

			result, err := app.DetectProtocol.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDetectRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringArrayVar(&abiFiles, "abi", nil, "Extra ABI JSON file to merge into the pool (repeatable)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the template context to this path")
	cmd.Flags().StringVar(&format, "format", "json", "Context output format (json, yaml)")
	cmd.Flags().BoolVar(&savePool, "save-pool", false, "Persist merged ABIs back to the pool file")

	return cmd
}

// readExtraABIs loads ABI blobs from disk for merge operations.
func readExtraABIs(paths []string) ([]usecase.ExtraABI, error) {
	var extras []usecase.ExtraABI
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading ABI file %s: %w", path, err)
		}
		extras = append(extras, usecase.ExtraABI{Source: path, Data: data})
	}
	return extras, nil
}

// parseFormat maps the --format flag to an output format.
func parseFormat(format string) (usecase.OutputFormat, error) {
	switch format {
	case "", "json":
		return usecase.FormatJSON, nil
	case "yaml", "yml":
		return usecase.FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: json, yaml)", format)
	}
}
