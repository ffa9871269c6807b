package main

import (
	"fmt"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the configuration tree visualization",
	Long: `Validates the configuration and outputs a Mermaid diagram (graph TD) of its
tabs, components and pipeline stages. Tabs and components added by the
pipeline are highlighted. Use --raw to draw the input as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			cfg, _, err := pergola.Decode(data)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(cfg, nil))
			return nil
		}

		res, err := runValidate(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(res.Config, graph.OverlayFromReport(res.Report)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addTemplateFlags(graphCmd)
	graphCmd.Flags().Bool("raw", false, "Draw the input without validating it")
}
