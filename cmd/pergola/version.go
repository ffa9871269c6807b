package main

import (
	"fmt"

	"github.com/aretw0/pergola"
	httpAdapter "github.com/aretw0/pergola/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pergola",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pergola version %s (api %s)\n", pergola.Version, httpAdapter.APIVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
