package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/pergola/pkg/templates"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template [business_type]",
	Short: "Show built-in templates",
	Long: `Without arguments, lists the business types that have a built-in template.
With a business type, prints that template and its locked component ids.
With --detect, matches a free-text business description to a template.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if description, _ := cmd.Flags().GetString("detect"); description != "" {
			detection, ok := templates.Detect(description)
			if !ok {
				return errors.New("no template matches the description")
			}
			return writeEncoded(cmd, detection)
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(templates.Types(), "\n"))
			return nil
		}

		tpl, err := templates.Get(args[0])
		if err != nil {
			return err
		}
		return writeEncoded(cmd, tpl)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().String("detect", "", "Business description to match against template aliases")
}
