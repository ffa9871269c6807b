package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/pergola/internal/presentation/tui"
	"github.com/aretw0/pergola/pkg/palette"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [business_type]",
	Short: "Show industry color palettes",
	Long: `Without arguments, lists the industries that have a dedicated palette.
With a business type, prints its palette as color swatches (or encoded with
--format when stdout is not a terminal). Business types with no dedicated
palette get the neutral one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(palette.Industries(), "\n"))
			return nil
		}

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		colors, ok := palette.Lookup(args[0])
		if !ok {
			logger.Warn("no industry palette, using neutral", "business_type", args[0])
			colors = palette.Neutral()
		}
		if f, ok := cmd.OutOrStdout().(*os.File); ok && tui.IsTerminal(f) {
			fmt.Fprint(f, tui.Swatches(colors, termenv.NewOutput(f).Profile))
			return nil
		}
		return writeEncoded(cmd, colors)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
