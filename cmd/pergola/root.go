package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pergola",
	Short: "Pergola validates AI-generated dashboard configurations",
	Long: `Pergola runs generated dashboard configurations through a deterministic
repair pipeline: calendar consolidation, tab limits, gallery injection,
pipeline stages, colors, locked components and internal flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("format", "json", "Output format: json or yaml")
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(cmd.ErrOrStderr(), level), nil
}

func outputFormat(cmd *cobra.Command) (pergola.Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	switch f := pergola.Format(raw); f {
	case pergola.FormatJSON, pergola.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", raw)
	}
}

func writeEncoded(cmd *cobra.Command, v any) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	data, err := pergola.Encode(v, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// readInput reads the file named by args[0], or stdin when no file or "-"
// is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}
