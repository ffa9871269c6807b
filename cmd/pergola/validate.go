package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/internal/presentation/tui"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/templates"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate and repair a generated configuration",
	Long: `Reads a JSON or YAML configuration from a file (or stdin), runs it through
the validation pipeline and writes the repaired configuration to stdout.

Locked components are restored when a template is selected with --template
(a business type, or "auto" to use the configuration's own business_type)
or --template-file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runValidate(cmd, args)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		if full, _ := cmd.Flags().GetBool("full"); full {
			if err := writeEncoded(cmd, res); err != nil {
				return err
			}
		} else if err := writeEncoded(cmd, res.Config); err != nil {
			return err
		}

		if report, _ := cmd.Flags().GetBool("report"); report {
			return printReport(cmd.ErrOrStderr(), res)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addTemplateFlags(validateCmd)
	validateCmd.Flags().Bool("full", false, "Write the config, report and warnings instead of the config alone")
	validateCmd.Flags().Bool("report", false, "Print a human-readable summary to stderr")
}

func addTemplateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("template", "t", "", `Built-in template business type, or "auto"`)
	cmd.Flags().String("template-file", "", "Custom template file (JSON or YAML)")
	cmd.Flags().StringSlice("locked", nil, "Locked component ids, overriding the template's own")
}

func runValidate(cmd *cobra.Command, args []string) (*pergola.Result, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	cfg, warnings, err := pergola.Decode(data)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn("dropped malformed field", "error", w)
	}

	opts, err := templateOptions(cmd, cfg)
	if err != nil {
		return nil, err
	}

	res, err := pergola.New(pergola.WithLogger(logger)).Validate(cmd.Context(), cfg, opts...)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, w.Error())
	}
	for _, id := range res.Report.Degraded {
		logger.Warn("locked component could not be restored", "component_id", id)
	}
	return res, nil
}

// templateOptions resolves the template flags against cfg.
func templateOptions(cmd *cobra.Command, cfg *domain.Config) ([]pergola.RunOption, error) {
	tplType, _ := cmd.Flags().GetString("template")
	tplFile, _ := cmd.Flags().GetString("template-file")
	locked, _ := cmd.Flags().GetStringSlice("locked")

	var tpl *templates.Template
	switch {
	case tplFile != "" && tplType != "":
		return nil, errors.New("--template and --template-file are mutually exclusive")
	case tplFile != "":
		data, err := os.ReadFile(tplFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read template: %w", err)
		}
		if tpl, err = templates.Load(data); err != nil {
			return nil, err
		}
	case tplType == "auto":
		var err error
		tpl, err = templates.Get(cfg.BusinessType)
		if errors.Is(err, templates.ErrUnknownTemplate) {
			tpl = nil
		} else if err != nil {
			return nil, err
		}
	case tplType != "":
		var err error
		if tpl, err = templates.Get(tplType); err != nil {
			return nil, err
		}
	}

	if tpl == nil {
		if cmd.Flags().Changed("locked") {
			return nil, errors.New("--locked requires a template")
		}
		return nil, nil
	}
	if cmd.Flags().Changed("locked") {
		return []pergola.RunOption{pergola.WithTemplate(tpl.Config, locked)}, nil
	}
	return []pergola.RunOption{pergola.WithBuiltinTemplate(tpl)}, nil
}

func printReport(w io.Writer, res *pergola.Result) error {
	tty := false
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok && tui.IsTerminal(f) {
		tty = true
		profile = termenv.NewOutput(f).Profile
	}

	out, err := tui.NewRenderer(tty)(tui.Summary(res.Config, res.Report, res.Warnings))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(w, out)
	fmt.Fprint(w, tui.Swatches(res.Config.Colors, profile))
	return nil
}
