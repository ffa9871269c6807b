package pergola

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/pergola/internal/compiler"
	"github.com/aretw0/pergola/internal/runtime"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/templates"
	"gopkg.in/yaml.v3"
)

// Version is the library version reported by the CLI and servers.
const Version = "0.4.0"

// Validator is the high-level entry point of the library.
// It holds only immutable options and is safe for concurrent use on
// different trees.
type Validator struct {
	pipeline *runtime.Pipeline
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Validator.
type Option func(*Validator)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(v *Validator) {
		v.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the validator.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// New initializes a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if v.logger == nil {
		v.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	v.pipeline = runtime.NewPipeline(
		runtime.WithLogger(v.logger),
		runtime.WithLifecycleHooks(v.hooks),
	)
	return v
}

// RunOption configures a single validation pass.
type RunOption func(*runtime.Guard)

// WithTemplate enables locked-component restoration against template.
// It has no effect unless locked is non-empty.
func WithTemplate(template *domain.Config, locked []string) RunOption {
	return func(g *runtime.Guard) {
		g.Template = template
		g.Locked = locked
	}
}

// WithBuiltinTemplate is WithTemplate for a template from the registry.
func WithBuiltinTemplate(t *templates.Template) RunOption {
	return func(g *runtime.Guard) {
		if t == nil {
			return
		}
		g.Template = t.Config
		g.Locked = t.Locked
	}
}

// Result is the outcome of a validation pass.
type Result struct {
	Config *domain.Config `json:"config"`
	Report *domain.Report `json:"report"`

	// Warnings lists input fields that were dropped while decoding.
	Warnings []string `json:"warnings,omitempty"`
}

// Validate runs the pipeline over a copy of cfg; the argument is never
// modified. Running Validate on its own output yields the same tree.
func (v *Validator) Validate(ctx context.Context, cfg *domain.Config, opts ...RunOption) (*Result, error) {
	if cfg == nil {
		return nil, domain.ErrEmptyInput
	}

	var guard runtime.Guard
	for _, opt := range opts {
		opt(&guard)
	}

	out := cfg.Clone()
	report, err := v.pipeline.Run(ctx, out, &guard)
	if err != nil {
		return nil, fmt.Errorf("validation aborted: %w", err)
	}

	v.logger.DebugContext(ctx, "validation complete",
		"business_type", out.BusinessType,
		"tabs", len(out.Tabs),
		"changed", report.Changed(),
		"degraded", len(report.Degraded),
	)
	return &Result{Config: out, Report: report}, nil
}

// ValidateBytes decodes JSON or YAML generator output and validates it.
// Decoding problems are reported as warnings on the result.
func (v *Validator) ValidateBytes(ctx context.Context, data []byte, opts ...RunOption) (*Result, error) {
	cfg, warnings, err := Decode(data)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		v.logger.WarnContext(ctx, "dropped malformed field", "error", w)
	}

	res, err := v.Validate(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, w.Error())
	}
	return res, nil
}

// Validate runs the pipeline with default options and returns the
// validated tree.
func Validate(cfg *domain.Config) *domain.Config {
	res, err := New().Validate(context.Background(), cfg)
	if err != nil {
		return nil
	}
	return res.Config
}

// Decode parses JSON or YAML bytes into a configuration tree. Malformed
// fields are dropped and returned as warnings; only unparseable input is an
// error.
func Decode(data []byte) (*domain.Config, []error, error) {
	return compiler.NewParser().Parse(data)
}

// FromMap builds a configuration tree from an already decoded document.
func FromMap(raw map[string]any) (*domain.Config, []error) {
	return compiler.NewParser().Compile(raw)
}

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Encode serializes v as indented JSON or YAML.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
