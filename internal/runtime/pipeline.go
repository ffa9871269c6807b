package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/stages"
)

// Guard carries what the locked-component stage needs: the template the
// configuration was derived from and the ids that must survive.
type Guard struct {
	Template *domain.Config
	Locked   []string
}

func (g *Guard) active() bool {
	return g != nil && g.Template != nil && len(g.Locked) > 0
}

// Pipeline runs the validation stages over a configuration tree in a fixed
// order. Each stage mutates the tree in place; none of them re-invokes
// another.
type Pipeline struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger used for stage diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Pipeline) {
		p.hooks = hooks
	}
}

// NewPipeline creates a pipeline. Without WithLogger it logs nowhere.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type stage struct {
	name string
	run  func(cfg *domain.Config) (degraded []string)
}

func (p *Pipeline) plan(guard *Guard) []stage {
	plan := []stage{
		{domain.StageCalendars, wrap(stages.ConsolidateCalendars)},
		{domain.StageTabLimit, wrap(stages.EnforceTabLimit)},
		{domain.StageGallery, wrap(stages.EnsureGallery)},
		{domain.StagePipelines, wrap(stages.TransformPipelineStages)},
		{domain.StageColors, wrap(stages.ValidateColors)},
	}
	if guard.active() {
		template := guard.Template.Clone()
		template.Prune()
		plan = append(plan, stage{domain.StageLocked, func(cfg *domain.Config) []string {
			return stages.RestoreLockedComponents(cfg, template, guard.Locked)
		}})
	}
	return append(plan, stage{domain.StageFlags, wrap(stages.StripInternalFlags)})
}

func wrap(fn func(*domain.Config)) func(*domain.Config) []string {
	return func(cfg *domain.Config) []string {
		fn(cfg)
		return nil
	}
}

// Run validates cfg in place and reports what every stage changed.
// The locked-component stage only runs when guard carries a template and at
// least one locked id. Nil tabs and components are dropped before the first
// stage. Run stops between stages if ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context, cfg *domain.Config, guard *Guard) (*domain.Report, error) {
	if cfg == nil {
		return nil, domain.ErrEmptyInput
	}
	cfg.Prune()

	report := &domain.Report{}
	for _, s := range p.plan(guard) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		before := cfg.Clone()
		event := &domain.StageEvent{Timestamp: time.Now(), Stage: s.name}
		if p.hooks.OnStageStart != nil {
			p.hooks.OnStageStart(ctx, event)
		}

		degraded := s.run(cfg)

		diff := domain.Diff(before, cfg)
		event.Changed = diff != nil
		event.Duration = time.Since(event.Timestamp)
		report.Stages = append(report.Stages, domain.StageReport{
			Stage:   s.name,
			Changed: event.Changed,
			Diff:    diff,
		})

		p.logger.DebugContext(ctx, "stage complete",
			"stage", s.name,
			"changed", event.Changed,
			"duration", event.Duration,
		)

		for _, id := range degraded {
			p.logger.WarnContext(ctx, "locked component missing from template",
				"stage", s.name,
				"component_id", id,
			)
			if p.hooks.OnDegraded != nil {
				p.hooks.OnDegraded(ctx, s.name, id)
			}
		}
		report.Degraded = append(report.Degraded, degraded...)

		if p.hooks.OnStageEnd != nil {
			p.hooks.OnStageEnd(ctx, event)
		}
	}
	return report, nil
}
