package stages

import (
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/palette"
)

// TransformPipelineStages converts raw stage lists into canonical pipeline
// objects and re-applies color inference to pipelines the generator already
// produced in canonical form.
func TransformPipelineStages(cfg *domain.Config) {
	for _, comp := range cfg.Components() {
		normalizePipeline(comp)
	}
}

func normalizePipeline(comp *domain.Component) {
	if comp.View == domain.ViewPipeline && comp.Stages != nil {
		raw := comp.Stages
		comp.Stages = nil
		if len(raw) > 0 {
			comp.Pipeline = BuildPipeline(raw)
			return
		}
	}
	if comp.Pipeline != nil {
		recolor(comp.Pipeline)
	}
}

// BuildPipeline resolves raw stages into ordered, colored pipeline stages.
// Ids are stage_<n> and order follows input position. A color word in the
// name wins over a generator-supplied color; the stage cycle is the last
// resort.
func BuildPipeline(raw []domain.RawStage) *domain.PipelineConfig {
	if len(raw) == 0 {
		return nil
	}
	stages := make([]domain.PipelineStage, len(raw))
	for i, rs := range raw {
		name := rs.Name
		if name == "" {
			name = fmt.Sprintf("Stage %d", i+1)
		}
		stage := domain.PipelineStage{
			ID:    fmt.Sprintf("stage_%d", i+1),
			Name:  name,
			Order: i,
		}
		inferred, ok := palette.InferStageColor(name)
		switch {
		case ok:
			stage.Color = inferred.Primary
		case rs.Color != "":
			stage.Color = rs.Color
		default:
			stage.Color = palette.CycleColor(i)
		}
		if inferred.Secondary != "" {
			stage.ColorSecondary = inferred.Secondary
		} else {
			stage.ColorSecondary = rs.ColorSecondary
		}
		stages[i] = stage
	}
	return &domain.PipelineConfig{
		Stages:         stages,
		DefaultStageID: domain.DefaultStageID,
	}
}

// recolor re-runs inference on a canonical pipeline. Stages keep their
// position and ids; order is renumbered to match the position and stages
// with no color at all get their cycle color.
func recolor(p *domain.PipelineConfig) {
	for i := range p.Stages {
		stage := &p.Stages[i]
		stage.Order = i
		if stage.Name != "" {
			if inferred, ok := palette.InferStageColor(stage.Name); ok {
				stage.Color = inferred.Primary
				if inferred.Secondary != "" {
					stage.ColorSecondary = inferred.Secondary
				}
			}
		}
		if stage.Color == "" {
			stage.Color = palette.CycleColor(i)
		}
	}
	if p.DefaultStageID == "" && len(p.Stages) > 0 {
		p.DefaultStageID = p.Stages[0].ID
	}
}
