package stages

import (
	"testing"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPipeline(t *testing.T) {
	tests := []struct {
		name      string
		raw       domain.RawStage
		index     int
		color     string
		secondary string
	}{
		{"single color word", domain.RawStage{Name: "Yellow Belt"}, 0, "#FDE047", ""},
		{"compound before single", domain.RawStage{Name: "White Stripe"}, 1, "#E5E7EB", "#1A1A1A"},
		{"compound without color word", domain.RawStage{Name: "Camo Belt"}, 2, "#22C55E", "#92400E"},
		{"color word beats generator", domain.RawStage{Name: "Gold Tier", Color: "#000000"}, 3, "#FFD700", ""},
		{"generator color kept", domain.RawStage{Name: "Inbox", Color: "#123456", ColorSecondary: "#654321"}, 4, "#123456", "#654321"},
		{"substring match", domain.RawStage{Name: "Delivered"}, 5, "#EF4444", ""},
		{"cycle fallback", domain.RawStage{Name: "Quoted"}, 6, "#3B82F6", ""},
	}

	raw := make([]domain.RawStage, len(tests))
	for i, tt := range tests {
		raw[i] = tt.raw
	}
	p := BuildPipeline(raw)
	require.NotNil(t, p)
	require.Len(t, p.Stages, len(tests))
	assert.Equal(t, domain.DefaultStageID, p.DefaultStageID)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := p.Stages[tt.index]
			assert.Equal(t, tt.raw.Name, stage.Name)
			assert.Equal(t, tt.index, stage.Order)
			assert.Equal(t, tt.color, stage.Color)
			assert.Equal(t, tt.secondary, stage.ColorSecondary)
		})
	}
}

func TestBuildPipeline_IDsAndNames(t *testing.T) {
	p := BuildPipeline([]domain.RawStage{{Name: "New"}, {}, {Name: "Done"}})
	require.NotNil(t, p)

	assert.Equal(t, "stage_1", p.Stages[0].ID)
	assert.Equal(t, "stage_2", p.Stages[1].ID)
	assert.Equal(t, "Stage 2", p.Stages[1].Name)
	assert.Equal(t, "stage_3", p.Stages[2].ID)

	assert.Nil(t, BuildPipeline(nil))
}

func TestBuildPipeline_CycleWraps(t *testing.T) {
	names := []string{"Lead", "Quoted", "Booked", "Prep", "Session", "Healing", "Touch Up"}
	raw := make([]domain.RawStage, len(names))
	for i, n := range names {
		raw[i] = domain.RawStage{Name: n}
	}

	p := BuildPipeline(raw)
	require.Len(t, p.Stages, 7)
	assert.Equal(t, []string{"#3B82F6", "#8B5CF6", "#F59E0B", "#10B981", "#EF4444", "#EC4899", "#3B82F6"},
		[]string{
			p.Stages[0].Color, p.Stages[1].Color, p.Stages[2].Color, p.Stages[3].Color,
			p.Stages[4].Color, p.Stages[5].Color, p.Stages[6].Color,
		})
}

func TestTransformPipelineStages(t *testing.T) {
	belts := &domain.Component{ID: "belts", View: domain.ViewPipeline, Stages: []domain.RawStage{
		{Name: "White"}, {Name: "Blue Stripe"},
	}}
	empty := &domain.Component{ID: "leads", View: domain.ViewPipeline, Stages: []domain.RawStage{}}
	tabled := &domain.Component{ID: "orders", View: domain.ViewTable, Stages: []domain.RawStage{{Name: "Open"}}}
	canonical := &domain.Component{ID: "jobs", View: domain.ViewPipeline, Pipeline: &domain.PipelineConfig{
		Stages: []domain.PipelineStage{
			{ID: "a", Name: "Blue Crew", Color: "#000000"},
			{ID: "b", Name: "Open"},
			{ID: "c", Name: "Closed", Color: "#ABCDEF", Order: 7},
			{ID: "d", Name: "Archived", Color: "#ABCDEF", Order: 7},
		},
	}}

	cfg := &domain.Config{Tabs: []*domain.Tab{
		{ID: "tab_2", Components: []*domain.Component{belts, empty, tabled, canonical}},
	}}
	TransformPipelineStages(cfg)

	assert.Nil(t, belts.Stages)
	require.NotNil(t, belts.Pipeline)
	assert.Equal(t, "#3B82F6", belts.Pipeline.Stages[1].Color)
	assert.Equal(t, "#1A1A1A", belts.Pipeline.Stages[1].ColorSecondary)

	assert.Nil(t, empty.Stages, "empty raw list is cleared")
	assert.Nil(t, empty.Pipeline)

	assert.Len(t, tabled.Stages, 1, "only pipeline views are transformed")
	assert.Nil(t, tabled.Pipeline)

	stages := canonical.Pipeline.Stages
	assert.Equal(t, "#3B82F6", stages[0].Color, "inference overrides")
	assert.Equal(t, "#8B5CF6", stages[1].Color, "missing color filled from cycle")
	assert.Equal(t, "#ABCDEF", stages[2].Color)
	for i, stage := range stages {
		assert.Equal(t, i, stage.Order, "order follows position for %s", stage.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{stages[0].ID, stages[1].ID, stages[2].ID, stages[3].ID})
	assert.Equal(t, "a", canonical.Pipeline.DefaultStageID)

	once := cfg.Clone()
	TransformPipelineStages(cfg)
	assert.Equal(t, once, cfg)
}
