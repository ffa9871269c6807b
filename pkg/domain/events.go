package domain

import (
	"context"
	"time"
)

// Stage names, in execution order.
const (
	StageCalendars = "consolidate_calendars"
	StageTabLimit  = "enforce_tab_limit"
	StageGallery   = "ensure_gallery"
	StagePipelines = "transform_pipeline_stages"
	StageColors    = "validate_colors"
	StageLocked    = "restore_locked_components"
	StageFlags     = "strip_internal_flags"
)

// StageEvent describes one stage execution within a validation pass.
type StageEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Stage     string        `json:"stage"`
	Changed   bool          `json:"changed"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for pipeline observability.
type LifecycleHooks struct {
	OnStageStart func(context.Context, *StageEvent)
	OnStageEnd   func(context.Context, *StageEvent)
	OnDegraded   func(ctx context.Context, stage string, componentID string)
}
