package domain

import "strings"

// ViewType is the view discriminator of a component.
type ViewType string

const (
	ViewPipeline ViewType = "pipeline"
	ViewCalendar ViewType = "calendar"
	ViewCards    ViewType = "cards"
	ViewList     ViewType = "list"
	ViewRoute    ViewType = "route"
	ViewTable    ViewType = "table"
)

// Valid reports whether v is one of the known view types.
func (v ViewType) Valid() bool {
	switch v {
	case ViewPipeline, ViewCalendar, ViewCards, ViewList, ViewRoute, ViewTable:
		return true
	}
	return false
}

// Config is the root of a dashboard configuration tree.
type Config struct {
	BusinessName string `json:"business_name,omitempty" yaml:"business_name,omitempty"`

	// BusinessType is a free-form lookup key (e.g. "tattoo", "hair salon").
	// It is not an enum: the generator is not constrained to a fixed vocabulary.
	BusinessType string `json:"business_type,omitempty" yaml:"business_type,omitempty"`

	Tabs   []*Tab  `json:"tabs" yaml:"tabs"`
	Colors *Colors `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Tab is a navigation entry holding an ordered list of components.
type Tab struct {
	ID         string       `json:"id" yaml:"id"`
	Label      string       `json:"label" yaml:"label"`
	Icon       string       `json:"icon,omitempty" yaml:"icon,omitempty"`
	Components []*Component `json:"components" yaml:"components"`

	// Removable marks tabs the generator may drop. Internal only.
	Removable bool `json:"_removable,omitempty" yaml:"_removable,omitempty"`
}

// Component is a sub-view inside a tab, keyed by a registry entity kind.
type Component struct {
	ID             string     `json:"id" yaml:"id"`
	Label          string     `json:"label" yaml:"label"`
	View           ViewType   `json:"view,omitempty" yaml:"view,omitempty"`
	DataSource     string     `json:"dataSource,omitempty" yaml:"dataSource,omitempty"`
	AvailableViews []ViewType `json:"availableViews,omitempty" yaml:"availableViews,omitempty"`

	// Stages is the raw stage list as generated. Cleared once Pipeline is built.
	Stages   []RawStage      `json:"stages,omitempty" yaml:"stages,omitempty"`
	Pipeline *PipelineConfig `json:"pipeline,omitempty" yaml:"pipeline,omitempty"`

	// Locked marks components that must survive customization. Internal only.
	Locked bool `json:"_locked,omitempty" yaml:"_locked,omitempty"`
}

// RawStage is a stage as the generator produced it: a bare name or a
// partial object.
type RawStage struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	Color          string `json:"color,omitempty" yaml:"color,omitempty"`
	ColorSecondary string `json:"color_secondary,omitempty" yaml:"color_secondary,omitempty"`
}

// PipelineConfig is the canonical pipeline shape consumed by the renderer.
type PipelineConfig struct {
	Stages         []PipelineStage `json:"stages" yaml:"stages"`
	DefaultStageID string          `json:"default_stage_id" yaml:"default_stage_id"`
}

// PipelineStage is a fully resolved kanban column.
type PipelineStage struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Color          string `json:"color" yaml:"color"`
	ColorSecondary string `json:"color_secondary,omitempty" yaml:"color_secondary,omitempty"`
	TextColor      string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	Order          int    `json:"order" yaml:"order"`
	CardStyle      string `json:"card_style,omitempty" yaml:"card_style,omitempty"`
}

// IsDashboard reports whether t is the platform-managed Dashboard tab.
func (t *Tab) IsDashboard() bool {
	return t.ID == DashboardTabID || strings.EqualFold(t.Label, DashboardLabel)
}

// Prune drops nil tabs and nil components in place.
func (c *Config) Prune() {
	tabs := c.Tabs[:0]
	for _, tab := range c.Tabs {
		if tab == nil {
			continue
		}
		comps := tab.Components[:0]
		for _, comp := range tab.Components {
			if comp != nil {
				comps = append(comps, comp)
			}
		}
		if tab.Components != nil {
			tab.Components = comps
		}
		tabs = append(tabs, tab)
	}
	if c.Tabs != nil {
		c.Tabs = tabs
	}
}

// Components returns every component in the tree, in tab order.
func (c *Config) Components() []*Component {
	var out []*Component
	for _, tab := range c.Tabs {
		out = append(out, tab.Components...)
	}
	return out
}

// FindTab returns the first tab with the exact label, or nil.
func (c *Config) FindTab(label string) *Tab {
	for _, tab := range c.Tabs {
		if tab.Label == label {
			return tab
		}
	}
	return nil
}

// HasComponent reports whether any tab contains a component with id.
func (c *Config) HasComponent(id string) bool {
	for _, comp := range c.Components() {
		if comp.ID == id {
			return true
		}
	}
	return false
}
