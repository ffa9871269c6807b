package dto

// ConfigHeader holds the scalar fields of a configuration root.
// It uses "mapstructure" tags to match the generator's JSON/YAML keys.
// Nested collections (tabs, colors) are walked separately by the compiler.
type ConfigHeader struct {
	BusinessName string `json:"business_name" mapstructure:"business_name"`
	BusinessType string `json:"business_type" mapstructure:"business_type"`
}

// TabHeader holds the scalar fields of a tab.
type TabHeader struct {
	ID        string `json:"id" mapstructure:"id"`
	Label     string `json:"label" mapstructure:"label"`
	Icon      string `json:"icon" mapstructure:"icon"`
	Removable bool   `json:"_removable" mapstructure:"_removable"`
}

// ComponentHeader holds the scalar fields of a component.
type ComponentHeader struct {
	ID             string   `json:"id" mapstructure:"id"`
	Label          string   `json:"label" mapstructure:"label"`
	View           string   `json:"view" mapstructure:"view"`
	DataSource     string   `json:"dataSource" mapstructure:"dataSource"`
	AvailableViews []string `json:"availableViews" mapstructure:"availableViews"`
	Locked         bool     `json:"_locked" mapstructure:"_locked"`
}

// StageMetadata is the object form of a raw stage.
type StageMetadata struct {
	Name           string `json:"name" mapstructure:"name"`
	Color          string `json:"color" mapstructure:"color"`
	ColorSecondary string `json:"color_secondary" mapstructure:"color_secondary"`
}

// PipelineHeader holds the scalar fields of a canonical pipeline.
type PipelineHeader struct {
	DefaultStageID string `json:"default_stage_id" mapstructure:"default_stage_id"`
}

// PipelineStageMetadata is a canonical pipeline stage as found on the wire.
type PipelineStageMetadata struct {
	ID             string `json:"id" mapstructure:"id"`
	Name           string `json:"name" mapstructure:"name"`
	Color          string `json:"color" mapstructure:"color"`
	ColorSecondary string `json:"color_secondary" mapstructure:"color_secondary"`
	TextColor      string `json:"textColor" mapstructure:"textColor"`
	Order          *int   `json:"order" mapstructure:"order"`
	CardStyle      string `json:"card_style" mapstructure:"card_style"`
}
