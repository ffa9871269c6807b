package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aretw0/pergola/internal/dto"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// list accepts any sequence; elements are checked one by one so a single
// bad entry does not discard its siblings.
var list = schema.Custom("list", func(value any) error {
	if _, ok := schema.Elements(value); !ok {
		return fmt.Errorf("expected list, got %T", value)
	}
	return nil
})

var (
	configSchema = schema.Schema{
		"business_name": schema.Scalar(),
		"business_type": schema.Scalar(),
		"tabs":          list,
		"colors":        schema.Map(),
	}
	tabSchema = schema.Schema{
		"id":         schema.Scalar(),
		"label":      schema.Scalar(),
		"icon":       schema.String(),
		"components": list,
		"_removable": schema.Bool(),
	}
	componentSchema = schema.Schema{
		"id":             schema.Scalar(),
		"label":          schema.Scalar(),
		"view":           schema.String(),
		"dataSource":     schema.String(),
		"availableViews": schema.Slice(schema.String()),
		"stages":         list,
		"pipeline":       schema.Map(),
		"_locked":        schema.Bool(),
	}
	rawStageSchema = schema.Schema{
		"name":            schema.Scalar(),
		"color":           schema.String(),
		"color_secondary": schema.String(),
	}
	pipelineSchema = schema.Schema{
		"stages":           list,
		"default_stage_id": schema.Scalar(),
	}
	pipelineStageSchema = schema.Schema{
		"id":              schema.Scalar(),
		"name":            schema.Scalar(),
		"color":           schema.String(),
		"color_secondary": schema.String(),
		"textColor":       schema.String(),
		"order":           schema.Int(),
		"card_style":      schema.String(),
	}
)

// Parser converts generator output into a configuration tree.
//
// Decoding is lenient: fields with the wrong shape are dropped and reported
// as warnings instead of failing the whole document. Only input that is not
// an object at all is rejected.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes JSON or YAML bytes into a Config.
func (p *Parser) Parse(data []byte) (*domain.Config, []error, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil, domain.ErrEmptyInput
	}

	var raw any
	if trimmed[0] == '{' || trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &raw); err != nil {
			return nil, nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	m, ok := schema.AsMap(raw)
	if !ok {
		return nil, nil, fmt.Errorf("failed to parse config: expected an object, got %T", raw)
	}
	cfg, warnings := p.Compile(m)
	return cfg, warnings, nil
}

// Compile builds a Config from an already decoded generic tree.
func (p *Parser) Compile(raw map[string]any) (*domain.Config, []error) {
	c := &compilation{}
	cfg := c.config(raw)
	return cfg, c.warnings
}

// CompileComponent builds a single component from a decoded generic map.
func (p *Parser) CompileComponent(raw map[string]any) (*domain.Component, []error) {
	c := &compilation{}
	comp := c.component("component", raw)
	return comp, c.warnings
}

type compilation struct {
	warnings []error
}

func (c *compilation) warn(path string, err error) {
	if err == nil {
		return
	}
	c.warnings = append(c.warnings, schema.Prefix(path, err)...)
}

func (c *compilation) sanitize(path string, s schema.Schema, raw map[string]any) map[string]any {
	clean, err := schema.Sanitize(s, raw)
	c.warn(path, err)
	return clean
}

func (c *compilation) decode(path string, input map[string]any, out any) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		c.warn(path, err)
		return
	}
	c.warn(path, decoder.Decode(input))
}

func (c *compilation) config(raw map[string]any) *domain.Config {
	clean := c.sanitize("config", configSchema, raw)

	var header dto.ConfigHeader
	c.decode("config", clean, &header)

	cfg := &domain.Config{
		BusinessName: header.BusinessName,
		BusinessType: header.BusinessType,
		Tabs:         []*domain.Tab{},
	}

	elems, _ := schema.Elements(clean["tabs"])
	for i, elem := range elems {
		path := fmt.Sprintf("tabs[%d]", i)
		m, ok := schema.AsMap(elem)
		if !ok {
			c.warn(path, fmt.Errorf("expected object, got %T", elem))
			continue
		}
		cfg.Tabs = append(cfg.Tabs, c.tab(path, m))
	}

	if colors, ok := schema.AsMap(clean["colors"]); ok {
		cfg.Colors = c.colors(colors)
	}
	return cfg
}

func (c *compilation) tab(path string, raw map[string]any) *domain.Tab {
	clean := c.sanitize(path, tabSchema, raw)

	var header dto.TabHeader
	c.decode(path, clean, &header)

	tab := &domain.Tab{
		ID:         header.ID,
		Label:      header.Label,
		Icon:       header.Icon,
		Removable:  header.Removable,
		Components: []*domain.Component{},
	}

	elems, _ := schema.Elements(clean["components"])
	for i, elem := range elems {
		compPath := fmt.Sprintf("%s.components[%d]", path, i)
		m, ok := schema.AsMap(elem)
		if !ok {
			c.warn(compPath, fmt.Errorf("expected object, got %T", elem))
			continue
		}
		tab.Components = append(tab.Components, c.component(compPath, m))
	}
	return tab
}

func (c *compilation) component(path string, raw map[string]any) *domain.Component {
	clean := c.sanitize(path, componentSchema, raw)

	var header dto.ComponentHeader
	c.decode(path, clean, &header)

	comp := &domain.Component{
		ID:         header.ID,
		Label:      header.Label,
		DataSource: header.DataSource,
		Locked:     header.Locked,
	}

	if view := domain.ViewType(header.View); view.Valid() {
		comp.View = view
	} else if header.View != "" {
		c.warn(path, &schema.ValidationError{Key: "view", Reason: "unknown view", Value: header.View})
	}

	for _, v := range header.AvailableViews {
		if view := domain.ViewType(v); view.Valid() {
			comp.AvailableViews = append(comp.AvailableViews, view)
		} else {
			c.warn(path, &schema.ValidationError{Key: "availableViews", Reason: "unknown view", Value: v})
		}
	}

	if stages, ok := schema.Elements(clean["stages"]); ok {
		comp.Stages = make([]domain.RawStage, 0, len(stages))
		for i, elem := range stages {
			comp.Stages = append(comp.Stages, c.rawStage(fmt.Sprintf("%s.stages[%d]", path, i), elem))
		}
	}

	if pipeline, ok := schema.AsMap(clean["pipeline"]); ok {
		comp.Pipeline = c.pipeline(path+".pipeline", pipeline)
	}
	return comp
}

// rawStage accepts a bare name or a partial stage object. Anything else
// keeps its position as an unnamed stage.
func (c *compilation) rawStage(path string, elem any) domain.RawStage {
	if err := schema.Scalar().Validate(elem); err == nil {
		return domain.RawStage{Name: fmt.Sprint(elem)}
	}

	m, ok := schema.AsMap(elem)
	if !ok {
		c.warn(path, fmt.Errorf("expected stage name or object, got %T", elem))
		return domain.RawStage{}
	}
	clean := c.sanitize(path, rawStageSchema, m)

	var meta dto.StageMetadata
	c.decode(path, clean, &meta)
	return domain.RawStage{
		Name:           meta.Name,
		Color:          meta.Color,
		ColorSecondary: meta.ColorSecondary,
	}
}

func (c *compilation) pipeline(path string, raw map[string]any) *domain.PipelineConfig {
	clean := c.sanitize(path, pipelineSchema, raw)

	var header dto.PipelineHeader
	c.decode(path, clean, &header)

	p := &domain.PipelineConfig{
		DefaultStageID: header.DefaultStageID,
		Stages:         []domain.PipelineStage{},
	}

	elems, _ := schema.Elements(clean["stages"])
	for i, elem := range elems {
		stagePath := fmt.Sprintf("%s.stages[%d]", path, i)
		m, ok := schema.AsMap(elem)
		if !ok {
			c.warn(stagePath, fmt.Errorf("expected object, got %T", elem))
			continue
		}
		stageClean := c.sanitize(stagePath, pipelineStageSchema, m)

		var meta dto.PipelineStageMetadata
		c.decode(stagePath, stageClean, &meta)

		stage := domain.PipelineStage{
			ID:             meta.ID,
			Name:           meta.Name,
			Color:          meta.Color,
			ColorSecondary: meta.ColorSecondary,
			TextColor:      meta.TextColor,
			CardStyle:      meta.CardStyle,
			Order:          i,
		}
		if meta.Order != nil {
			stage.Order = *meta.Order
		}
		if stage.ID == "" {
			stage.ID = fmt.Sprintf("stage_%d", i+1)
		}
		p.Stages = append(p.Stages, stage)
	}
	return p
}

func (c *compilation) colors(raw map[string]any) *domain.Colors {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make(map[string]string, len(raw))
	for _, key := range keys {
		v := raw[key]
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			c.warn("colors", &schema.ValidationError{Key: key, Reason: "expected string", Value: v})
			continue
		}
		values[key] = s
	}
	return domain.ColorsFromMap(values)
}
