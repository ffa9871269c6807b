package domain

// Clone returns a deep copy of the configuration tree.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{
		BusinessName: c.BusinessName,
		BusinessType: c.BusinessType,
		Colors:       c.Colors.Clone(),
	}
	if c.Tabs != nil {
		out.Tabs = make([]*Tab, len(c.Tabs))
		for i, tab := range c.Tabs {
			out.Tabs[i] = tab.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the tab and its components.
func (t *Tab) Clone() *Tab {
	if t == nil {
		return nil
	}
	out := *t
	if t.Components != nil {
		out.Components = make([]*Component, len(t.Components))
		for i, comp := range t.Components {
			out.Components[i] = comp.Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of the component.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	out := *c
	if c.AvailableViews != nil {
		out.AvailableViews = append([]ViewType(nil), c.AvailableViews...)
	}
	if c.Stages != nil {
		out.Stages = append([]RawStage(nil), c.Stages...)
	}
	if c.Pipeline != nil {
		p := *c.Pipeline
		if c.Pipeline.Stages != nil {
			p.Stages = append([]PipelineStage(nil), c.Pipeline.Stages...)
		}
		out.Pipeline = &p
	}
	return &out
}

// Clone returns a deep copy of the palette.
func (c *Colors) Clone() *Colors {
	if c == nil {
		return nil
	}
	out := *c
	if c.Extra != nil {
		out.Extra = make(map[string]string, len(c.Extra))
		for k, v := range c.Extra {
			out.Extra[k] = v
		}
	}
	return &out
}
