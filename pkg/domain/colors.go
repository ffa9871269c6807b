package domain

import (
	"encoding/json"
	"sort"
)

// Color slot keys as they appear on the wire.
const (
	SlotSidebarBg      = "sidebar_bg"
	SlotSidebarText    = "sidebar_text"
	SlotSidebarIcons   = "sidebar_icons"
	SlotSidebarButtons = "sidebar_buttons"
	SlotBackground     = "background"
	SlotButtons        = "buttons"
	SlotCards          = "cards"
	SlotText           = "text"
	SlotHeadings       = "headings"
	SlotBorders        = "borders"
)

// ColorSlots lists the ten named slots in display order.
var ColorSlots = []string{
	SlotSidebarBg, SlotSidebarText, SlotSidebarIcons, SlotSidebarButtons,
	SlotBackground, SlotButtons, SlotCards, SlotText, SlotHeadings, SlotBorders,
}

// Colors is the theme palette. The ten named slots are always populated
// after validation; Extra carries any additional keys the generator emitted
// (primary, accent, links, ...).
type Colors struct {
	SidebarBg      string
	SidebarText    string
	SidebarIcons   string
	SidebarButtons string
	Background     string
	Buttons        string
	Cards          string
	Text           string
	Headings       string
	Borders        string

	Extra map[string]string
}

func (c *Colors) slot(key string) *string {
	switch key {
	case SlotSidebarBg:
		return &c.SidebarBg
	case SlotSidebarText:
		return &c.SidebarText
	case SlotSidebarIcons:
		return &c.SidebarIcons
	case SlotSidebarButtons:
		return &c.SidebarButtons
	case SlotBackground:
		return &c.Background
	case SlotButtons:
		return &c.Buttons
	case SlotCards:
		return &c.Cards
	case SlotText:
		return &c.Text
	case SlotHeadings:
		return &c.Headings
	case SlotBorders:
		return &c.Borders
	}
	return nil
}

// Get returns the value stored under key, named slot or extra.
func (c *Colors) Get(key string) string {
	if p := c.slot(key); p != nil {
		return *p
	}
	return c.Extra[key]
}

// Set stores value under key. Unknown keys go to Extra.
func (c *Colors) Set(key, value string) {
	if p := c.slot(key); p != nil {
		*p = value
		return
	}
	if c.Extra == nil {
		c.Extra = make(map[string]string)
	}
	c.Extra[key] = value
}

// Keys returns the populated keys: named slots first in display order,
// then extras sorted.
func (c *Colors) Keys() []string {
	var keys []string
	for _, k := range ColorSlots {
		if c.Get(k) != "" {
			keys = append(keys, k)
		}
	}
	extras := make([]string, 0, len(c.Extra))
	for k, v := range c.Extra {
		if v != "" {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	return append(keys, extras...)
}

// Map flattens the palette into a key/value map, skipping empty values.
func (c *Colors) Map() map[string]string {
	out := make(map[string]string)
	for _, k := range c.Keys() {
		out[k] = c.Get(k)
	}
	return out
}

// ColorsFromMap builds a palette from a flat key/value map.
func ColorsFromMap(m map[string]string) *Colors {
	c := &Colors{}
	for k, v := range m {
		c.Set(k, v)
	}
	return c
}

func (c *Colors) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

func (c *Colors) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*c = *ColorsFromMap(m)
	return nil
}

func (c *Colors) MarshalYAML() (any, error) {
	return c.Map(), nil
}

func (c *Colors) UnmarshalYAML(unmarshal func(any) error) error {
	var m map[string]string
	if err := unmarshal(&m); err != nil {
		return err
	}
	*c = *ColorsFromMap(m)
	return nil
}
