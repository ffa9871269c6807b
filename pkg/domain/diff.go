package domain

import (
	"fmt"
	"reflect"
)

// ConfigDiff summarizes the structural changes between two configuration trees.
// It is designed to be serialized to JSON as part of a validation report.
type ConfigDiff struct {
	TabsAdded   []string `json:"tabs_added,omitempty"`
	TabsRemoved []string `json:"tabs_removed,omitempty"`

	// Components are keyed as "<tab id>/<component id>".
	ComponentsAdded   []string `json:"components_added,omitempty"`
	ComponentsRemoved []string `json:"components_removed,omitempty"`
	ViewsChanged      []string `json:"views_changed,omitempty"`
	PipelinesChanged  []string `json:"pipelines_changed,omitempty"`

	ColorsChanged []string `json:"colors_changed,omitempty"`
	FlagsChanged  int      `json:"flags_changed,omitempty"`
}

// Diff calculates the difference between oldCfg and newCfg.
// If oldCfg is nil, every tab and component of newCfg is reported as added.
// Returns nil when nothing changed.
func Diff(oldCfg, newCfg *Config) *ConfigDiff {
	if newCfg == nil {
		return nil
	}
	if oldCfg == nil {
		oldCfg = &Config{}
	}

	d := &ConfigDiff{}
	diffTabs(d, oldCfg, newCfg)
	diffComponents(d, oldCfg, newCfg)
	d.ColorsChanged = diffColors(oldCfg.Colors, newCfg.Colors)

	if d.IsEmpty() {
		return nil
	}
	return d
}

func diffTabs(d *ConfigDiff, oldCfg, newCfg *Config) {
	oldTabs := make(map[string]*Tab, len(oldCfg.Tabs))
	for _, t := range oldCfg.Tabs {
		oldTabs[t.ID] = t
	}
	newTabs := make(map[string]*Tab, len(newCfg.Tabs))
	for _, t := range newCfg.Tabs {
		newTabs[t.ID] = t
		if old, ok := oldTabs[t.ID]; !ok {
			d.TabsAdded = append(d.TabsAdded, t.ID)
		} else if old.Removable != t.Removable {
			d.FlagsChanged++
		}
	}
	for _, t := range oldCfg.Tabs {
		if _, ok := newTabs[t.ID]; !ok {
			d.TabsRemoved = append(d.TabsRemoved, t.ID)
		}
	}
}

// componentIndex keys components by tab and id. Repeated ids within a tab
// get an occurrence suffix so they can still be paired up.
func componentIndex(cfg *Config) ([]string, map[string]*Component) {
	var order []string
	index := make(map[string]*Component)
	for _, tab := range cfg.Tabs {
		seen := make(map[string]int)
		for _, comp := range tab.Components {
			key := tab.ID + "/" + comp.ID
			if n := seen[comp.ID]; n > 0 {
				key = fmt.Sprintf("%s#%d", key, n+1)
			}
			seen[comp.ID]++
			order = append(order, key)
			index[key] = comp
		}
	}
	return order, index
}

func diffComponents(d *ConfigDiff, oldCfg, newCfg *Config) {
	oldOrder, oldIndex := componentIndex(oldCfg)
	newOrder, newIndex := componentIndex(newCfg)

	for _, key := range newOrder {
		comp := newIndex[key]
		old, ok := oldIndex[key]
		if !ok {
			d.ComponentsAdded = append(d.ComponentsAdded, key)
			continue
		}
		if old.View != comp.View {
			d.ViewsChanged = append(d.ViewsChanged, fmt.Sprintf("%s: %q -> %q", key, old.View, comp.View))
		}
		if !reflect.DeepEqual(old.Pipeline, comp.Pipeline) || !reflect.DeepEqual(old.Stages, comp.Stages) {
			d.PipelinesChanged = append(d.PipelinesChanged, key)
		}
		if old.Locked != comp.Locked {
			d.FlagsChanged++
		}
	}
	for _, key := range oldOrder {
		if _, ok := newIndex[key]; !ok {
			d.ComponentsRemoved = append(d.ComponentsRemoved, key)
		}
	}
}

func diffColors(oldColors, newColors *Colors) []string {
	var oldMap, newMap map[string]string
	if oldColors != nil {
		oldMap = oldColors.Map()
	}
	if newColors != nil {
		newMap = newColors.Map()
	}

	var changed []string
	if newColors != nil {
		for _, k := range newColors.Keys() {
			if oldMap[k] != newMap[k] {
				changed = append(changed, k)
			}
		}
	}
	if oldColors != nil {
		for _, k := range oldColors.Keys() {
			if _, ok := newMap[k]; !ok {
				changed = append(changed, k)
			}
		}
	}
	return changed
}

// IsEmpty checks if the diff contains any changes.
func (d *ConfigDiff) IsEmpty() bool {
	return len(d.TabsAdded) == 0 &&
		len(d.TabsRemoved) == 0 &&
		len(d.ComponentsAdded) == 0 &&
		len(d.ComponentsRemoved) == 0 &&
		len(d.ViewsChanged) == 0 &&
		len(d.PipelinesChanged) == 0 &&
		len(d.ColorsChanged) == 0 &&
		d.FlagsChanged == 0
}

// StageReport records what a single stage did to the tree.
type StageReport struct {
	Stage   string      `json:"stage"`
	Changed bool        `json:"changed"`
	Diff    *ConfigDiff `json:"diff,omitempty"`
}

// Report is the outcome of one validation pass.
type Report struct {
	Stages []StageReport `json:"stages"`

	// Degraded lists locked component ids that could not be restored
	// because the template does not contain them either.
	Degraded []string `json:"degraded,omitempty"`
}

// Changed reports whether any stage modified the tree.
func (r *Report) Changed() bool {
	for _, s := range r.Stages {
		if s.Changed {
			return true
		}
	}
	return false
}
