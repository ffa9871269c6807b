package stages

import (
	"slices"

	"github.com/aretw0/pergola/pkg/domain"
)

// RestoreLockedComponents re-inserts locked components the generator dropped.
//
// For every id in locked that no longer appears in cfg, the first occurrence
// in template (outside its Dashboard tab) is deep-copied into the cfg tab
// with the same label. If that tab is gone a new one is created before the
// last tab. Restored components are settled against the current tree (view,
// calendar and pipeline rules) so a second pass leaves them untouched.
//
// It returns the locked ids that could not be found in the template either.
func RestoreLockedComponents(cfg, template *domain.Config, locked []string) []string {
	if template == nil || len(locked) == 0 {
		return nil
	}

	lockedSet := make(map[string]bool, len(locked))
	var order []string
	for _, id := range locked {
		if id == "" || lockedSet[id] {
			continue
		}
		lockedSet[id] = true
		order = append(order, id)
	}

	missing := make(map[string]bool)
	for _, id := range order {
		if !cfg.HasComponent(id) {
			missing[id] = true
		}
	}

	// Calendar-entity components headed for a calendar tab are restored on
	// a second sweep, after everything else. Siblings evicted by a restored
	// calendar join that sweep.
	evicted := restoreSweep(cfg, template, missing, lockedSet, true)
	for _, id := range evicted {
		missing[id] = true
	}
	restoreSweep(cfg, template, missing, lockedSet, false)

	var unresolved []string
	for _, id := range order {
		if missing[id] {
			unresolved = append(unresolved, id)
		}
	}
	return unresolved
}

func restoreSweep(cfg, template *domain.Config, missing, lockedSet map[string]bool, deferRedundant bool) []string {
	var evicted []string
	for _, tplTab := range template.Tabs {
		if tplTab.IsDashboard() {
			continue
		}
		for _, tplComp := range tplTab.Components {
			if !missing[tplComp.ID] {
				continue
			}

			restored := tplComp.Clone()
			settle(cfg, restored)
			target := targetTab(cfg, tplTab)
			if deferRedundant && target != nil && restored.View != domain.ViewCalendar &&
				redundantWithCalendar[restored.ID] && hasCalendarView(target) {
				continue
			}
			delete(missing, tplComp.ID)

			tab := placeRestored(cfg, target, tplTab, restored)
			if restored.View == domain.ViewCalendar {
				evicted = append(evicted, evictRedundant(tab, lockedSet)...)
			}
		}
	}
	return evicted
}

// settle applies the calendar, view and pipeline rules to a component
// entering the tree after those stages already ran.
func settle(cfg *domain.Config, comp *domain.Component) {
	if isCalendarLike(comp) {
		if calendarTaken(cfg) {
			comp.View = domain.ViewTable
		} else {
			comp.View = domain.ViewCalendar
		}
	}
	resolveView(comp)
	normalizePipeline(comp)
}

// evictRedundant drops calendar-entity siblings from a tab that just
// received the calendar, returning the locked ids among them.
func evictRedundant(tab *domain.Tab, lockedSet map[string]bool) []string {
	if len(tab.Components) < 2 {
		return nil
	}
	var evicted []string
	tab.Components = slices.DeleteFunc(tab.Components, func(c *domain.Component) bool {
		if c.View == domain.ViewCalendar || !redundantWithCalendar[c.ID] {
			return false
		}
		if lockedSet[c.ID] {
			evicted = append(evicted, c.ID)
		}
		return true
	})
	return evicted
}

// targetTab finds the existing tab a restored component belongs in: the
// tab with the template tab's label, or the last content tab when no tab
// can be added. Nil means a new tab is needed.
func targetTab(cfg *domain.Config, tplTab *domain.Tab) *domain.Tab {
	for _, tab := range cfg.Tabs {
		if tab.Label == tplTab.Label && !tab.IsDashboard() {
			return tab
		}
	}
	if atCapacity(cfg) {
		return lastContentTab(cfg)
	}
	return nil
}

func placeRestored(cfg *domain.Config, target, tplTab *domain.Tab, comp *domain.Component) *domain.Tab {
	if target != nil {
		target.Components = append(target.Components, comp)
		return target
	}

	label := tplTab.Label
	if label == "" {
		label = "Restored"
	}
	icon := tplTab.Icon
	if icon == "" {
		icon = "box"
	}
	tab := &domain.Tab{
		ID:         nextTabID(cfg),
		Label:      label,
		Icon:       icon,
		Components: []*domain.Component{comp},
	}

	// Before the last tab, but never ahead of the Dashboard.
	at := len(cfg.Tabs) - 1
	if at < 1 && len(cfg.Tabs) > 0 && cfg.Tabs[0].IsDashboard() {
		at = 1
	}
	insertTab(cfg, at, tab)
	return tab
}
