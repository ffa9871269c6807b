package stages

import (
	"slices"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/registry"
)

// calendarKinds default to a calendar view when the generator omits one.
var calendarKinds = map[string]bool{
	"calendar":     true,
	"appointments": true,
	"schedules":    true,
	"shifts":       true,
	"classes":      true,
	"reservations": true,
}

// redundantWithCalendar are entity kinds already exposed by the calendar
// view's own filters.
var redundantWithCalendar = map[string]bool{
	"appointments": true,
	"schedules":    true,
	"shifts":       true,
	"classes":      true,
	"reservations": true,
}

func isCalendarLike(comp *domain.Component) bool {
	return comp.View == domain.ViewCalendar || (!comp.View.Valid() && calendarKinds[comp.ID])
}

func hasCalendarView(tab *domain.Tab) bool {
	return slices.ContainsFunc(tab.Components, func(c *domain.Component) bool {
		return c.View == domain.ViewCalendar
	})
}

// ConsolidateCalendars enforces a single calendar view across the tree.
//
// The Dashboard tab is emptied. The first calendar-like component in the
// remaining tabs becomes the calendar; later ones are demoted to table.
// Tabs holding the calendar drop redundant calendar-entity siblings; the
// calendar itself is kept even when its id is one of those kinds.
// Finally every component left without a view receives its registry default.
func ConsolidateCalendars(cfg *domain.Config) {
	for _, tab := range cfg.Tabs {
		if tab.IsDashboard() {
			tab.Components = []*domain.Component{}
		}
	}

	found := false
	for _, tab := range cfg.Tabs {
		for _, comp := range tab.Components {
			if !isCalendarLike(comp) {
				continue
			}
			if !found {
				found = true
				comp.View = domain.ViewCalendar
				continue
			}
			comp.View = domain.ViewTable
		}
	}

	for _, tab := range cfg.Tabs {
		if len(tab.Components) > 1 && hasCalendarView(tab) {
			tab.Components = slices.DeleteFunc(tab.Components, func(c *domain.Component) bool {
				return c.View != domain.ViewCalendar && redundantWithCalendar[c.ID]
			})
		}
	}

	for _, comp := range cfg.Components() {
		resolveView(comp)
	}
}

// resolveView assigns a view to a component the generator left without a
// known one. A raw stage list signals a pipeline; otherwise the registry
// decides.
func resolveView(comp *domain.Component) {
	if comp.View.Valid() {
		return
	}
	if len(comp.Stages) > 0 {
		comp.View = domain.ViewPipeline
		return
	}
	comp.View = registry.Default().DefaultView(comp.ID)
}

// calendarTaken reports whether a non-Dashboard tab already shows a calendar.
func calendarTaken(cfg *domain.Config) bool {
	for _, tab := range cfg.Tabs {
		if !tab.IsDashboard() && hasCalendarView(tab) {
			return true
		}
	}
	return false
}
