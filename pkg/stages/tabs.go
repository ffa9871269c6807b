package stages

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
)

// EnforceTabLimit truncates the tab list to domain.MaxTabs.
// Generator order is trusted as a priority signal, so the first tabs are kept.
func EnforceTabLimit(cfg *domain.Config) {
	if len(cfg.Tabs) > domain.MaxTabs {
		cfg.Tabs = cfg.Tabs[:domain.MaxTabs]
	}
}

// nextTabID returns an unused "tab_<n>" identifier. The Dashboard id is
// never handed out.
func nextTabID(cfg *domain.Config) string {
	used := make(map[string]bool, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		used[tab.ID] = true
	}
	for n := len(cfg.Tabs) + 1; ; n++ {
		id := fmt.Sprintf("tab_%d", n)
		if id != domain.DashboardTabID && !used[id] {
			return id
		}
	}
}

func insertTab(cfg *domain.Config, at int, tab *domain.Tab) {
	if at < 0 {
		at = 0
	}
	if at > len(cfg.Tabs) {
		at = len(cfg.Tabs)
	}
	cfg.Tabs = slices.Insert(cfg.Tabs, at, tab)
}

func isSettings(tab *domain.Tab) bool {
	return strings.EqualFold(tab.Label, domain.SettingsLabel)
}

// lastContentTab picks the tab that absorbs components when no new tab can
// be added: the last tab that is neither Dashboard nor Settings, falling
// back to the last non-Dashboard tab.
func lastContentTab(cfg *domain.Config) *domain.Tab {
	var fallback *domain.Tab
	for i := len(cfg.Tabs) - 1; i >= 0; i-- {
		tab := cfg.Tabs[i]
		if tab.IsDashboard() {
			continue
		}
		if !isSettings(tab) {
			return tab
		}
		if fallback == nil {
			fallback = tab
		}
	}
	return fallback
}

func atCapacity(cfg *domain.Config) bool {
	return len(cfg.Tabs) >= domain.MaxTabs
}
