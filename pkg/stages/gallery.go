package stages

import (
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/palette"
)

// visualIndustries are business-type substrings whose customers expect a
// visual showcase.
var visualIndustries = []string{
	"salon", "barber", "barbershop", "nails", "nail_tech", "lash", "brows",
	"tattoo", "piercing", "photography", "photographer", "creative",
	"landscaping", "cleaning", "auto", "auto_detailing", "detailing", "car_wash",
	"restaurant", "bakery", "food_truck", "cafe", "catering",
	"florist", "wedding", "wedding_planner", "event_planner",
	"interior_design", "architecture", "design",
	"spa", "beauty", "makeup", "hair", "pet_grooming",
}

var galleryKinds = map[string]bool{
	"galleries":  true,
	"images":     true,
	"portfolios": true,
}

// galleryTabHints are label fragments of tabs that suit a gallery.
var galleryTabHints = []string{"portfolio", "gallery", "photo", "work", "service"}

// NeedsGallery reports whether businessType names an image-centric industry.
func NeedsGallery(businessType string) bool {
	normalized := palette.NormalizeBusinessType(businessType)
	if normalized == "" {
		return false
	}
	for _, t := range visualIndustries {
		if strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

func hasGallery(cfg *domain.Config) bool {
	for _, comp := range cfg.Components() {
		if galleryKinds[comp.ID] {
			return true
		}
	}
	return false
}

func galleryTab(cfg *domain.Config) *domain.Tab {
	for _, tab := range cfg.Tabs {
		if tab.IsDashboard() {
			continue
		}
		label := strings.ToLower(tab.Label)
		for _, hint := range galleryTabHints {
			if strings.Contains(label, hint) {
				return tab
			}
		}
	}
	return nil
}

// EnsureGallery injects a galleries component for visual industries that
// have no gallery, image or portfolio component.
//
// The component goes into the first tab whose label suggests visual
// content. Otherwise a Gallery tab is created before a trailing Settings
// tab, or appended. When the tab list is already full the component joins
// the last content tab instead.
func EnsureGallery(cfg *domain.Config) {
	if !NeedsGallery(cfg.BusinessType) || hasGallery(cfg) {
		return
	}

	gallery := &domain.Component{ID: "galleries", Label: "Gallery", View: domain.ViewCards}

	if tab := galleryTab(cfg); tab != nil {
		tab.Components = append(tab.Components, gallery)
		return
	}
	if atCapacity(cfg) {
		if tab := lastContentTab(cfg); tab != nil {
			tab.Components = append(tab.Components, gallery)
			return
		}
	}

	tab := &domain.Tab{
		ID:         nextTabID(cfg),
		Label:      "Gallery",
		Icon:       "image",
		Components: []*domain.Component{gallery},
	}
	if n := len(cfg.Tabs); n > 0 && isSettings(cfg.Tabs[n-1]) {
		insertTab(cfg, n-1, tab)
		return
	}
	cfg.Tabs = append(cfg.Tabs, tab)
}
