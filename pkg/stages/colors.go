package stages

import (
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/palette"
)

// ValidateColors replaces a missing or generic palette with the industry
// palette for the business type.
//
// The swap triggers when colors are absent or the buttons slot is empty or a
// known placeholder. Every other non-placeholder slot the generator supplied
// is kept; buttons always comes from the industry palette. A themed palette
// keeps every value it carries and only has its empty slots filled.
func ValidateColors(cfg *domain.Config) {
	colors := cfg.Colors
	if colors != nil && colors.Buttons != "" && !palette.IsGeneric(colors.Buttons) {
		fillEmptySlots(colors, palette.ForBusiness(cfg.BusinessType))
		return
	}

	merged := palette.ForBusiness(cfg.BusinessType)
	if colors != nil {
		for _, key := range colors.Keys() {
			value := colors.Get(key)
			if key == domain.SlotButtons || palette.IsGeneric(value) {
				continue
			}
			merged.Set(key, value)
		}
	}
	cfg.Colors = merged
}

func fillEmptySlots(colors, defaults *domain.Colors) {
	for _, key := range domain.ColorSlots {
		if colors.Get(key) == "" {
			colors.Set(key, defaults.Get(key))
		}
	}
}
