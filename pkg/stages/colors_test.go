package stages

import (
	"testing"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateColors(t *testing.T) {
	t.Run("generic buttons replaced", func(t *testing.T) {
		cfg := &domain.Config{
			BusinessType: "landscaping",
			Colors: &domain.Colors{
				Buttons:   "#ce0707",
				SidebarBg: "#DC2626",
				Text:      "#222222",
				Extra:     map[string]string{"accent": "#ABCDEF", "links": "#ef4444"},
			},
		}
		ValidateColors(cfg)

		require.NotNil(t, cfg.Colors)
		assert.Equal(t, "#16A34A", cfg.Colors.Buttons)
		assert.Equal(t, "#14532D", cfg.Colors.SidebarBg, "generic slot replaced")
		assert.Equal(t, "#222222", cfg.Colors.Text, "custom slot kept")
		assert.Equal(t, "#ABCDEF", cfg.Colors.Extra["accent"])
		_, hasLinks := cfg.Colors.Extra["links"]
		assert.False(t, hasLinks, "generic extras are dropped")
	})

	t.Run("missing palette", func(t *testing.T) {
		cfg := &domain.Config{BusinessType: "Tattoo"}
		ValidateColors(cfg)
		assert.Equal(t, palette.ForBusiness("tattoo"), cfg.Colors)
	})

	t.Run("unknown business", func(t *testing.T) {
		cfg := &domain.Config{BusinessType: "spaceport", Colors: &domain.Colors{}}
		ValidateColors(cfg)
		assert.Equal(t, palette.Neutral(), cfg.Colors)
		assert.True(t, palette.IsGeneric(cfg.Colors.Buttons), "neutral buttons is a placeholder value")
	})

	t.Run("custom palette untouched", func(t *testing.T) {
		colors := &domain.Colors{Buttons: "#475569", SidebarBg: "#ce0707"}
		cfg := &domain.Config{BusinessType: "tattoo", Colors: colors}
		ValidateColors(cfg)
		assert.Same(t, colors, cfg.Colors)
		assert.Equal(t, "#475569", cfg.Colors.Buttons)
		assert.Equal(t, "#ce0707", cfg.Colors.SidebarBg)
	})

	t.Run("custom buttons with empty slots", func(t *testing.T) {
		cfg := &domain.Config{BusinessType: "landscaping", Colors: &domain.Colors{Buttons: "#123456"}}
		ValidateColors(cfg)

		want := palette.ForBusiness("landscaping")
		want.Buttons = "#123456"
		assert.Equal(t, want, cfg.Colors)
		for _, slot := range domain.ColorSlots {
			assert.NotEmpty(t, cfg.Colors.Get(slot), "slot %s", slot)
		}

		once := cfg.Clone()
		ValidateColors(cfg)
		assert.Equal(t, once, cfg)
	})

	t.Run("idempotent when palette buttons are generic", func(t *testing.T) {
		// The barbershop palette itself uses a blacklisted blue.
		cfg := &domain.Config{BusinessType: "barbershop", Colors: &domain.Colors{Buttons: "#3B82F6"}}
		ValidateColors(cfg)
		once := cfg.Clone()
		ValidateColors(cfg)
		assert.Equal(t, once, cfg)
	})
}
