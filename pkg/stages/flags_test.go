package stages

import (
	"testing"

	"github.com/aretw0/pergola/pkg/domain"
)

func TestStripInternalFlags(t *testing.T) {
	cfg := &domain.Config{Tabs: []*domain.Tab{
		{ID: "tab_2", Removable: true, Components: []*domain.Component{
			{ID: "waivers", Locked: true},
			{ID: "clients"},
		}},
	}}

	StripInternalFlags(cfg)

	for _, tab := range cfg.Tabs {
		if tab.Removable {
			t.Errorf("tab %s still removable", tab.ID)
		}
		for _, c := range tab.Components {
			if c.Locked {
				t.Errorf("component %s still locked", c.ID)
			}
		}
	}
}
