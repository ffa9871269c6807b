package stages

import "github.com/aretw0/pergola/pkg/domain"

// StripInternalFlags removes the _locked and _removable markers before the
// tree is handed to the renderer.
func StripInternalFlags(cfg *domain.Config) {
	for _, tab := range cfg.Tabs {
		tab.Removable = false
		for _, comp := range tab.Components {
			comp.Locked = false
		}
	}
}
