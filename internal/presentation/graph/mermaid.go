package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
)

// Overlay contains validation results to visualize on the graph.
// Keys follow domain.ConfigDiff: tab ids and "<tab id>/<component id>".
type Overlay struct {
	Added    []string
	Degraded []string
}

// OverlayFromReport collects the tabs and components a validation pass
// added, plus the locked ids it could not restore.
func OverlayFromReport(r *domain.Report) *Overlay {
	if r == nil {
		return nil
	}
	o := &Overlay{Degraded: r.Degraded}
	for _, s := range r.Stages {
		if s.Diff == nil {
			continue
		}
		o.Added = append(o.Added, s.Diff.TabsAdded...)
		o.Added = append(o.Added, s.Diff.ComponentsAdded...)
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the configuration tree:
// tabs, their components and each pipeline's stages in order.
// It applies semantic styling:
// - Root: ((Circle))
// - Tab: [Rectangle]
// - Locked component: [[Subroutine]]
// - Calendar component: [/Parallelogram/]
// - Other components: (Rounded)
// - Pipeline stage: ([Stadium]) filled with the stage color
func GenerateMermaid(cfg *domain.Config, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if cfg == nil {
		return sb.String()
	}

	root := "config"
	title := cfg.BusinessName
	if title == "" {
		title = cfg.BusinessType
	}
	if title == "" {
		title = "dashboard"
	}
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", root, escapeLabel(title))

	nodeIDs := make(map[string]string) // diff key -> mermaid id
	for _, tab := range cfg.Tabs {
		tabID := "tab_" + sanitizeMermaidID(tab.ID)
		nodeIDs[tab.ID] = tabID
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", tabID, escapeLabel(tab.Label))
		fmt.Fprintf(&sb, "    %s --> %s\n", root, tabID)

		seen := make(map[string]int)
		for _, comp := range tab.Components {
			key := tab.ID + "/" + comp.ID
			compID := tabID + "__" + sanitizeMermaidID(comp.ID)
			if n := seen[comp.ID]; n > 0 {
				key = fmt.Sprintf("%s#%d", key, n+1)
				compID = fmt.Sprintf("%s_%d", compID, n+1)
			}
			seen[comp.ID]++
			nodeIDs[key] = compID

			opener, closer := "(", ")"
			switch {
			case comp.Locked:
				opener, closer = "[[", "]]"
			case comp.View == domain.ViewCalendar:
				opener, closer = "[/", "/]"
			}

			label := escapeLabel(comp.ID)
			if comp.View != "" {
				label = fmt.Sprintf("%s <br/> %s", label, comp.View)
			}
			fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", compID, opener, label, closer)
			fmt.Fprintf(&sb, "    %s --> %s\n", tabID, compID)

			writeStages(&sb, compID, comp)
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef added fill:#e8f5e9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef degraded fill:#ffebee,stroke:#c62828,stroke-dasharray:4 2,color:#000;\n")

		styled := make(map[string]bool)
		for _, key := range overlay.Added {
			id, ok := nodeIDs[key]
			if !ok || styled[id] {
				continue
			}
			styled[id] = true
			fmt.Fprintf(&sb, "    class %s added;\n", id)
		}

		// Degraded ids are absent from the tree; draw them detached.
		for _, id := range overlay.Degraded {
			safeID := "missing_" + sanitizeMermaidID(id)
			fmt.Fprintf(&sb, "    %s{{\"%s\"}}\n", safeID, escapeLabel(id))
			fmt.Fprintf(&sb, "    class %s degraded;\n", safeID)
		}
	}

	return sb.String()
}

func writeStages(sb *strings.Builder, compID string, comp *domain.Component) {
	if comp.Pipeline == nil {
		return
	}
	prev := compID
	for i, stage := range comp.Pipeline.Stages {
		stageID := fmt.Sprintf("%s__s%d", compID, i)
		label := escapeLabel(stage.Name)
		if stage.ID == comp.Pipeline.DefaultStageID {
			label += " ★"
		}
		fmt.Fprintf(sb, "    %s([\"%s\"])\n", stageID, label)
		if prev == compID {
			fmt.Fprintf(sb, "    %s -.-> %s\n", prev, stageID)
		} else {
			fmt.Fprintf(sb, "    %s --> %s\n", prev, stageID)
		}
		if stage.Color != "" {
			text := stage.TextColor
			if text == "" {
				text = "#fff"
			}
			fmt.Fprintf(sb, "    style %s fill:%s,color:%s\n", stageID, stage.Color, text)
		}
		prev = stageID
	}
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
