package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// Output that is not a terminal gets the plain "notty" style.
func NewRenderer(tty bool) func(string) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if tty {
		style = glamour.WithAutoStyle() // Automatically detect light/dark background
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Summary builds a markdown report of a validation pass.
func Summary(cfg *domain.Config, report *domain.Report, warnings []string) string {
	var sb strings.Builder

	title := cfg.BusinessName
	if title == "" {
		title = cfg.BusinessType
	}
	if title == "" {
		title = "Dashboard"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	sb.WriteString("| Tab | Components |\n|---|---|\n")
	for _, tab := range cfg.Tabs {
		var ids []string
		for _, comp := range tab.Components {
			id := "`" + comp.ID + "`"
			if comp.View != "" {
				id += " (" + string(comp.View) + ")"
			}
			ids = append(ids, id)
		}
		cell := strings.Join(ids, ", ")
		if cell == "" {
			cell = "-"
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", tab.Label, cell)
	}

	if report != nil {
		sb.WriteString("\n## Stages\n\n")
		for _, s := range report.Stages {
			if !s.Changed || s.Diff == nil {
				fmt.Fprintf(&sb, "- **%s**: unchanged\n", s.Stage)
				continue
			}
			fmt.Fprintf(&sb, "- **%s**: %s\n", s.Stage, describeDiff(s.Diff))
		}

		if len(report.Degraded) > 0 {
			sb.WriteString("\n## Degraded\n\n")
			sb.WriteString("Locked components missing from the template:\n\n")
			for _, id := range report.Degraded {
				fmt.Fprintf(&sb, "- `%s`\n", id)
			}
		}
	}

	if len(warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, w := range warnings {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
	}
	return sb.String()
}

func describeDiff(d *domain.ConfigDiff) string {
	var parts []string
	add := func(label string, items []string) {
		if len(items) > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", label, strings.Join(items, ", ")))
		}
	}
	add("tabs added", d.TabsAdded)
	add("tabs removed", d.TabsRemoved)
	add("components added", d.ComponentsAdded)
	add("components removed", d.ComponentsRemoved)
	add("views changed", d.ViewsChanged)
	add("pipelines rebuilt", d.PipelinesChanged)
	add("colors changed", d.ColorsChanged)
	if d.FlagsChanged > 0 {
		parts = append(parts, fmt.Sprintf("%d flags changed", d.FlagsChanged))
	}
	if len(parts) == 0 {
		return "changed"
	}
	return strings.Join(parts, "; ")
}

// Swatches renders one line per palette slot with a color block.
func Swatches(colors *domain.Colors, p termenv.Profile) string {
	if colors == nil {
		return ""
	}
	var sb strings.Builder
	for _, key := range colors.Keys() {
		value := colors.Get(key)
		block := termenv.String("      ").Background(p.Color(value))
		fmt.Fprintf(&sb, "%s %-16s %s\n", block, key, value)
	}
	return sb.String()
}
