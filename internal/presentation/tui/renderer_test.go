package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	cfg := &domain.Config{
		BusinessType: "tattoo",
		Tabs: []*domain.Tab{
			{ID: "tab_1", Label: "Dashboard"},
			{ID: "tab_2", Label: "Clients", Components: []*domain.Component{
				{ID: "clients", View: domain.ViewPipeline},
				{ID: "notes"},
			}},
		},
	}
	report := &domain.Report{
		Stages: []domain.StageReport{
			{Stage: domain.StageCalendars, Changed: true, Diff: &domain.ConfigDiff{
				TabsAdded:         []string{"tab_3"},
				ComponentsRemoved: []string{"tab_1/calendar"},
			}},
			{Stage: domain.StageFlags, Changed: true, Diff: &domain.ConfigDiff{FlagsChanged: 2}},
			{Stage: domain.StageTabLimit},
		},
		Degraded: []string{"ghost"},
	}

	md := Summary(cfg, report, []string{"tabs[0].icon: expected string"})

	assert.True(t, strings.HasPrefix(md, "# tattoo\n"))
	assert.Contains(t, md, "| Dashboard | - |")
	assert.Contains(t, md, "| Clients | `clients` (pipeline), `notes` |")
	assert.Contains(t, md, "- **"+domain.StageCalendars+"**: tabs added tab_3; components removed tab_1/calendar")
	assert.Contains(t, md, "- **"+domain.StageFlags+"**: 2 flags changed")
	assert.Contains(t, md, "- **"+domain.StageTabLimit+"**: unchanged")
	assert.Contains(t, md, "- `ghost`")
	assert.Contains(t, md, "## Warnings\n\n- tabs[0].icon: expected string")
}

func TestSummary_Minimal(t *testing.T) {
	md := Summary(&domain.Config{}, nil, nil)
	assert.Equal(t, "# Dashboard\n\n| Tab | Components |\n|---|---|\n", md)
}

func TestRenderer_NoTTY(t *testing.T) {
	render := NewRenderer(false)
	out, err := render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "\x1b[")
}

func TestSwatches(t *testing.T) {
	colors := &domain.Colors{Buttons: "#16A34A", Extra: map[string]string{"accent": "#FFD700"}}

	out := Swatches(colors, termenv.Ascii)

	assert.Contains(t, out, "buttons          #16A34A")
	assert.Contains(t, out, "accent           #FFD700")
	assert.NotContains(t, out, "\x1b[")
	assert.Empty(t, Swatches(nil, termenv.Ascii))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
}
