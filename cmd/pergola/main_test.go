package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tattooConfig = `{
	"business_type": "tattoo",
	"tabs": [
		{"id": "tab_1", "label": "Dashboard", "components": [{"id": "calendar"}]},
		{"id": "tab_2", "label": "Clients", "components": [{"id": "clients", "stages": ["Consultation", "Booked"]}]}
	]
}`

// resetFlags restores every flag to its default; cobra keeps flag state on
// the package-level commands between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pergola version 0.4.0 (api 1.1.0)\n", out)
}

func TestValidate_BuiltinTemplate(t *testing.T) {
	out, _, err := execute(t, tattooConfig, "validate", "--template", "tattoo")
	require.NoError(t, err)

	var cfg domain.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.True(t, cfg.HasComponent("waivers"))
	assert.LessOrEqual(t, len(cfg.Tabs), domain.MaxTabs)
	for _, comp := range cfg.Components() {
		assert.False(t, comp.Locked, "internal flags stripped from %s", comp.ID)
	}
}

func TestValidate_AutoTemplate(t *testing.T) {
	out, _, err := execute(t, tattooConfig, "validate", "-t", "auto", "--full")
	require.NoError(t, err)

	var res struct {
		Config *domain.Config `json:"config"`
		Report *domain.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Config.HasComponent("waivers"))
	assert.Len(t, res.Report.Stages, 7)

	// No template for this business type: the guard is skipped.
	out, _, err = execute(t, `{"business_type": "florist", "tabs": []}`, "validate", "-t", "auto", "--full")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Report.Stages, 6)
}

func TestValidate_YAMLAndReport(t *testing.T) {
	out, errOut, err := execute(t, tattooConfig, "validate", "--format", "yaml", "--report", "--log-level", "error")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "business_type: tattoo\n"), out)
	assert.Contains(t, errOut, "tattoo")
	assert.Contains(t, errOut, domain.StageCalendars)
	assert.Contains(t, errOut, "#475569")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"locked without template", tattooConfig, []string{"validate", "--locked", "clients"}, "--locked requires a template"},
		{"unknown template", tattooConfig, []string{"validate", "-t", "bakery"}, "unknown template"},
		{"both templates", tattooConfig, []string{"validate", "-t", "tattoo", "--template-file", "x.yaml"}, "mutually exclusive"},
		{"empty input", "", []string{"validate"}, "validation failed"},
		{"bad format", tattooConfig, []string{"validate", "--format", "xml"}, "unsupported format"},
		{"bad log level", tattooConfig, []string{"validate", "--log-level", "loud"}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTemplateCommand(t *testing.T) {
	out, _, err := execute(t, "", "template")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "nail_salon")

	out, _, err = execute(t, "", "template", "--detect", "Downtown tattoo studio")
	require.NoError(t, err)
	assert.Contains(t, out, `"business_type": "tattoo"`)

	out, _, err = execute(t, "", "template", "tattoo", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "locked_ids:")

	_, _, err = execute(t, "", "template", "--detect", "quantum computing")
	assert.Error(t, err)
}

func TestPaletteCommand(t *testing.T) {
	out, _, err := execute(t, "", "palette")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "tattoo")

	out, _, err = execute(t, "", "palette", "Tattoo")
	require.NoError(t, err)
	assert.Contains(t, out, `"buttons": "#475569"`)

	out, errOut, err := execute(t, "", "palette", "spaceport")
	require.NoError(t, err)
	assert.Contains(t, out, `"sidebar_bg": "#0F172A"`)
	assert.Contains(t, errOut, "no industry palette")
	assert.Contains(t, errOut, "business_type=spaceport")
}

func TestGraphCommand(t *testing.T) {
	out, _, err := execute(t, tattooConfig, "graph", "-t", "tattoo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "classDef added")

	out, _, err = execute(t, tattooConfig, "graph", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, `tab_tab_1__calendar("calendar")`)
	assert.NotContains(t, out, "classDef")
}
