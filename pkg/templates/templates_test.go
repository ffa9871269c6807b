package templates

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(cfg *domain.Config) []string {
	out := make([]string, 0, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		out = append(out, tab.Label)
	}
	return out
}

func componentIDs(tab *domain.Tab) []string {
	out := make([]string, 0, len(tab.Components))
	for _, c := range tab.Components {
		out = append(out, c.ID)
	}
	return out
}

func TestGet_Tattoo(t *testing.T) {
	tpl, err := Get("Tattoo")
	require.NoError(t, err)

	assert.Equal(t, "tattoo", tpl.BusinessType)
	assert.Equal(t, "beauty_body", tpl.Family)
	assert.Equal(t, "tattoo", tpl.Config.BusinessType)
	assert.Equal(t,
		[]string{"calendar", "clients", "appointments", "waivers", "galleries", "invoices"},
		tpl.Locked)

	cfg := tpl.Config
	assert.Equal(t, []string{"packages", "products", "waivers"}, componentIDs(cfg.FindTab("Services")))
	assert.Equal(t, []string{"galleries", "portfolios"}, componentIDs(cfg.FindTab("Gallery")))
	assert.Equal(t, "Artists", cfg.FindTab("Staff").Components[0].Label)

	clients := cfg.FindTab("Clients").Components[0]
	require.Len(t, clients.Stages, 4)
	assert.Equal(t, "Deposit Paid", clients.Stages[1].Name)
}

func TestGet_RemoveStaff(t *testing.T) {
	tpl, err := Get("lash_brow")
	require.NoError(t, err)

	assert.Equal(t, []string{"Dashboard", "Clients", "Schedule", "Services", "Gallery", "Payments"}, labels(tpl.Config))
	for i, tab := range tpl.Config.Tabs {
		assert.Equal(t, fmt.Sprintf("tab_%d", i+1), tab.ID)
	}
}

func TestGet_MedSpa(t *testing.T) {
	tpl, err := Get("med spa")
	require.NoError(t, err)

	services := tpl.Config.FindTab("Services")
	assert.Equal(t, []string{"treatments", "packages", "products", "waivers"}, componentIDs(services))
	assert.Equal(t, "Clients", tpl.Config.FindTab("Clients").Components[0].Label, "spa label is not inherited")
	assert.Equal(t, "Providers", tpl.Config.FindTab("Staff").Components[0].Label)
}

func TestGet_FreshCopies(t *testing.T) {
	a, err := Get("spa")
	require.NoError(t, err)
	a.Config.Tabs[0].Label = "Changed"
	a.Config.FindTab("Services").Components[0].Label = "Changed"

	b, err := Get("spa")
	require.NoError(t, err)
	assert.Equal(t, "Dashboard", b.Config.Tabs[0].Label)
	assert.Equal(t, "Treatments", b.Config.FindTab("Services").Components[0].Label)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("spaceport")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTemplate))
	assert.True(t, errors.Is(err, domain.ErrUnknownTemplate))
}

func TestTypes(t *testing.T) {
	types := Types()
	assert.Len(t, types, 10)
	assert.Contains(t, types, "tattoo")
	assert.Contains(t, types, "pet_grooming")

	for _, bt := range types {
		_, err := Get(bt)
		assert.NoError(t, err, bt)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		description string
		want        string
		alias       string
	}{
		{"We run a Tattoo Studio downtown", "tattoo", "tattoo studio"},
		{"family-owned nail salon", "nail_salon", "nail salon"},
		{"best pet grooming salon in town", "pet_grooming", "pet grooming"},
		{"I'm a freelance MUA", "makeup_artist", "mua"},
		{"boutique salon", "salon", "salon"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, ok := Detect(tt.description)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.BusinessType)
			assert.Equal(t, tt.alias, got.Alias)
			assert.Equal(t, "beauty_body", got.Family)
		})
	}

	_, ok := Detect("commercial plumbing")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	tpl, err := Load([]byte(`
business_type: dojo
tabs:
  - id: tab_2
    label: Students
    components:
      - {id: memberships, label: Members, view: pipeline, _locked: true}
      - {id: attendance, label: Attendance}
`))
	require.NoError(t, err)
	assert.Equal(t, "dojo", tpl.BusinessType)
	assert.Equal(t, []string{"memberships"}, tpl.Locked)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{"empty", "  ", func(t *testing.T, err error) {
			assert.True(t, errors.Is(err, domain.ErrEmptyInput))
		}},
		{"not an object", "[1, 2]", nil},
		{"no tabs", `{"business_type": "dojo"}`, nil},
		{"malformed field", `{"tabs": [{"id": "tab_2", "components": [{"id": "x", "view": 7}]}]}`, func(t *testing.T, err error) {
			errs := schema.ValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), "tabs[0].components[0].view")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTemplate))
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestLockedIDs(t *testing.T) {
	cfg := &domain.Config{Tabs: []*domain.Tab{
		{Components: []*domain.Component{{ID: "a", Locked: true}, {ID: "b"}}},
		{Components: []*domain.Component{{ID: "c", Locked: true}, {ID: "a", Locked: true}}},
	}}
	assert.Equal(t, []string{"a", "c"}, LockedIDs(cfg))
	assert.Nil(t, LockedIDs(&domain.Config{}))
}
