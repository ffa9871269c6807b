package templates

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/aretw0/pergola/internal/compiler"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/palette"
	"github.com/aretw0/pergola/pkg/schema"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTemplate is returned by Get for business types without a template.
var ErrUnknownTemplate = domain.ErrUnknownTemplate

// ErrInvalidTemplate is returned by Load when a template tree is unusable.
var ErrInvalidTemplate = errors.New("invalid template")

//go:embed data/*.yaml
var dataFS embed.FS

// Template is a base configuration tree and the ids of its locked components.
type Template struct {
	BusinessType string         `json:"business_type" yaml:"business_type"`
	Family       string         `json:"family,omitempty" yaml:"family,omitempty"`
	Config       *domain.Config `json:"config" yaml:"config"`
	Locked       []string       `json:"locked_ids" yaml:"locked_ids"`
}

// Detection is the result of matching a free-text description.
type Detection struct {
	BusinessType string `json:"business_type"`
	Family       string `json:"family"`
	Alias        string `json:"alias"`
}

type alias struct {
	Alias string `yaml:"alias"`
	Type  string `yaml:"type"`
}

type addition struct {
	Tab       string         `yaml:"tab"`
	Prepend   bool           `yaml:"prepend"`
	Component map[string]any `yaml:"component"`

	compiled *domain.Component
}

type tweak struct {
	Stages       []string `yaml:"stages"`
	StaffLabel   string   `yaml:"staff_label"`
	ClientsLabel string   `yaml:"clients_label"`
	RemoveStaff  bool     `yaml:"remove_staff"`
	Add          []string `yaml:"add"`
}

type family struct {
	Family    string               `yaml:"family"`
	Types     []string             `yaml:"types"`
	Aliases   []alias              `yaml:"aliases"`
	Base      map[string]any       `yaml:"base"`
	Additions map[string]*addition `yaml:"additions"`
	Tweaks    map[string]tweak     `yaml:"tweaks"`

	base *domain.Config
}

var (
	families []*family
	aliases  []aliasEntry
)

type aliasEntry struct {
	alias
	family string
}

func init() {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("templates: embedded data: %v", err))
	}
	for _, entry := range entries {
		families = append(families, mustLoadFamily("data/"+entry.Name()))
	}

	for _, f := range families {
		for _, a := range f.Aliases {
			aliases = append(aliases, aliasEntry{alias: a, family: f.Family})
		}
	}
	// Longest alias first so "nail salon" wins over "nail".
	sort.SliceStable(aliases, func(i, j int) bool {
		return len(aliases[i].Alias) > len(aliases[j].Alias)
	})
}

func mustLoadFamily(name string) *family {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("templates: embedded template %s: %v", name, err))
	}
	var f family
	if err := yaml.Unmarshal(data, &f); err != nil {
		panic(fmt.Sprintf("templates: embedded template %s: %v", name, err))
	}

	parser := compiler.NewParser()
	base, warnings := parser.Compile(f.Base)
	if len(warnings) > 0 {
		panic(fmt.Sprintf("templates: embedded template %s: %v", name, &schema.AggregateError{Errors: warnings}))
	}
	f.base = base

	for key, add := range f.Additions {
		comp, warnings := parser.CompileComponent(add.Component)
		if len(warnings) > 0 {
			panic(fmt.Sprintf("templates: embedded addition %s/%s: %v", name, key, &schema.AggregateError{Errors: warnings}))
		}
		add.compiled = comp
	}
	return &f
}

// Detect matches a business description against the known aliases,
// longest alias first, case-insensitively.
func Detect(description string) (Detection, bool) {
	lower := strings.ToLower(description)
	for _, a := range aliases {
		if strings.Contains(lower, a.Alias) {
			return Detection{BusinessType: a.Type, Family: a.family, Alias: a.Alias}, true
		}
	}
	return Detection{}, false
}

// Types returns every business type that has a built-in template, sorted.
func Types() []string {
	var out []string
	for _, f := range families {
		out = append(out, f.Types...)
	}
	sort.Strings(out)
	return out
}

// Get returns a fresh copy of the built-in template for businessType with
// its industry tweaks applied.
func Get(businessType string) (*Template, error) {
	normalized := palette.NormalizeBusinessType(businessType)
	for _, f := range families {
		if slices.Contains(f.Types, normalized) {
			cfg := f.build(normalized)
			return &Template{
				BusinessType: normalized,
				Family:       f.Family,
				Config:       cfg,
				Locked:       LockedIDs(cfg),
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, businessType)
}

// Load decodes a custom template tree from JSON or YAML. Unlike generator
// output, templates are decoded strictly: any dropped field is an error.
// Locked ids are taken from the _locked markers in the tree.
func Load(data []byte) (*Template, error) {
	cfg, warnings, err := compiler.NewParser().Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	if len(warnings) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, &schema.AggregateError{Errors: warnings})
	}
	if len(cfg.Tabs) == 0 {
		return nil, fmt.Errorf("%w: no tabs", ErrInvalidTemplate)
	}
	return &Template{
		BusinessType: cfg.BusinessType,
		Config:       cfg,
		Locked:       LockedIDs(cfg),
	}, nil
}

// LockedIDs returns the ids of components marked locked, in tree order
// and without repeats.
func LockedIDs(cfg *domain.Config) []string {
	var out []string
	seen := make(map[string]bool)
	for _, comp := range cfg.Components() {
		if comp.Locked && !seen[comp.ID] {
			seen[comp.ID] = true
			out = append(out, comp.ID)
		}
	}
	return out
}

func (f *family) build(businessType string) *domain.Config {
	cfg := f.base.Clone()
	cfg.BusinessType = businessType

	t := f.Tweaks[businessType]

	if len(t.Stages) > 0 {
		for _, comp := range cfg.Components() {
			if comp.ID == "clients" && comp.View == domain.ViewPipeline {
				comp.Stages = make([]domain.RawStage, len(t.Stages))
				for i, name := range t.Stages {
					comp.Stages[i] = domain.RawStage{Name: name}
				}
			}
		}
	}

	if t.ClientsLabel != "" {
		for _, comp := range cfg.Components() {
			if comp.ID == "clients" {
				comp.Label = t.ClientsLabel
			}
		}
	}

	if t.StaffLabel != "" {
		if tab := cfg.FindTab("Staff"); tab != nil {
			for _, comp := range tab.Components {
				if comp.ID == "staff" {
					comp.Label = t.StaffLabel
				}
			}
		}
	}

	if t.RemoveStaff {
		cfg.Tabs = slices.DeleteFunc(cfg.Tabs, func(tab *domain.Tab) bool {
			return tab.Label == "Staff"
		})
		for i, tab := range cfg.Tabs {
			tab.ID = fmt.Sprintf("tab_%d", i+1)
		}
	}

	for _, key := range t.Add {
		add, ok := f.Additions[key]
		if !ok {
			continue
		}
		tab := cfg.FindTab(add.Tab)
		if tab == nil {
			continue
		}
		comp := add.compiled.Clone()
		if add.Prepend {
			tab.Components = slices.Insert(tab.Components, 0, comp)
		} else {
			tab.Components = append(tab.Components, comp)
		}
	}
	return cfg
}
