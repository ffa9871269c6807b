package palette

import (
	"sort"
	"strings"

	"github.com/aretw0/pergola/pkg/domain"
)

// generic holds button colors the generator falls back to when it did not
// theme the palette. Compared case-insensitively.
var generic = map[string]bool{
	"#ce0707": true,
	"#dc2626": true,
	"#ef4444": true,
	"#3b82f6": true,
}

// IsGeneric reports whether color is a known placeholder value.
func IsGeneric(color string) bool {
	return generic[strings.ToLower(strings.TrimSpace(color))]
}

// NormalizeBusinessType lowercases t and replaces spaces with underscores.
func NormalizeBusinessType(t string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(t)), " ", "_")
}

// ForBusiness returns a copy of the industry palette for businessType,
// or the neutral palette when the type is not recognized.
func ForBusiness(businessType string) *domain.Colors {
	if c, ok := industries[NormalizeBusinessType(businessType)]; ok {
		return c.Clone()
	}
	return neutral.Clone()
}

// Lookup returns a copy of the industry palette for businessType.
func Lookup(businessType string) (*domain.Colors, bool) {
	c, ok := industries[NormalizeBusinessType(businessType)]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// Neutral returns a copy of the fallback palette.
func Neutral() *domain.Colors {
	return neutral.Clone()
}

// Industries returns the business types that have a dedicated palette, sorted.
func Industries() []string {
	out := make([]string, 0, len(industries))
	for k := range industries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
