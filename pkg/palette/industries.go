package palette

import "github.com/aretw0/pergola/pkg/domain"

// palette builds a Colors value from the ten slots in display order.
func palette(sidebarBg, sidebarText, sidebarIcons, sidebarButtons, background, buttons, cards, text, headings, borders string) *domain.Colors {
	return &domain.Colors{
		SidebarBg:      sidebarBg,
		SidebarText:    sidebarText,
		SidebarIcons:   sidebarIcons,
		SidebarButtons: sidebarButtons,
		Background:     background,
		Buttons:        buttons,
		Cards:          cards,
		Text:           text,
		Headings:       headings,
		Borders:        borders,
	}
}

// neutral is used for business types with no industry palette. Its buttons
// blue is one of the generic placeholders; it is still the value applied, so
// an unknown business type keeps a placeholder buttons color.
var neutral = palette("#0F172A", "#F1F5F9", "#94A3B8", "#3B82F6", "#F8FAFC", "#3B82F6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB")

// industries maps normalized business types to their palette.
var industries = map[string]*domain.Colors{
	// Food & Beverage
	"restaurant": palette("#1C1917", "#F1F5F9", "#A0AEC0", "#EA580C", "#FFFBEB", "#EA580C", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"cafe":       palette("#1C1917", "#F1F5F9", "#A0AEC0", "#D97706", "#FFFBEB", "#D97706", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"bakery":     palette("#451A03", "#F1F5F9", "#A0AEC0", "#D97706", "#FFFBEB", "#D97706", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"catering":   palette("#2D1B4E", "#F1F5F9", "#A0AEC0", "#A855F7", "#FAF5FF", "#A855F7", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"food_truck": palette("#431407", "#F1F5F9", "#A0AEC0", "#EA580C", "#FFF7ED", "#EA580C", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Beauty & Body
	"barber":        palette("#0F172A", "#F1F5F9", "#94A3B8", "#3B82F6", "#F8FAFC", "#3B82F6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"barbershop":    palette("#0F172A", "#F1F5F9", "#94A3B8", "#3B82F6", "#F8FAFC", "#3B82F6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"salon":         palette("#4C0519", "#F1F5F9", "#A0AEC0", "#E11D48", "#FFF1F2", "#E11D48", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"nail_salon":    palette("#4C0519", "#F1F5F9", "#A0AEC0", "#E11D48", "#FFF1F2", "#E11D48", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"hair_salon":    palette("#4C0519", "#F1F5F9", "#A0AEC0", "#E11D48", "#FFF1F2", "#E11D48", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"lash_brow":     palette("#2E1065", "#F1F5F9", "#A0AEC0", "#8B5CF6", "#F5F3FF", "#8B5CF6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"makeup_artist": palette("#831843", "#F1F5F9", "#A0AEC0", "#DB2777", "#FDF2F8", "#DB2777", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"tattoo":        palette("#0F172A", "#F1F5F9", "#94A3B8", "#475569", "#F8FAFC", "#475569", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Wellness & Fitness
	"spa":          palette("#134E4A", "#F1F5F9", "#A0AEC0", "#0D9488", "#F0FDFA", "#0D9488", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"med_spa":      palette("#134E4A", "#F1F5F9", "#A0AEC0", "#0D9488", "#F0FDFA", "#0D9488", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"fitness":      palette("#1E1B4B", "#F1F5F9", "#94A3B8", "#4F46E5", "#EEF2FF", "#4F46E5", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"crossfit":     palette("#0F172A", "#F1F5F9", "#94A3B8", "#EF4444", "#FEF2F2", "#EF4444", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"martial_arts": palette("#4C0519", "#F1F5F9", "#A0AEC0", "#E11D48", "#FFF1F2", "#E11D48", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"yoga":         palette("#134E4A", "#F1F5F9", "#A0AEC0", "#0D9488", "#F0FDFA", "#0D9488", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"dance_studio": palette("#1E1B4B", "#F1F5F9", "#A0AEC0", "#A855F7", "#FAF5FF", "#A855F7", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Home Services
	"landscaping":  palette("#14532D", "#F1F5F9", "#A0AEC0", "#16A34A", "#F0FDF4", "#16A34A", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"plumbing":     palette("#451A03", "#F1F5F9", "#A0AEC0", "#D97706", "#FFFBEB", "#D97706", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"electrical":   palette("#1E293B", "#F1F5F9", "#94A3B8", "#F59E0B", "#FFFBEB", "#F59E0B", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"cleaning":     palette("#0C4A6E", "#F1F5F9", "#94A3B8", "#0284C7", "#F0F9FF", "#0284C7", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"pest_control": palette("#1E293B", "#F1F5F9", "#94A3B8", "#059669", "#ECFDF5", "#059669", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"hvac":         palette("#1E293B", "#F1F5F9", "#94A3B8", "#0284C7", "#F0F9FF", "#0284C7", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"construction": palette("#1E293B", "#F1F5F9", "#94A3B8", "#F59E0B", "#FFFBEB", "#F59E0B", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"moving":       palette("#1E293B", "#F1F5F9", "#94A3B8", "#3B82F6", "#EFF6FF", "#3B82F6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Professional Services
	"legal":        palette("#1E1B4B", "#F1F5F9", "#94A3B8", "#7C3AED", "#FAF5FF", "#7C3AED", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"accounting":   palette("#1E1B4B", "#F1F5F9", "#94A3B8", "#6366F1", "#EEF2FF", "#6366F1", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"consulting":   palette("#0F172A", "#F1F5F9", "#94A3B8", "#6366F1", "#EEF2FF", "#6366F1", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"insurance":    palette("#1E293B", "#F1F5F9", "#94A3B8", "#0EA5E9", "#F0F9FF", "#0EA5E9", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"recruiting":   palette("#0F172A", "#F1F5F9", "#94A3B8", "#6366F1", "#EEF2FF", "#6366F1", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"professional": palette("#0F172A", "#F1F5F9", "#94A3B8", "#6366F1", "#EEF2FF", "#6366F1", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Real Estate & Property
	"real_estate":         palette("#1E293B", "#F1F5F9", "#94A3B8", "#0EA5E9", "#F0F9FF", "#0EA5E9", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"property_management": palette("#1E293B", "#F1F5F9", "#94A3B8", "#0EA5E9", "#F0F9FF", "#0EA5E9", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Healthcare
	"dental":     palette("#1E3A5F", "#F1F5F9", "#94A3B8", "#3B82F6", "#EFF6FF", "#3B82F6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"medical":    palette("#1E3A5F", "#F1F5F9", "#94A3B8", "#3B82F6", "#EFF6FF", "#3B82F6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"veterinary": palette("#164E63", "#F1F5F9", "#A0AEC0", "#14B8A6", "#F0FDFA", "#14B8A6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Creative & Education
	"photography":  palette("#2E1065", "#F1F5F9", "#A0AEC0", "#8B5CF6", "#F5F3FF", "#8B5CF6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"music_studio": palette("#18181B", "#F1F5F9", "#A0AEC0", "#8B5CF6", "#F5F3FF", "#8B5CF6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"tutoring":     palette("#1B2E4B", "#F1F5F9", "#94A3B8", "#6366F1", "#EEF2FF", "#6366F1", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Hospitality & Events
	"event_planning": palette("#1E1B4B", "#F1F5F9", "#A0AEC0", "#EC4899", "#FDF4FF", "#EC4899", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"hotel":          palette("#1E293B", "#F1F5F9", "#94A3B8", "#0EA5E9", "#F0F9FF", "#0EA5E9", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Retail & Automotive
	"retail": palette("#1E1B4B", "#F1F5F9", "#A0AEC0", "#EC4899", "#FDF4FF", "#EC4899", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"auto":   palette("#0F172A", "#F1F5F9", "#94A3B8", "#3B82F6", "#F8FAFC", "#3B82F6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Animals
	"pet_grooming": palette("#164E63", "#F1F5F9", "#A0AEC0", "#14B8A6", "#F0FDFA", "#14B8A6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),

	// Other
	"florist":    palette("#14532D", "#F1F5F9", "#A0AEC0", "#16A34A", "#F0FDF4", "#16A34A", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"coworking":  palette("#18181B", "#F1F5F9", "#A0AEC0", "#8B5CF6", "#F5F3FF", "#8B5CF6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
	"freelancer": palette("#18181B", "#F1F5F9", "#A0AEC0", "#8B5CF6", "#F5F3FF", "#8B5CF6", "#FFFFFF", "#1A1A1A", "#111827", "#E5E7EB"),
}
