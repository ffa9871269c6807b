// Package palette holds the color data used by validation: the ordered
// stage-name color tables, the fallback stage cycle, the per-industry theme
// palettes and the list of generic placeholder colors.
//
// The tables are plain data evaluated first-match-wins. Compound (two-tone)
// stage patterns are always consulted before single color words:
//
//	c, ok := palette.InferStageColor("White Stripe Belt")
//	// c.Primary == "#E5E7EB", c.Secondary == "#1A1A1A", ok == true
package palette
