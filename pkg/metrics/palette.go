package metrics

import (
	theme "github.com/goliatone/go-theme"
)

// Palette names the color assigned to each comparison outcome.
type Palette struct {
	Match     string
	Missing   string
	Partial   string
	Different string
}

// DefaultPalette returns the colors the comparison UI shipped with.
func DefaultPalette() Palette {
	return Palette{
		Match:     "green",
		Missing:   "orange",
		Partial:   "yellow",
		Different: "red",
	}
}

// Token keys resolved against a theme manifest.
const (
	tokenMatch     = "metrics.match"
	tokenMissing   = "metrics.missing"
	tokenPartial   = "metrics.partial"
	tokenDifferent = "metrics.different"
)

// PaletteFromTheme derives a palette from a theme selection. Variant tokens
// override the base manifest tokens; outcomes the manifest does not name keep
// their defaults.
func PaletteFromTheme(sel *theme.Selection) Palette {
	palette := DefaultPalette()
	if sel == nil || sel.Manifest == nil {
		return palette
	}

	tokens := make(map[string]string, len(sel.Manifest.Tokens))
	for key, value := range sel.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	if v := tokens[tokenMatch]; v != "" {
		palette.Match = v
	}
	if v := tokens[tokenMissing]; v != "" {
		palette.Missing = v
	}
	if v := tokens[tokenPartial]; v != "" {
		palette.Partial = v
	}
	if v := tokens[tokenDifferent]; v != "" {
		palette.Different = v
	}
	return palette
}
