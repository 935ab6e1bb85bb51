// Package tokens resolves `$token` / `$scale.key` references against a
// theme into CSS custom-property references.
package tokens

import (
	"strings"

	"stoopc/style"
)

// ScaleOrder is the fixed order scales are searched in when a shorthand
// token (no explicit scale) isn't found via the property->scale table.
// Order is part of the determinism contract — changing it changes which
// scale wins a same-key collision across scales.
var ScaleOrder = []string{
	"colors", "space", "sizes", "radii", "font-sizes", "font-weights",
	"line-heights", "letter-spacings", "shadows", "z-indices",
	"transitions", "opacities", "fonts",
}

// Theme holds the optional token maps for each design-token scale, keyed by
// the canonical (kebab) scale name used in ScaleOrder. Config loading
// aliases camelCase field names (fontSizes, zIndices, ...) to these.
type Theme struct {
	Scales map[string]map[string]string
}

// NewTheme returns an empty theme with every known scale initialized, so
// callers can always index Scales[name] without a nil check.
func NewTheme() *Theme {
	t := &Theme{Scales: make(map[string]map[string]string, len(ScaleOrder))}
	for _, name := range ScaleOrder {
		t.Scales[name] = map[string]string{}
	}
	return t
}

// propertyScale maps a kebab-case CSS property to the scale a shorthand
// token for it should resolve against first.
var propertyScale = map[string]string{
	"color":             "colors",
	"background-color":  "colors",
	"border-color":      "colors",
	"outline-color":     "colors",
	"fill":              "colors",
	"stroke":            "colors",
	"caret-color":       "colors",
	"text-decoration-color": "colors",

	"margin": "space", "margin-top": "space", "margin-bottom": "space",
	"margin-left": "space", "margin-right": "space",
	"padding": "space", "padding-top": "space", "padding-bottom": "space",
	"padding-left": "space", "padding-right": "space",
	"gap": "space", "row-gap": "space", "column-gap": "space",
	"top": "space", "left": "space", "right": "space", "bottom": "space", "inset": "space",

	"width": "sizes", "height": "sizes",
	"min-width": "sizes", "max-width": "sizes",
	"min-height": "sizes", "max-height": "sizes",

	"border-radius": "radii", "border-top-left-radius": "radii",
	"border-top-right-radius": "radii", "border-bottom-left-radius": "radii",
	"border-bottom-right-radius": "radii",

	"font-size": "font-sizes",
	"font-weight": "font-weights",
	"line-height": "line-heights",
	"letter-spacing": "letter-spacings",
	"box-shadow": "shadows", "text-shadow": "shadows",
	"z-index": "z-indices",
	"transition": "transitions", "transition-duration": "transitions",
	"opacity": "opacities",
	"font-family": "fonts",
}

// Resolver resolves StyleValue tokens against a Theme for a given CSS
// property context.
type Resolver struct {
	theme *Theme
}

// NewResolver wraps theme (nil is treated as an empty theme, so every
// shorthand token falls through to the "var(--key)" last resort).
func NewResolver(theme *Theme) *Resolver {
	if theme == nil {
		theme = NewTheme()
	}
	return &Resolver{theme: theme}
}

// Resolve implements five-step algorithm for a single `$...` token.
// property must already be kebab-case.
func (r *Resolver) Resolve(token, property string) string {
	if !strings.HasPrefix(token, "$") {
		return token
	}
	rest := strings.TrimPrefix(token, "$")

	if strings.Contains(rest, ".") {
		parts := strings.Split(rest, ".")
		if len(parts) == 2 {
			return "var(--" + parts[0] + "-" + parts[1] + ")"
		}
		return "var(--" + strings.Join(parts, "-") + ")"
	}

	key := rest
	if scale, ok := propertyScale[property]; ok {
		if _, found := r.theme.Scales[scale][key]; found {
			return "var(--" + scale + "-" + key + ")"
		}
	}

	for _, scale := range ScaleOrder {
		if _, found := r.theme.Scales[scale][key]; found {
			return "var(--" + scale + "-" + key + ")"
		}
	}

	return "var(--" + key + ")"
}

// ResolveValue resolves a full style.Value (Static/Token/Compound) to a
// final CSS value string for the given property context.
func (r *Resolver) ResolveValue(v style.Value, property string) string {
	switch v.Kind {
	case style.KindStatic:
		return v.Static
	case style.KindToken:
		return r.Resolve("$"+v.Token, property)
	case style.KindCompound:
		var b strings.Builder
		for _, part := range v.Parts {
			switch part.Kind {
			case style.PartStatic:
				b.WriteString(part.Text)
			case style.PartToken:
				b.WriteString(r.Resolve("$"+part.Token, property))
			}
		}
		return b.String()
	}
	return ""
}
