package cssgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoopc/style"
	"stoopc/tokens"
)

func newGen(media map[string]string, deny ...string) *Generator {
	return New("s", tokens.NewResolver(tokens.NewTheme()), media, deny, nil)
}

func TestGenerateBaseRules(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.BaseStyles["color"] = style.Static("red")
	ext.BaseStyles["fontSize"] = style.Static("16px")

	out := newGen(nil).Generate(ext)
	require.Len(t, out.BaseRules, 2)
	for _, r := range out.BaseRules {
		assert.Empty(t, r.Pseudo)
		assert.Empty(t, r.AtRule)
		assert.Equal(t, 0, r.Priority)
		assert.NotEmpty(t, r.ClassName)
	}
}

func TestGenerateDeterministicClassNames(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.BaseStyles["color"] = style.Static("red")

	a := newGen(nil).Generate(ext)
	b := newGen(nil).Generate(ext)
	require.Len(t, a.BaseRules, 1)
	require.Len(t, b.BaseRules, 1)
	assert.Equal(t, a.BaseRules[0].ClassName, b.BaseRules[0].ClassName)
}

func TestGenerateDedupWithinCall(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.BaseStyles["color"] = style.Static("red")
	ext.Variants["intent"] = map[string]style.Declarations{
		"danger": {"color": style.Static("red")},
	}

	out := newGen(nil).Generate(ext)
	require.Len(t, out.BaseRules, 1)
	require.Len(t, out.VariantRules["intent"]["danger"], 1)
	assert.Equal(t, out.BaseRules[0].ClassName, out.VariantRules["intent"]["danger"][0].ClassName)
}

func TestGenerateNestedSelectorPseudo(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.NestedSelectors["&:hover"] = style.Declarations{"color": style.Static("blue")}

	out := newGen(nil).Generate(ext)
	require.Len(t, out.BaseRules, 1)
	assert.Equal(t, ":hover", out.BaseRules[0].Pseudo)
	assert.Equal(t, 1, out.BaseRules[0].Priority)
}

func TestGenerateNestedSelectorAtRuleAlias(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.NestedSelectors["@tablet"] = style.Declarations{"color": style.Static("blue")}

	out := newGen(map[string]string{"tablet": "(min-width: 768px)"}).Generate(ext)
	require.Len(t, out.BaseRules, 1)
	assert.Equal(t, "@media (min-width: 768px)", out.BaseRules[0].AtRule)
	assert.Equal(t, 2, out.BaseRules[0].Priority)
}

func TestGenerateAtRuleWithoutAliasPassesThrough(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.NestedSelectors["@media (min-width: 1000px)"] = style.Declarations{"color": style.Static("blue")}

	out := newGen(map[string]string{"tablet": "(min-width: 768px)"}).Generate(ext)
	require.Len(t, out.BaseRules, 1)
	assert.Equal(t, "@media (min-width: 1000px)", out.BaseRules[0].AtRule)
}

func TestGenerateFoldedVariantNestedSelector(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.Variants["size"] = map[string]style.Declarations{
		"small": {
			"fontSize":                               style.Static("12px"),
			style.NestedSelectorKey("&:hover", "color"): style.Static("blue"),
		},
	}

	out := newGen(nil).Generate(ext)
	rules := out.VariantRules["size"]["small"]
	require.Len(t, rules, 2)
	var sawHover bool
	for _, r := range rules {
		if r.Property == "color" {
			assert.Equal(t, ":hover", r.Pseudo)
			sawHover = true
		}
	}
	assert.True(t, sawHover)
}

func TestGenerateCompoundVariantConditionsSorted(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.CompoundVariants = []style.CompoundVariant{
		{
			Conditions: map[string]string{"size": "small", "color": "danger"},
			Styles:     style.Declarations{"fontWeight": style.Static("bold")},
		},
	}

	out := newGen(nil).Generate(ext)
	require.Len(t, out.CompoundRules, 1)
	require.Len(t, out.CompoundRules[0].Conditions, 2)
	assert.Equal(t, "color", out.CompoundRules[0].Conditions[0].Name)
	assert.Equal(t, "size", out.CompoundRules[0].Conditions[1].Name)
}

func TestGenerateDeniedPropertySkipped(t *testing.T) {
	ext := style.NewExtraction("Button")
	ext.BaseStyles["color"] = style.Static("red")
	ext.BaseStyles["content"] = style.Static("''")

	out := newGen(nil, "content").Generate(ext)
	require.Len(t, out.BaseRules, 1)
	assert.Equal(t, "color", out.BaseRules[0].Property)
}

func TestGenerateSelectorClassStableForSameComponent(t *testing.T) {
	ext := style.NewExtraction("Button")
	a := newGen(nil).Generate(ext)
	b := newGen(nil).Generate(ext)
	assert.Equal(t, a.SelectorClass, b.SelectorClass)
	assert.NotEmpty(t, a.SelectorClass)
}
