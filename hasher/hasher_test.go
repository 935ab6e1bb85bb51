package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKebabCase(t *testing.T) {
	cases := map[string]string{
		"Button":          "button",
		"PrimaryButton":   "primary-button",
		"backgroundColor": "background-color",
		"HTMLElement":     "html-element",
		"XMLHTTPRequest":  "xmlhttp-request",
		"getURL":          "get-url",
		"ABC":             "abc",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToKebabCase(in), "ToKebabCase(%q)", in)
	}
}

func TestHashAtomicDeterministic(t *testing.T) {
	a := HashAtomic("color", "red", "", "x")
	b := HashAtomic("color", "red", "", "x")
	require.Equal(t, a, b)
	assert.True(t, len(a) > len("x"))
}

func TestHashAtomicPrefixOnlyChangesPrefix(t *testing.T) {
	a := HashAtomic("color", "red", "", "x")
	b := HashAtomic("color", "red", "", "y")
	require.Equal(t, a[1:], b[1:], "changing only the prefix must not change the hashed suffix")
	assert.Equal(t, "x", a[:1])
	assert.Equal(t, "y", b[:1])
}

func TestHashAtomicContextChangesOutput(t *testing.T) {
	base := HashAtomic("color", "red", "", "x")
	hover := HashAtomic("color", "red", ":hover", "x")
	assert.NotEqual(t, base, hover)
}

func TestHashStringDeterministic(t *testing.T) {
	require.Equal(t, HashString("Button", "x"), HashString("Button", "x"))
	assert.NotEqual(t, HashString("Button", "x"), HashString("Input", "x"))
}

func TestHashAtomicContextFormatsWithColon(t *testing.T) {
	// A non-empty context is hashed as "{context}:{property}:{value}", and
	// ":hover" alone, "@media (min-width:768px)" alone and both combined via
	// "|" must all diverge.
	pseudo := HashAtomic("color", "red", ":hover", "x")
	atRule := HashAtomic("color", "red", "@media (min-width:768px)", "x")
	both := HashAtomic("color", "red", ":hover|@media (min-width:768px)", "x")
	assert.Equal(t, HashString(":hover:color:red", "x"), pseudo)
	assert.NotEqual(t, pseudo, atRule)
	assert.NotEqual(t, pseudo, both)
	assert.NotEqual(t, atRule, both)
}
