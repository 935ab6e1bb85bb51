package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadEmptyReturnsDefault(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Prefix)
}

func TestLoadParsesFields(t *testing.T) {
	cfg, err := Load([]byte(`{"prefix":"app-","theme":{"colors":{"primary":"#111"}},"media":{"tablet":"(min-width: 768px)"}}`))
	require.NoError(t, err)
	assert.Equal(t, "app-", cfg.Prefix)
	assert.Equal(t, "#111", cfg.Theme.Colors["primary"])
	assert.Equal(t, "(min-width: 768px)", cfg.Media["tablet"])
}

func TestLoadInvalidJSONFallsBackToDefault(t *testing.T) {
	cfg, err := Load([]byte(`{not json`))
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithFallbackNeverErrors(t *testing.T) {
	cfg := LoadWithFallback([]byte(`{not json`), zap.NewNop())
	assert.Equal(t, "x", cfg.Prefix)
}

func TestResolveThemeFallsBackToTopLevel(t *testing.T) {
	cfg := &Config{Theme: Theme{Colors: map[string]string{"primary": "red"}}}
	assert.Equal(t, "red", cfg.ResolveTheme("dark").Colors["primary"])

	cfg.Themes = map[string]Theme{"dark": {Colors: map[string]string{"primary": "black"}}}
	assert.Equal(t, "black", cfg.ResolveTheme("dark").Colors["primary"])
}

func TestThemeToTokenThemeAliasesCamelCaseScales(t *testing.T) {
	theme := Theme{FontSizes: map[string]string{"md": "16px"}, ZIndices: map[string]string{"modal": "100"}}
	tt := theme.ToTokenTheme()
	assert.Equal(t, "16px", tt.Scales["font-sizes"]["md"])
	assert.Equal(t, "100", tt.Scales["z-indices"]["modal"])
}
