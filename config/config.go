// Package config loads and validates the transform's JSON configuration
// and builds the logger the rest of the module threads through its
// calls (AMBIENT STACK: logging).
package config

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"stoopc/tokens"
)

// Theme is the JSON shape of one theme's token scales. Camel-cased
// scale names alias to the kebab scale names tokens.ScaleOrder uses.
type Theme struct {
	Colors         map[string]string `json:"colors,omitempty"`
	Space          map[string]string `json:"space,omitempty"`
	FontSizes      map[string]string `json:"fontSizes,omitempty"`
	FontWeights    map[string]string `json:"fontWeights,omitempty"`
	LineHeights    map[string]string `json:"lineHeights,omitempty"`
	LetterSpacings map[string]string `json:"letterSpacings,omitempty"`
	Sizes          map[string]string `json:"sizes,omitempty"`
	Radii          map[string]string `json:"radii,omitempty"`
	Shadows        map[string]string `json:"shadows,omitempty"`
	ZIndices       map[string]string `json:"zIndices,omitempty"`
	Transitions    map[string]string `json:"transitions,omitempty"`
	Opacities      map[string]string `json:"opacities,omitempty"`
	Fonts          map[string]string `json:"fonts,omitempty"`
}

// ToTokenTheme converts the wire shape to the kebab-keyed tokens.Theme the
// resolver operates on.
func (t Theme) ToTokenTheme() *tokens.Theme {
	theme := tokens.NewTheme()
	merge := func(scale string, m map[string]string) {
		if m == nil {
			return
		}
		for k, v := range m {
			theme.Scales[scale][k] = v
		}
	}
	merge("colors", t.Colors)
	merge("space", t.Space)
	merge("font-sizes", t.FontSizes)
	merge("font-weights", t.FontWeights)
	merge("line-heights", t.LineHeights)
	merge("letter-spacings", t.LetterSpacings)
	merge("sizes", t.Sizes)
	merge("radii", t.Radii)
	merge("shadows", t.Shadows)
	merge("z-indices", t.ZIndices)
	merge("transitions", t.Transitions)
	merge("opacities", t.Opacities)
	merge("fonts", t.Fonts)
	return theme
}

// OutputConfig names the host's target file for the emitted stylesheet
//; the transform core never writes files itself — out of scope — but
// carries the setting through for the host/CLI to act on.
type OutputConfig struct {
	Dir      string `json:"dir,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Config is the transform's JSON configuration, plus two supplements: Dev
// (source-origin annotations on emitted rules) and DenyProperties (a
// property denylist enforced by the CSS generator).
type Config struct {
	Prefix         string            `json:"prefix,omitempty"`
	Theme          Theme             `json:"theme,omitempty"`
	Themes         map[string]Theme  `json:"themes,omitempty"`
	Media          map[string]string `json:"media,omitempty"`
	Output         OutputConfig      `json:"output,omitempty"`
	Dev            bool              `json:"dev,omitempty"`
	DenyProperties []string          `json:"denyProperties,omitempty" validate:"omitempty,dive,required"`
}

// Default returns the zero-configuration transform: prefix "x", no theme
// tokens, no media aliases, no denylist.
func Default() *Config {
	return &Config{Prefix: "x"}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load parses and validates metadata as the transform's JSON configuration.
// A configuration parse or validation failure never aborts the transform:
// it is reported as a non-fatal error and the caller is handed Default()
// instead.
func Load(metadata []byte) (*Config, error) {
	if len(metadata) == 0 {
		return Default(), nil
	}
	var cfg Config
	if err := json.Unmarshal(metadata, &cfg); err != nil {
		return Default(), err
	}
	if err := validate.Struct(cfg); err != nil {
		return Default(), err
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "x"
	}
	return &cfg, nil
}

// LoadWithFallback is Load, but logs the failure via log instead of
// returning it, matching the "warn to stderr, fall back to defaults; never
// aborts" error-handling rule without forcing every caller to repeat
// the logging boilerplate.
func LoadWithFallback(metadata []byte, log *zap.Logger) *Config {
	cfg, err := Load(metadata)
	if err != nil {
		log.Warn("stoop: configuration invalid, falling back to defaults", zap.Error(err))
	}
	return cfg
}

// ResolveTheme picks the named theme from Themes, falling back to the
// top-level Theme when name is empty or unknown.
func (c *Config) ResolveTheme(name string) Theme {
	if name == "" {
		return c.Theme
	}
	if t, ok := c.Themes[name]; ok {
		return t
	}
	return c.Theme
}
