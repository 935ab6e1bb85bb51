package config

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// themeYAML is the on-disk authoring shape for a theme: designers hand-edit
// YAML (comments, anchors, block scalars) rather than the JSON the
// transform's metadata channel actually carries. This is an AMBIENT
// supplement around the host-facing JSON contract in , not part of it.
type themeYAML struct {
	Colors         map[string]string `yaml:"colors,omitempty"`
	Space          map[string]string `yaml:"space,omitempty"`
	FontSizes      map[string]string `yaml:"font_sizes,omitempty"`
	FontWeights    map[string]string `yaml:"font_weights,omitempty"`
	LineHeights    map[string]string `yaml:"line_heights,omitempty"`
	LetterSpacings map[string]string `yaml:"letter_spacings,omitempty"`
	Sizes          map[string]string `yaml:"sizes,omitempty"`
	Radii          map[string]string `yaml:"radii,omitempty"`
	Shadows        map[string]string `yaml:"shadows,omitempty"`
	ZIndices       map[string]string `yaml:"z_indices,omitempty"`
	Transitions    map[string]string `yaml:"transitions,omitempty"`
	Opacities      map[string]string `yaml:"opacities,omitempty"`
	Fonts          map[string]string `yaml:"fonts,omitempty"`
}

func (y themeYAML) toTheme() Theme {
	return Theme{
		Colors: y.Colors, Space: y.Space, FontSizes: y.FontSizes,
		FontWeights: y.FontWeights, LineHeights: y.LineHeights,
		LetterSpacings: y.LetterSpacings, Sizes: y.Sizes, Radii: y.Radii,
		Shadows: y.Shadows, ZIndices: y.ZIndices, Transitions: y.Transitions,
		Opacities: y.Opacities, Fonts: y.Fonts,
	}
}

// LoadThemeYAML reads a designer-authored theme file from path and returns
// it in the same wire shape Config.Theme uses.
func LoadThemeYAML(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var y themeYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Theme{}, err
	}
	return y.toTheme(), nil
}

// ToMetadataJSON serializes a Theme back into the compact JSON fragment the
// transform's metadata channel expects under the "theme" key, so a build
// step can splice a YAML-authored theme straight into the host's config
// JSON.
func ToMetadataJSON(theme Theme) (string, error) {
	out, err := json.Marshal(theme)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
