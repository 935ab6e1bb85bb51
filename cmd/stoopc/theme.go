package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"stoopc/config"
	"stoopc/tokens"
)

// loadThemeFile reads a theme from either a YAML or JSON file, dispatching
// on extension the way config's two authoring paths are meant to be used:
// YAML for hand-authored themes, JSON for whatever a build already emits.
func loadThemeFile(path string) (config.Theme, error) {
	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return config.Theme{}, err
		}
		var theme config.Theme
		if err := json.Unmarshal(data, &theme); err != nil {
			return config.Theme{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return theme, nil
	}
	return config.LoadThemeYAML(path)
}

// themeCommand groups the two theme-authoring debug commands: compiling an
// authored theme to the transform's JSON metadata shape, and resolving one
// token against it to inspect Token Resolver fallthrough.
func themeCommand() *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "theme authoring and inspection",
		Commands: []*cli.Command{
			{
				Name:      "compile",
				Usage:     "compile a YAML or JSON theme file into transform metadata JSON",
				ArgsUsage: "FILE",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 1 {
						return fmt.Errorf("theme compile: need FILE")
					}
					theme, err := loadThemeFile(cmd.Args().Get(0))
					if err != nil {
						return fmt.Errorf("loading theme: %w", err)
					}
					out, err := json.Marshal(config.Config{Theme: theme})
					if err != nil {
						return fmt.Errorf("encoding metadata: %w", err)
					}
					fmt.Println(string(out))
					return nil
				},
			},
			{
				Name:      "resolve",
				Usage:     "resolve one $token against a theme file",
				ArgsUsage: "TOKEN PROPERTY",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "theme FILE (YAML or JSON); omitted resolves against an empty theme"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return fmt.Errorf("theme resolve: need TOKEN PROPERTY")
					}
					theme := config.Theme{}
					if path := cmd.String("file"); path != "" {
						var err error
						theme, err = loadThemeFile(path)
						if err != nil {
							return fmt.Errorf("loading theme: %w", err)
						}
					}
					resolver := tokens.NewResolver(theme.ToTokenTheme())
					fmt.Println(resolver.Resolve(cmd.Args().Get(0), cmd.Args().Get(1)))
					return nil
				},
			},
		},
	}
}
