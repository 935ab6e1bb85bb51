package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"stoopc/hasher"
)

// hashCommand exposes the Hasher directly, for comparing this
// module's output against a JS-side implementation bit for bit.
func hashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "print a deterministic class or selector name",
		ArgsUsage: "atomic PREFIX PROPERTY VALUE [CONTEXT] | string PREFIX INPUT",
		Commands: []*cli.Command{
			{
				Name:      "atomic",
				Usage:     "hash one atomic CSS declaration",
				ArgsUsage: "PREFIX PROPERTY VALUE [CONTEXT]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 3 {
						return fmt.Errorf("hash atomic: need PREFIX PROPERTY VALUE [CONTEXT]")
					}
					prefix, property, value := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2)
					context := cmd.Args().Get(3)
					fmt.Println(hasher.HashAtomic(property, value, context, prefix))
					return nil
				},
			},
			{
				Name:      "string",
				Usage:     "hash an arbitrary identifier (keyframes body, component name)",
				ArgsUsage: "PREFIX INPUT",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return fmt.Errorf("hash string: need PREFIX INPUT")
					}
					fmt.Println(hasher.HashString(cmd.Args().Get(1), cmd.Args().Get(0)))
					return nil
				},
			},
		},
	}
}

// kebabCommand exposes hasher.ToKebabCase for checking a property name's
// kebab form without wiring up an entire styled() call.
func kebabCommand() *cli.Command {
	return &cli.Command{
		Name:      "kebab",
		Usage:     "print the kebab-case form of an identifier",
		ArgsUsage: "IDENT",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("kebab: need IDENT")
			}
			fmt.Println(hasher.ToKebabCase(cmd.Args().Get(0)))
			return nil
		},
	}
}
