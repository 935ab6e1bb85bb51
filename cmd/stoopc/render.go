package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"stoopc"
	"stoopc/ast"
	"stoopc/state"
)

// sampleProgram is a fixed styled()/css() module, standing in for the
// source a real bundler plugin would hand the transform. render has no
// JS parser to turn a file on disk into a Program, so it renders this one
// fixture through the full pipeline instead.
func sampleProgram() *ast.Program {
	return &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "styled", Local: "styled"},
		}},
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("Button"), Init: &ast.CallExpression{
				Callee: ast.Ident("styled"),
				Arguments: []ast.Expression{
					ast.Str("button"),
					&ast.ObjectExpression{Properties: []ast.ObjectMember{
						&ast.Property{Key: "color", Value: ast.Str("$colors.primary")},
						&ast.Property{Key: "padding", Value: ast.Str("$space.md")},
						&ast.Property{Key: "variants", Value: &ast.ObjectExpression{Properties: []ast.ObjectMember{
							&ast.Property{Key: "size", Value: &ast.ObjectExpression{Properties: []ast.ObjectMember{
								&ast.Property{Key: "large", Value: &ast.ObjectExpression{Properties: []ast.ObjectMember{
									&ast.Property{Key: "fontSize", Value: ast.Str("20px")},
								}}},
							}}},
						}}},
					}},
				},
			}},
		}},
	}}
}

// renderCommand runs the fixture module through Transform and prints the
// rewritten tree and the generated stylesheet, for eyeballing what a
// styled() call turns into without wiring up a bundler.
func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "transform a fixture module and print the rewritten source and CSS",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "metadata", Aliases: []string{"m"}, Usage: "metadata JSON file (theme, prefix, dev, ...); omitted uses defaults"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var metadata []byte
			if path := cmd.String("metadata"); path != "" {
				var err error
				metadata, err = os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading metadata: %w", err)
				}
			}
			env := state.EnvFromContext(ctx)
			res, err := stoopc.Transform(sampleProgram(), metadata, env.Log)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			fmt.Println(ast.PrintProgram(res.Program))
			if res.CSS != "" {
				fmt.Println("/* ---- generated CSS ---- */")
				fmt.Println(res.CSS)
			}
			if res.Diagnostics != nil {
				fmt.Fprintf(os.Stderr, "render: diagnostics: %v\n", res.Diagnostics)
			}
			return nil
		},
	}
}
