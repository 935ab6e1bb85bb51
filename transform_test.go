package stoopc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoopc/ast"
)

func TestTransformStyledProducesMetadataAndResult(t *testing.T) {
	program := &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "styled", Local: "styled"},
		}},
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("Button"), Init: &ast.CallExpression{
				Callee: ast.Ident("styled"),
				Arguments: []ast.Expression{
					ast.Str("button"),
					&ast.ObjectExpression{Properties: []ast.ObjectMember{
						&ast.Property{Key: "color", Value: ast.Str("red")},
					}},
				},
			}},
		}},
	}}

	res, err := Transform(program, []byte(`{"prefix":"t"}`), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.CSS)
	assert.Same(t, program, res.Program)

	rendered := ast.PrintProgram(res.Program)
	assert.Contains(t, rendered, "forwardRef(")
	assert.Contains(t, rendered, "createElement(")
	assert.Contains(t, rendered, "clsx(")
	assert.Contains(t, rendered, "__stoop_css__")
}

func TestTransformInvalidMetadataFallsBackToDefaults(t *testing.T) {
	program := &ast.Program{Body: []ast.Statement{
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("x"), Init: ast.Str("y")},
		}},
	}}
	res, err := Transform(program, []byte(`{not json`), nil)
	require.NoError(t, err)
	assert.Empty(t, res.CSS)
	assert.Error(t, res.Diagnostics)
}

func TestTransformMalformedGlobalCssIsRecordedAsDiagnostic(t *testing.T) {
	program := &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "globalCss", Local: "globalCss"},
		}},
		&ast.ExpressionStatement{Expression: &ast.CallExpression{
			Callee:    ast.Ident("globalCss"),
			Arguments: []ast.Expression{ast.Str("not an object")},
		}},
	}}
	res, err := Transform(program, nil, nil)
	require.NoError(t, err)
	assert.Error(t, res.Diagnostics)
}
