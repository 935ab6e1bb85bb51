package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoopc/ast"
	"stoopc/config"
	"stoopc/cssgen"
	"stoopc/emitter"
	"stoopc/tokens"
)

func newVisitor(cfg *config.Config) (*Visitor, *emitter.Emitter) {
	if cfg == nil {
		cfg = config.Default()
	}
	resolver := tokens.NewResolver(cfg.Theme.ToTokenTheme())
	generator := cssgen.New(cfg.Prefix, resolver, cfg.Media, cfg.DenyProperties, nil)
	em := emitter.New(cfg.Dev)
	return New(cfg, DefaultModuleNames(), generator, resolver, em, nil), em
}

func findImport(program *ast.Program, source string) *ast.ImportDeclaration {
	for _, stmt := range program.Body {
		if imp, ok := stmt.(*ast.ImportDeclaration); ok && imp.Source == source {
			return imp
		}
	}
	return nil
}

func findDecl(program *ast.Program, name string) *ast.VariableDeclarator {
	for _, stmt := range program.Body {
		decl, ok := stmt.(*ast.VariableDeclaration)
		if !ok {
			continue
		}
		for _, d := range decl.Declarations {
			if ident, ok := d.ID.(*ast.Identifier); ok && ident.Name == name {
				return d
			}
		}
	}
	return nil
}

func indexOf(program *ast.Program, stmt ast.Statement) int {
	for i, s := range program.Body {
		if s == stmt {
			return i
		}
	}
	return -1
}

func styledProgram() *ast.Program {
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
						&ast.Property{Key: "color", Value: ast.Str("red")},
					}},
				},
			}},
		}},
	}}
}

func TestTransformStyledRewritesDeclaratorAndInjectsImports(t *testing.T) {
	v, em := newVisitor(nil)
	program := v.Transform(styledProgram())

	d := findDecl(program, "Button")
	require.NotNil(t, d)
	_, isCall := d.Init.(*ast.CallExpression)
	assert.True(t, isCall)
	assert.True(t, em.HasEntries())

	reactImport := findImport(program, "react")
	runtimeImport := findImport(program, "@stoop/runtime")
	require.NotNil(t, reactImport)
	require.NotNil(t, runtimeImport)
	assert.Len(t, reactImport.Specifiers, 2)
	assert.Len(t, runtimeImport.Specifiers, 2)
}

func TestTransformPrependsMetadataConstAfterImports(t *testing.T) {
	v, _ := newVisitor(nil)
	program := v.Transform(styledProgram())

	d := findDecl(program, metadataBindingName)
	require.NotNil(t, d)
	metadataStmt := findStmtDeclaring(program, metadataBindingName)
	metadataIdx := indexOf(program, metadataStmt)
	require.GreaterOrEqual(t, metadataIdx, 0)
	for i := 0; i < metadataIdx; i++ {
		_, isImport := program.Body[i].(*ast.ImportDeclaration)
		assert.True(t, isImport, "statement %d before metadata const must be an import", i)
	}
}

func findStmtDeclaring(program *ast.Program, name string) ast.Statement {
	for _, stmt := range program.Body {
		decl, ok := stmt.(*ast.VariableDeclaration)
		if !ok {
			continue
		}
		for _, d := range decl.Declarations {
			if ident, ok := d.ID.(*ast.Identifier); ok && ident.Name == name {
				return stmt
			}
		}
	}
	return nil
}

func TestTransformNonStoopPassthroughAddsNothing(t *testing.T) {
	v, em := newVisitor(nil)
	program := &ast.Program{Body: []ast.Statement{
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("x"), Init: ast.Str("hello")},
		}},
	}}
	out := v.Transform(program)
	assert.False(t, em.HasEntries())
	assert.Len(t, out.Body, 1)
}

func TestTransformCSSCallNestedInExpressionIsReplaced(t *testing.T) {
	v, em := newVisitor(nil)
	program := &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "css", Local: "css"},
		}},
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("cls"), Init: &ast.CallExpression{
				Callee: ast.Ident("css"),
				Arguments: []ast.Expression{&ast.ObjectExpression{Properties: []ast.ObjectMember{
					&ast.Property{Key: "color", Value: ast.Str("red")},
				}}},
			}},
		}},
	}}
	out := v.Transform(program)
	d := findDecl(out, "cls")
	require.NotNil(t, d)
	_, isLiteral := d.Init.(*ast.StringLiteral)
	assert.True(t, isLiteral)
	assert.True(t, em.HasEntries())
}

func TestTransformMalformedGlobalCssArgumentIsRecorded(t *testing.T) {
	v, _ := newVisitor(nil)
	program := &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "globalCss", Local: "globalCss"},
		}},
		&ast.ExpressionStatement{Expression: &ast.CallExpression{
			Callee:    ast.Ident("globalCss"),
			Arguments: []ast.Expression{ast.Str("nope")},
		}},
	}}
	v.Transform(program)
	assert.Error(t, v.Diagnostics())
}

func TestTransformGlobalCssDropsStatement(t *testing.T) {
	v, em := newVisitor(nil)
	globalStmt := &ast.ExpressionStatement{Expression: &ast.CallExpression{
		Callee: ast.Ident("globalCss"),
		Arguments: []ast.Expression{&ast.ObjectExpression{Properties: []ast.ObjectMember{
			&ast.Property{Key: "body", Value: &ast.ObjectExpression{Properties: []ast.ObjectMember{
				&ast.Property{Key: "margin", Value: ast.Str("0")},
			}}},
		}}},
	}}
	program := &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "globalCss", Local: "globalCss"},
		}},
		globalStmt,
	}}
	out := v.Transform(program)
	var sawEmpty bool
	for _, stmt := range out.Body {
		if _, ok := stmt.(*ast.EmptyStatement); ok {
			sawEmpty = true
		}
		if stmt == globalStmt {
			t.Fatal("original globalCss expression statement should have been replaced")
		}
	}
	assert.True(t, sawEmpty)
	assert.True(t, em.HasEntries())
}

func TestTransformRespectsImportRenaming(t *testing.T) {
	v, em := newVisitor(nil)
	program := &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "styled", Local: "mkStyled"},
		}},
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("Button"), Init: &ast.CallExpression{
				Callee:    ast.Ident("mkStyled"),
				Arguments: []ast.Expression{ast.Str("button")},
			}},
		}},
	}}
	out := v.Transform(program)
	d := findDecl(out, "Button")
	require.NotNil(t, d)
	_, isCall := d.Init.(*ast.CallExpression)
	assert.True(t, isCall)
	_ = em
}

func TestTransformReExportedAliasIsRecognized(t *testing.T) {
	v, _ := newVisitor(nil)
	program := &ast.Program{Body: []ast.Statement{
		&ast.ImportDeclaration{Source: "@stoop/styled", Specifiers: []*ast.ImportSpecifier{
			{Imported: "styled", Local: "styled"},
		}},
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("s"), Init: ast.Ident("styled")},
		}},
		&ast.VariableDeclaration{DeclKind: "const", Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("Button"), Init: &ast.CallExpression{
				Callee:    ast.Ident("s"),
				Arguments: []ast.Expression{ast.Str("button")},
			}},
		}},
	}}
	out := v.Transform(program)
	d := findDecl(out, "Button")
	require.NotNil(t, d)
	_, isCall := d.Init.(*ast.CallExpression)
	assert.True(t, isCall)
}
