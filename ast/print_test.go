package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintExprCoversEveryExpressionShape(t *testing.T) {
	cases := []struct {
		name string
		expr Expression
		want string
	}{
		{"identifier", Ident("x"), "x"},
		{"string literal", Str(`say "hi"`), `"say \"hi\""`},
		{"number literal", &NumberLiteral{Raw: "1.5"}, "1.5"},
		{"boolean true", Bool(true), "true"},
		{"boolean false", Bool(false), "false"},
		{"member access", Member(Ident("a"), "b"), "a.b"},
		{"computed member", &MemberExpression{Object: Ident("a"), Property: "0", Computed: true}, "a[0]"},
		{"call", Call(Ident("f"), Ident("x"), Str("y")), `f(x, "y")`},
		{"logical and", And(Ident("a"), Ident("b")), "a && b"},
		{"logical or", Or(Ident("a"), Ident("b")), "a || b"},
		{"strict equals", StrictEquals(Ident("a"), Str("b")), `a === "b"`},
		{"array", &ArrayExpression{Elements: []Expression{Ident("a"), Ident("b")}}, "[a, b]"},
		{
			"object with shorthand and spread",
			&ObjectExpression{Properties: []ObjectMember{
				&Property{Key: "a", Shorthand: true, Value: Ident("a")},
				&Property{Key: "b", Value: Str("c")},
				&SpreadElement{Argument: Ident("rest")},
			}},
			`{ a, b: "c", ...rest }`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Print(tc.expr))
		})
	}
}

func TestPrintPatternCoversObjectPatternWithRest(t *testing.T) {
	p := &ObjectPattern{
		Properties: []*ObjectPatternProperty{{Key: "a"}, {Key: "b"}},
		Rest:       &RestElement{Name: "rest"},
	}
	assert.Equal(t, "{ a, b, ...rest }", Print(p))
}

func TestPrintProgramRendersImportsDeclarationsAndReturn(t *testing.T) {
	program := &Program{Body: []Statement{
		&ImportDeclaration{Source: "react", Specifiers: []*ImportSpecifier{
			{Imported: "forwardRef", Local: "forwardRef"},
			{Imported: "createElement", Local: "h"},
		}},
		&VariableDeclaration{DeclKind: "const", Declarations: []*VariableDeclarator{
			{ID: Ident("x"), Init: Str("y")},
		}},
		&ExpressionStatement{Expression: Call(Ident("f"), Ident("x"))},
		&ReturnStatement{Argument: Ident("x")},
	}}
	got := PrintProgram(program)
	assert.Contains(t, got, `import { forwardRef, createElement as h } from "react";`)
	assert.Contains(t, got, `const x = "y";`)
	assert.Contains(t, got, "f(x);")
	assert.Contains(t, got, "return x;")
}

func TestPrintArrowFunctionAndBlockStatement(t *testing.T) {
	fn := &ArrowFunctionExpression{
		Params: []Pattern{Ident("props"), Ident("ref")},
		Body: &BlockStatement{Body: []Statement{
			&ReturnStatement{Argument: Ident("props")},
		}},
	}
	got := Print(fn)
	assert.Contains(t, got, "(props, ref) => {")
	assert.Contains(t, got, "return props;")
}

func TestPrintEmptyStatement(t *testing.T) {
	assert.Equal(t, ";", Print(&EmptyStatement{}))
}
