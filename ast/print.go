package ast

import "strings"

// Print renders n back to source text for exactly the node shapes this
// module's synthesizer produces (Object.assign/forwardRef components,
// clsx/createElement calls, import declarations, the metadata constant).
// It is not a general JS code generator — a real build would hand the
// mutated tree back to the host's own printer — but a transform
// whose output can't be read isn't reviewable, so tests and the debug CLI
// render through this.
func Print(n Node) string {
	var b strings.Builder
	printNode(&b, n, 0)
	return b.String()
}

// PrintProgram renders every statement on its own line.
func PrintProgram(p *Program) string {
	var b strings.Builder
	for i, s := range p.Body {
		if i > 0 {
			b.WriteByte('\n')
		}
		printStmt(&b, s, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
}

func printStmt(b *strings.Builder, s Statement, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *EmptyStatement:
		b.WriteByte(';')
	case *ImportDeclaration:
		b.WriteString("import { ")
		for i, spec := range n.Specifiers {
			if i > 0 {
				b.WriteString(", ")
			}
			if spec.Local != "" && spec.Local != spec.Imported {
				b.WriteString(spec.Imported + " as " + spec.Local)
			} else {
				b.WriteString(spec.Imported)
			}
		}
		b.WriteString(" } from \"" + n.Source + "\";")
	case *VariableDeclaration:
		b.WriteString(n.DeclKind + " ")
		for i, d := range n.Declarations {
			if i > 0 {
				b.WriteString(", ")
			}
			printPattern(b, d.ID)
			if d.Init != nil {
				b.WriteString(" = ")
				printExpr(b, d.Init)
			}
		}
		b.WriteByte(';')
	case *ExpressionStatement:
		printExpr(b, n.Expression)
		b.WriteByte(';')
	case *ReturnStatement:
		b.WriteString("return")
		if n.Argument != nil {
			b.WriteByte(' ')
			printExpr(b, n.Argument)
		}
		b.WriteByte(';')
	case *BlockStatement:
		b.WriteString("{\n")
		for _, inner := range n.Body {
			printStmt(b, inner, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte('}')
	}
}

func printPattern(b *strings.Builder, p Pattern) {
	switch n := p.(type) {
	case *Identifier:
		b.WriteString(n.Name)
	case *ObjectPattern:
		b.WriteString("{ ")
		for i, prop := range n.Properties {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(prop.Key)
		}
		if n.Rest != nil {
			if len(n.Properties) > 0 {
				b.WriteString(", ")
			}
			b.WriteString("..." + n.Rest.Name)
		}
		b.WriteString(" }")
	}
}

func printExpr(b *strings.Builder, e Expression) {
	switch n := e.(type) {
	case *Identifier:
		b.WriteString(n.Name)
	case *StringLiteral:
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(n.Value, `"`, `\"`))
		b.WriteByte('"')
	case *NumberLiteral:
		b.WriteString(n.Raw)
	case *BooleanLiteral:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *MemberExpression:
		printExpr(b, n.Object)
		if n.Computed {
			b.WriteString("[" + n.Property + "]")
		} else {
			b.WriteString("." + n.Property)
		}
	case *CallExpression:
		printExpr(b, n.Callee)
		b.WriteByte('(')
		for i, a := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, a)
		}
		b.WriteByte(')')
	case *ObjectExpression:
		b.WriteString("{ ")
		for i, m := range n.Properties {
			if i > 0 {
				b.WriteString(", ")
			}
			switch p := m.(type) {
			case *Property:
				if p.Shorthand {
					b.WriteString(p.Key)
				} else {
					b.WriteString(p.Key + ": ")
					printExpr(b, p.Value)
				}
			case *SpreadElement:
				b.WriteString("...")
				printExpr(b, p.Argument)
			}
		}
		b.WriteString(" }")
	case *ArrayExpression:
		b.WriteByte('[')
		for i, el := range n.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			printExpr(b, el)
		}
		b.WriteByte(']')
	case *LogicalExpression:
		printExpr(b, n.Left)
		b.WriteString(" " + n.Operator + " ")
		printExpr(b, n.Right)
	case *BinaryExpression:
		printExpr(b, n.Left)
		b.WriteString(" " + n.Operator + " ")
		printExpr(b, n.Right)
	case *ArrowFunctionExpression:
		b.WriteByte('(')
		for i, p := range n.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			printPattern(b, p)
		}
		b.WriteString(") => ")
		printStmt(b, n.Body, 0)
	}
}

func printNode(b *strings.Builder, n Node, depth int) {
	switch v := n.(type) {
	case Statement:
		printStmt(b, v, depth)
	case Expression:
		printExpr(b, v)
	case Pattern:
		printPattern(b, v)
	}
}
