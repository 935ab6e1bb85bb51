package ast

// RewriteExpr walks e looking for call expressions anywhere in expression
// position (object/array literal values, call arguments, member objects,
// logical/binary operands, arrow function bodies) and asks fn whether to
// replace each one it finds. fn returning (replacement, true) substitutes
// the node without descending into it further; returning (nil, false)
// leaves it in place and RewriteExpr continues into its children.
//
// This stands in for the part of a host AST library's visitor this module
// does not own: a plugin would normally get these call sites handed to
// it one at a time by the host's traversal. Recognizing "css()" or
// "keyframes()" wherever they appear — not just in declarator position like
// "styled()" — needs this generic walk because the DSL allows nesting them
// inside clsx(...) calls, object literals, and arrays.
func RewriteExpr(e Expression, fn func(*CallExpression) (Expression, bool)) Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *CallExpression:
		if repl, ok := fn(n); ok {
			return repl
		}
		callee := RewriteExpr(n.Callee, fn)
		args := make([]Expression, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = RewriteExpr(a, fn)
		}
		return &CallExpression{Callee: callee, Arguments: args}

	case *MemberExpression:
		return &MemberExpression{Object: RewriteExpr(n.Object, fn), Property: n.Property, Computed: n.Computed}

	case *ObjectExpression:
		members := make([]ObjectMember, len(n.Properties))
		for i, m := range n.Properties {
			switch p := m.(type) {
			case *Property:
				members[i] = &Property{Key: p.Key, Computed: p.Computed, Shorthand: p.Shorthand, Value: RewriteExpr(p.Value, fn)}
			case *SpreadElement:
				members[i] = &SpreadElement{Argument: RewriteExpr(p.Argument, fn)}
			default:
				members[i] = m
			}
		}
		return &ObjectExpression{Properties: members}

	case *ArrayExpression:
		elems := make([]Expression, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = RewriteExpr(el, fn)
		}
		return &ArrayExpression{Elements: elems}

	case *SpreadElement:
		return &SpreadElement{Argument: RewriteExpr(n.Argument, fn)}

	case *LogicalExpression:
		return &LogicalExpression{Operator: n.Operator, Left: RewriteExpr(n.Left, fn), Right: RewriteExpr(n.Right, fn)}

	case *BinaryExpression:
		return &BinaryExpression{Operator: n.Operator, Left: RewriteExpr(n.Left, fn), Right: RewriteExpr(n.Right, fn)}

	case *ArrowFunctionExpression:
		return &ArrowFunctionExpression{Params: n.Params, Body: rewriteBlock(n.Body, fn)}

	default:
		// Identifier, StringLiteral, NumberLiteral, BooleanLiteral: no children.
		return e
	}
}

func rewriteBlock(b *BlockStatement, fn func(*CallExpression) (Expression, bool)) *BlockStatement {
	if b == nil {
		return nil
	}
	body := make([]Statement, len(b.Body))
	for i, s := range b.Body {
		body[i] = RewriteStmt(s, fn)
	}
	return &BlockStatement{Body: body}
}

// RewriteStmt applies RewriteExpr to every expression reachable from s.
func RewriteStmt(s Statement, fn func(*CallExpression) (Expression, bool)) Statement {
	switch n := s.(type) {
	case *VariableDeclaration:
		decls := make([]*VariableDeclarator, len(n.Declarations))
		for i, d := range n.Declarations {
			decls[i] = &VariableDeclarator{ID: d.ID, Init: RewriteExpr(d.Init, fn)}
		}
		return &VariableDeclaration{DeclKind: n.DeclKind, Declarations: decls}
	case *ExpressionStatement:
		return &ExpressionStatement{Expression: RewriteExpr(n.Expression, fn)}
	case *ReturnStatement:
		return &ReturnStatement{Argument: RewriteExpr(n.Argument, fn)}
	case *BlockStatement:
		return rewriteBlock(n, fn)
	default:
		return s
	}
}

// RewriteProgram applies RewriteStmt across the whole module, in place.
func RewriteProgram(prog *Program, fn func(*CallExpression) (Expression, bool)) {
	for i, s := range prog.Body {
		prog.Body[i] = RewriteStmt(s, fn)
	}
}

// RemoveMatchingStatements replaces every top-level (and nested block)
// ExpressionStatement whose expression satisfies match with an
// EmptyStatement, invoking onMatch first so the caller can register
// whatever side effect the call produced — detecting a globalCss() call
// and dropping the statement it lived in.
func RemoveMatchingStatements(prog *Program, match func(*CallExpression) bool, onMatch func(*CallExpression)) {
	prog.Body = removeInStatements(prog.Body, match, onMatch)
}

func removeInStatements(stmts []Statement, match func(*CallExpression) bool, onMatch func(*CallExpression)) []Statement {
	out := make([]Statement, len(stmts))
	for i, s := range stmts {
		switch n := s.(type) {
		case *ExpressionStatement:
			if call, ok := n.Expression.(*CallExpression); ok && match(call) {
				onMatch(call)
				out[i] = &EmptyStatement{}
				continue
			}
			out[i] = s
		case *BlockStatement:
			out[i] = &BlockStatement{Body: removeInStatements(n.Body, match, onMatch)}
		default:
			out[i] = s
		}
	}
	return out
}
