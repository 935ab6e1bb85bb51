// Package synth builds the replacement AST nodes for recognized
// styled()/css()/keyframes()/globalCss() calls and the
// destructure/clsx/createElement skeleton a transformed styled() call
// expands into.
package synth

import (
	"sort"
	"strings"

	"stoopc/ast"
	"stoopc/cssgen"
	"stoopc/emitter"
	"stoopc/extractor"
	"stoopc/hasher"
	"stoopc/style"
	"stoopc/tokens"
)

// Styled builds the Object.assign(forwardRef(...), {...}) replacement for
// one styled() call, registering every atomic rule it touches into em.
// origin is the AMBIENT dev-mode source annotation (the component name,
// supplied by the caller); it is ignored unless em was built with dev mode
// on.
func Styled(out *cssgen.Output, em *emitter.Emitter, element string, elementIsComposition bool, origin string) ast.Expression {
	variantLikeKeys := variantLikeKeys(out)

	pattern := &ast.ObjectPattern{Rest: &ast.RestElement{Name: "rest"}}
	pattern.Properties = append(pattern.Properties, &ast.ObjectPatternProperty{Key: "as", Shorthand: true})
	for _, k := range variantLikeKeys {
		pattern.Properties = append(pattern.Properties, &ast.ObjectPatternProperty{Key: k, Shorthand: true})
	}
	pattern.Properties = append(pattern.Properties, &ast.ObjectPatternProperty{Key: "className", Shorthand: true})

	propsDecl := &ast.VariableDeclaration{
		DeclKind: "const",
		Declarations: []*ast.VariableDeclarator{
			{ID: pattern, Init: ast.Ident("props")},
		},
	}

	classNameDecl := &ast.VariableDeclaration{
		DeclKind: "const",
		Declarations: []*ast.VariableDeclarator{
			{ID: ast.Ident("finalClassName"), Init: clsxCall(out, em, origin)},
		},
	}

	var elementExpr ast.Expression
	if elementIsComposition {
		elementExpr = ast.Ident(element)
	} else {
		elementExpr = ast.Str(element)
	}
	createElementCall := ast.Call(
		ast.Ident("createElement"),
		ast.Or(ast.Ident("as"), elementExpr),
		&ast.ObjectExpression{Properties: []ast.ObjectMember{
			&ast.Property{Key: "ref", Shorthand: true, Value: ast.Ident("ref")},
			&ast.Property{Key: "className", Value: ast.Ident("finalClassName")},
			&ast.SpreadElement{Argument: ast.Ident("rest")},
		}},
	)

	arrowFn := &ast.ArrowFunctionExpression{
		Params: []ast.Pattern{ast.Ident("props"), ast.Ident("ref")},
		Body: &ast.BlockStatement{Body: []ast.Statement{
			propsDecl,
			classNameDecl,
			&ast.ReturnStatement{Argument: createElementCall},
		}},
	}
	forwardRefCall := ast.Call(ast.Ident("forwardRef"), arrowFn)

	if out.SelectorClass == "" {
		return forwardRefCall
	}
	selectorObj := &ast.ObjectExpression{Properties: []ast.ObjectMember{
		&ast.Property{Key: "selector", Value: ast.Call(ast.Ident("createSelector"), ast.Str(out.SelectorClass))},
	}}
	return ast.Call(ast.Member(ast.Ident("Object"), "assign"), forwardRefCall, selectorObj)
}

func clsxCall(out *cssgen.Output, em *emitter.Emitter, origin string) *ast.CallExpression {
	args := []ast.Expression{ast.Str(classList(out.BaseRules, em, origin))}

	for _, variantName := range sortedKeys(out.VariantRules) {
		for _, valueName := range sortedKeys(out.VariantRules[variantName]) {
			classes := classList(out.VariantRules[variantName][valueName], em, origin)
			args = append(args, ast.And(
				ast.StrictEquals(ast.Ident(variantName), conditionValueExpr(valueName)),
				ast.Str(classes),
			))
		}
	}

	for _, variantName := range sortedKeys(out.DefaultVariants) {
		valueName := out.DefaultVariants[variantName]
		rules, ok := out.VariantRules[variantName][valueName]
		if !ok {
			continue
		}
		classes := classList(rules, em, origin)
		args = append(args, ast.And(
			ast.StrictEquals(ast.Ident(variantName), ast.Undefined()),
			ast.Str(classes),
		))
	}

	for _, cr := range out.CompoundRules {
		var conds []ast.Expression
		for _, c := range cr.Conditions {
			conds = append(conds, ast.StrictEquals(ast.Ident(c.Name), conditionValueExpr(c.Value)))
		}
		conds = append(conds, ast.Str(classList(cr.Rules, em, origin)))
		args = append(args, ast.AndAll(conds))
	}

	args = append(args, ast.Ident("className"))
	return ast.Call(ast.Ident("clsx"), args...)
}

// classList registers every rule into em and returns their class names,
// space-joined in the order given.
func classList(rules []cssgen.AtomicRule, em *emitter.Emitter, origin string) string {
	names := make([]string, len(rules))
	for i, r := range rules {
		em.AddAtomic(r, origin)
		names[i] = r.ClassName
	}
	return strings.Join(names, " ")
}

// conditionValueExpr renders a variant/compound condition value: boolean-
// looking names compare against boolean literals, everything else against
// a string literal.
func conditionValueExpr(value string) ast.Expression {
	switch value {
	case "true":
		return ast.Bool(true)
	case "false":
		return ast.Bool(false)
	default:
		return ast.Str(value)
	}
}

// variantLikeKeys is the union of variant names, compound-variant condition
// names, and default-variant names, sorted lexicographically — the
// destructured keys of the generated props pattern.
func variantLikeKeys(out *cssgen.Output) []string {
	set := map[string]bool{}
	for k := range out.VariantRules {
		set[k] = true
	}
	for _, cr := range out.CompoundRules {
		for _, c := range cr.Conditions {
			set[c.Name] = true
		}
	}
	for k := range out.DefaultVariants {
		set[k] = true
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CSS builds the css(obj) replacement: a single space-joined class-name
// string literal, registering one zero-priority atomic rule per property.
func CSS(obj *ast.ObjectExpression, resolver *tokens.Resolver, prefix string, em *emitter.Emitter, origin string) *ast.StringLiteral {
	decls := extractor.ExtractCSSObject(obj)
	keys := sortedDeclKeys(decls)
	classes := make([]string, 0, len(keys))
	for _, k := range keys {
		kebab := hasher.ToKebabCase(k)
		value := resolver.ResolveValue(decls[k], kebab)
		className := hasher.HashAtomic(kebab, value, "", prefix)
		em.AddAtomic(cssgen.AtomicRule{ClassName: className, Property: kebab, Value: value}, origin)
		classes = append(classes, className)
	}
	return ast.Str(strings.Join(classes, " "))
}

// Keyframes builds the keyframes(obj) replacement: the animation-name
// string literal, after registering the full @keyframes block with em.
func Keyframes(obj *ast.ObjectExpression, resolver *tokens.Resolver, prefix string, em *emitter.Emitter) *ast.StringLiteral {
	stops := extractor.ExtractKeyframesStops(obj)
	var b strings.Builder
	for _, stop := range stops {
		b.WriteString(stop.Name)
		b.WriteString("{")
		b.WriteString(formatDeclarations(stop.Declarations, resolver))
		b.WriteString("}")
	}
	body := b.String()
	name := hasher.HashString(body, prefix)
	em.AddKeyframes(name, body)
	return ast.Str(name)
}

// GlobalCSS registers every selector block of a globalCss(obj) call with em.
// The caller is responsible for dropping the originating statement.
func GlobalCSS(obj *ast.ObjectExpression, resolver *tokens.Resolver, em *emitter.Emitter) {
	for _, rule := range extractor.ExtractGlobalRules(obj) {
		em.AddGlobal(rule.Selector, formatDeclarations(rule.Declarations, resolver))
	}
}

func formatDeclarations(decls style.Declarations, resolver *tokens.Resolver) string {
	keys := sortedDeclKeys(decls)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		kebab := hasher.ToKebabCase(k)
		parts = append(parts, kebab+":"+resolver.ResolveValue(decls[k], kebab))
	}
	return strings.Join(parts, ";")
}

func sortedDeclKeys(decls style.Declarations) []string {
	keys := make([]string, 0, len(decls))
	for k := range decls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
