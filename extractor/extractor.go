// Package extractor walks the AST of a recognized styled()/css()/keyframes()
// call and produces the canonical style.Extraction model. It never
// evaluates expressions — only literals are understood as style values; any
// other expression degrades to an empty static value rather than raising.
package extractor

import (
	"strings"

	"stoopc/ast"
	"stoopc/style"
	"stoopc/utility"
)

type utilityEntry struct {
	name  string
	value style.Value
}

// Extract reads a styled() call's arguments into a style.Extraction bound to
// componentName (the variable the call was assigned to).
func Extract(componentName string, call *ast.CallExpression) *style.Extraction {
	ext := style.NewExtraction(componentName)
	ext.Element, ext.ElementIsComposition = resolveElement(call.Arguments)

	if len(call.Arguments) < 2 {
		return ext
	}
	configObj, ok := call.Arguments[1].(*ast.ObjectExpression)
	if !ok {
		return ext
	}

	var utilityBuffer []utilityEntry
	for _, member := range configObj.Properties {
		p, ok := member.(*ast.Property)
		if !ok {
			// Spread properties in config position can't be evaluated
			// without running arbitrary code; skip them.
			continue
		}
		switch {
		case p.Key == "variants":
			if obj, ok := p.Value.(*ast.ObjectExpression); ok {
				ext.Variants = extractVariants(obj)
			}
		case p.Key == "compoundVariants":
			if arr, ok := p.Value.(*ast.ArrayExpression); ok {
				ext.CompoundVariants = extractCompoundVariants(arr)
			}
		case p.Key == "defaultVariants":
			if obj, ok := p.Value.(*ast.ObjectExpression); ok {
				ext.DefaultVariants = extractDefaultVariants(obj)
			}
		case isNestedSelectorKey(p.Key):
			if obj, ok := p.Value.(*ast.ObjectExpression); ok {
				ext.NestedSelectors[p.Key] = extractDeclarationsFromObject(obj)
			}
		case utility.IsUtility(p.Key):
			utilityBuffer = append(utilityBuffer, utilityEntry{p.Key, ExtractStyleValue(p.Value)})
		default:
			ext.BaseStyles[p.Key] = ExtractStyleValue(p.Value)
		}
	}
	applyUtilityBuffer(ext.BaseStyles, utilityBuffer)
	return ext
}

// ExtractCSSObject reads a plain css({...}) object literal into a flat
// declaration map, applying the same utility expansion rules as a styled()
// config object's base styles — a css() replacement works on the same
// "{camelKey: literal}" shape.
func ExtractCSSObject(obj *ast.ObjectExpression) style.Declarations {
	return extractDeclarationsFromObject(obj)
}

func resolveElement(args []ast.Expression) (element string, isComposition bool) {
	if len(args) == 0 {
		return "div", false
	}
	switch v := args[0].(type) {
	case *ast.StringLiteral:
		return v.Value, false
	case *ast.Identifier:
		return v.Name, true
	case *ast.MemberExpression:
		if base, ok := v.Object.(*ast.Identifier); ok {
			return base.Name, true
		}
		return "div", false
	default:
		return "div", false
	}
}

func isNestedSelectorKey(key string) bool {
	if key == "" {
		return false
	}
	switch key[0] {
	case '&', ':', '@':
		return true
	}
	return false
}

// extractDeclarationsFromObject classifies every own property of obj as a
// base style, expanding utility shorthands last so an explicit write never
// gets shadowed by its own utility expansion.
func extractDeclarationsFromObject(obj *ast.ObjectExpression) style.Declarations {
	decls := style.Declarations{}
	var utilityBuffer []utilityEntry
	for _, member := range obj.Properties {
		p, ok := member.(*ast.Property)
		if !ok {
			continue
		}
		if utility.IsUtility(p.Key) {
			utilityBuffer = append(utilityBuffer, utilityEntry{p.Key, ExtractStyleValue(p.Value)})
			continue
		}
		decls[p.Key] = ExtractStyleValue(p.Value)
	}
	applyUtilityBuffer(decls, utilityBuffer)
	return decls
}

// extractVariantValueDeclarations is extractDeclarationsFromObject plus
// nested-selector folding: a key starting with "&", ":", or "@" inside a
// variant's style object is itself a selector whose inner
// properties get folded back in as "{selector}@@{property}" keys, so the
// generator can later split them back out while the variant value stays a
// single flat map.
func extractVariantValueDeclarations(obj *ast.ObjectExpression) style.Declarations {
	decls := style.Declarations{}
	var utilityBuffer []utilityEntry
	for _, member := range obj.Properties {
		p, ok := member.(*ast.Property)
		if !ok {
			continue
		}
		if isNestedSelectorKey(p.Key) {
			inner, ok := p.Value.(*ast.ObjectExpression)
			if !ok {
				continue // malformed nested selector: silently skipped
			}
			for prop, val := range extractDeclarationsFromObject(inner) {
				decls[style.NestedSelectorKey(p.Key, prop)] = val
			}
			continue
		}
		if utility.IsUtility(p.Key) {
			utilityBuffer = append(utilityBuffer, utilityEntry{p.Key, ExtractStyleValue(p.Value)})
			continue
		}
		decls[p.Key] = ExtractStyleValue(p.Value)
	}
	applyUtilityBuffer(decls, utilityBuffer)
	return decls
}

func applyUtilityBuffer(dest style.Declarations, buf []utilityEntry) {
	for _, u := range buf {
		for prop, val := range utility.Expand(u.name, u.value) {
			if _, exists := dest[prop]; exists {
				continue
			}
			dest[prop] = val
		}
	}
}

func extractVariants(obj *ast.ObjectExpression) map[string]map[string]style.Declarations {
	out := map[string]map[string]style.Declarations{}
	for _, member := range obj.Properties {
		p, ok := member.(*ast.Property)
		if !ok {
			continue
		}
		valuesObj, ok := p.Value.(*ast.ObjectExpression)
		if !ok {
			continue
		}
		values := map[string]style.Declarations{}
		for _, vm := range valuesObj.Properties {
			vp, ok := vm.(*ast.Property)
			if !ok {
				continue
			}
			styleObj, ok := vp.Value.(*ast.ObjectExpression)
			if !ok {
				continue
			}
			values[vp.Key] = extractVariantValueDeclarations(styleObj)
		}
		out[p.Key] = values
	}
	return out
}

func extractCompoundVariants(arr *ast.ArrayExpression) []style.CompoundVariant {
	var out []style.CompoundVariant
	for _, el := range arr.Elements {
		obj, ok := el.(*ast.ObjectExpression)
		if !ok {
			continue
		}
		cv := style.CompoundVariant{Conditions: map[string]string{}, Styles: style.Declarations{}}
		var cssObj *ast.ObjectExpression
		for _, member := range obj.Properties {
			p, ok := member.(*ast.Property)
			if !ok {
				continue
			}
			if p.Key == "css" {
				cssObj, _ = p.Value.(*ast.ObjectExpression)
				continue
			}
			cv.Conditions[p.Key] = coerceConditionValue(p.Value)
		}
		if cssObj != nil {
			cv.Styles = extractVariantValueDeclarations(cssObj)
		}
		out = append(out, cv)
	}
	return out
}

func extractDefaultVariants(obj *ast.ObjectExpression) map[string]string {
	out := map[string]string{}
	for _, member := range obj.Properties {
		p, ok := member.(*ast.Property)
		if !ok {
			continue
		}
		out[p.Key] = coerceConditionValue(p.Value)
	}
	return out
}

func coerceConditionValue(e ast.Expression) string {
	switch v := e.(type) {
	case *ast.StringLiteral:
		return v.Value
	case *ast.NumberLiteral:
		return v.Raw
	case *ast.BooleanLiteral:
		if v.Value {
			return "true"
		}
		return "false"
	case *ast.Identifier:
		return v.Name
	default:
		return ""
	}
}

// ExtractStyleValue implements StyleValue extraction rules for a
// single expression in style-value position.
func ExtractStyleValue(e ast.Expression) style.Value {
	switch v := e.(type) {
	case *ast.StringLiteral:
		return extractStringValue(v.Value)
	case *ast.NumberLiteral:
		return style.Static(v.Raw)
	case *ast.BooleanLiteral:
		if v.Value {
			return style.Static("true")
		}
		return style.Static("false")
	default:
		return style.Static("")
	}
}

func extractStringValue(s string) style.Value {
	dollarCount := strings.Count(s, "$")
	if dollarCount == 1 && strings.HasPrefix(s, "$") && !strings.ContainsAny(s, " \t\n\r") {
		return style.Token(strings.TrimPrefix(s, "$"))
	}
	if dollarCount > 0 {
		return style.Compound(parseCompoundParts(s))
	}
	return style.Static(s)
}

// parseCompoundParts implements compound-string scan: a "$" begins a
// token that runs until the first whitespace, ",", or ")"; dots are
// permitted inside the token so "$colors.primary" stays one token.
func parseCompoundParts(s string) []style.StylePart {
	runes := []rune(s)
	var parts []style.StylePart
	var staticBuf []rune
	i := 0
	for i < len(runes) {
		if runes[i] == '$' {
			if len(staticBuf) > 0 {
				parts = append(parts, style.StylePart{Kind: style.PartStatic, Text: string(staticBuf)})
				staticBuf = nil
			}
			j := i + 1
			for j < len(runes) {
				r := runes[j]
				if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ',' || r == ')' {
					break
				}
				j++
			}
			parts = append(parts, style.StylePart{Kind: style.PartToken, Token: string(runes[i+1 : j])})
			i = j
			continue
		}
		staticBuf = append(staticBuf, runes[i])
		i++
	}
	if len(staticBuf) > 0 {
		parts = append(parts, style.StylePart{Kind: style.PartStatic, Text: string(staticBuf)})
	}
	return parts
}
