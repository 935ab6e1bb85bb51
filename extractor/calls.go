package extractor

import (
	"stoopc/ast"
	"stoopc/style"
)

// KeyframeStop is one top-level entry of a keyframes({...}) call: a stop
// name ("from", "to", "0%", ...) and its declaration block. Order follows
// the source object's property order, since the synthesized animation body
// concatenates stops in the order the author wrote them.
type KeyframeStop struct {
	Name         string
	Declarations style.Declarations
}

// ExtractKeyframesStops reads a keyframes() call's single object argument.
func ExtractKeyframesStops(obj *ast.ObjectExpression) []KeyframeStop {
	var stops []KeyframeStop
	for _, member := range obj.Properties {
		p, ok := member.(*ast.Property)
		if !ok {
			continue
		}
		inner, ok := p.Value.(*ast.ObjectExpression)
		if !ok {
			continue // malformed stop body: silently skipped
		}
		stops = append(stops, KeyframeStop{Name: p.Key, Declarations: extractDeclarationsFromObject(inner)})
	}
	return stops
}

// GlobalRule is one top-level entry of a globalCss({...}) call: a selector
// and its declaration block.
type GlobalRule struct {
	Selector     string
	Declarations style.Declarations
}

// ExtractGlobalRules reads a globalCss() call's single object argument.
func ExtractGlobalRules(obj *ast.ObjectExpression) []GlobalRule {
	var rules []GlobalRule
	for _, member := range obj.Properties {
		p, ok := member.(*ast.Property)
		if !ok {
			continue
		}
		inner, ok := p.Value.(*ast.ObjectExpression)
		if !ok {
			continue
		}
		rules = append(rules, GlobalRule{Selector: p.Key, Declarations: extractDeclarationsFromObject(inner)})
	}
	return rules
}
