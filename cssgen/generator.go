// Package cssgen turns a style.Extraction into a deduplicated AtomicCSSOutput.
// Property names are kebab-cased and values token-resolved before a
// deterministic class name is minted for each unique
// (property, value, context) triple; rules that repeat an already-seen
// triple within the same call are folded back to the existing class.
package cssgen

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"stoopc/hasher"
	"stoopc/style"
	"stoopc/tokens"
)

// Generator holds the configuration a single module's worth of calls share:
// the class-name prefix, the resolved theme, the media-query alias table
// (AMBIENT supplement), and the property denylist (AMBIENT supplement).
type Generator struct {
	Prefix   string
	Resolver *tokens.Resolver
	Media    map[string]string
	Deny     map[string]bool
	log      *zap.Logger
}

// New builds a Generator. A nil logger is turned into zap.NewNop() so callers
// never have to guard their own nil checks.
func New(prefix string, resolver *tokens.Resolver, media map[string]string, deny []string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	denySet := make(map[string]bool, len(deny))
	for _, d := range deny {
		denySet[hasher.ToKebabCase(d)] = true
	}
	return &Generator{Prefix: prefix, Resolver: resolver, Media: media, Deny: denySet, log: log}
}

// Generate lowers one styled()/css() extraction into its atomic CSS output.
// The dedup registry lives for the lifetime of this single call: rules that
// repeat within it (e.g. a variant re-declaring a base property at the same
// value) collapse to one class, but cross-call deduplication is left to the
// emitter, since the content-addressed class name already makes it safe.
func (g *Generator) Generate(ext *style.Extraction) *Output {
	registry := map[string]AtomicRule{}
	out := &Output{
		ComponentName:   ext.ComponentName,
		SelectorClass:   hasher.HashString(ext.ComponentName, g.Prefix),
		DefaultVariants: ext.DefaultVariants,
	}
	out.BaseRules = g.processTopLevel(ext, registry)

	if len(ext.Variants) > 0 {
		out.VariantRules = make(map[string]map[string][]AtomicRule, len(ext.Variants))
		for _, variantName := range sortedKeys(ext.Variants) {
			values := ext.Variants[variantName]
			valueRules := make(map[string][]AtomicRule, len(values))
			for _, valueName := range sortedKeys(values) {
				valueRules[valueName] = g.processDeclarations(values[valueName], "", "", registry)
			}
			out.VariantRules[variantName] = valueRules
		}
	}

	for _, cv := range ext.CompoundVariants {
		out.CompoundRules = append(out.CompoundRules, CompoundRuleSet{
			Conditions: sortedConditionPairs(cv.Conditions),
			Rules:      g.processDeclarations(cv.Styles, "", "", registry),
		})
	}

	return out
}

// processTopLevel folds a call's base declarations and its nested-selector
// blocks into one ordered rule list; nested selectors are processed in
// lexicographic order of their selector text for determinism.
func (g *Generator) processTopLevel(ext *style.Extraction, registry map[string]AtomicRule) []AtomicRule {
	rules := g.processDeclarations(ext.BaseStyles, "", "", registry)
	for _, selector := range sortedKeys(ext.NestedSelectors) {
		pseudo, atRule := g.parseSelector(selector)
		rules = append(rules, g.processDeclarations(ext.NestedSelectors[selector], pseudo, atRule, registry)...)
	}
	return rules
}

// processDeclarations implements the core loop: sort keys, split any
// folded nested-selector key back into its own context, kebab the property,
// resolve the value, mint or reuse a class name.
func (g *Generator) processDeclarations(decls style.Declarations, pseudo, atRule string, registry map[string]AtomicRule) []AtomicRule {
	var out []AtomicRule
	for _, key := range sortedDeclKeys(decls) {
		prop := key
		localPseudo, localAtRule := pseudo, atRule
		if idx := strings.Index(key, "@@"); idx >= 0 {
			localPseudo, localAtRule = g.parseSelector(key[:idx])
			prop = key[idx+2:]
		}

		kebab := hasher.ToKebabCase(prop)
		if g.Deny[kebab] {
			g.log.Debug("stoop: property denied by configuration, skipping", zap.String("property", kebab))
			continue
		}

		resolved := g.Resolver.ResolveValue(decls[key], kebab)
		context := buildContext(localPseudo, localAtRule)
		regKey := kebab + ":" + resolved + ":" + context

		if existing, ok := registry[regKey]; ok {
			out = append(out, existing)
			continue
		}
		rule := AtomicRule{
			ClassName: hasher.HashAtomic(kebab, resolved, context, g.Prefix),
			Property:  kebab,
			Value:     resolved,
			Pseudo:    localPseudo,
			AtRule:    localAtRule,
			Priority:  computePriority(localPseudo != "", localAtRule != ""),
		}
		registry[regKey] = rule
		out = append(out, rule)
	}
	return out
}

// parseSelector classifies a nested-selector key: "@alias" or
// "@media (...)" becomes an at-rule (expanding a configured alias first,
// the media-alias supplement), "&..." becomes a pseudo-selector with the
// leading "&" stripped, ":x" is a pseudo-selector as written, and any other
// key is used as the pseudo text verbatim.
func (g *Generator) parseSelector(selector string) (pseudo, atRule string) {
	switch {
	case strings.HasPrefix(selector, "@"):
		return "", g.resolveMediaAlias(selector)
	case strings.HasPrefix(selector, "&"):
		return strings.TrimPrefix(selector, "&"), ""
	case strings.HasPrefix(selector, ":"):
		return selector, ""
	default:
		return selector, ""
	}
}

// resolveMediaAlias expands "@tablet" to "@media (...)" when "tablet" is a
// configured alias (config.Media); any other at-rule text, including one
// the author already wrote out in full, passes through unchanged.
func (g *Generator) resolveMediaAlias(selector string) string {
	alias := strings.TrimPrefix(selector, "@")
	if query, ok := g.Media[alias]; ok {
		return "@media " + query
	}
	return selector
}

func buildContext(pseudo, atRule string) string {
	var parts []string
	if pseudo != "" {
		parts = append(parts, pseudo)
	}
	if atRule != "" {
		parts = append(parts, atRule)
	}
	return strings.Join(parts, "|")
}

func computePriority(hasPseudo, hasAtRule bool) int {
	switch {
	case hasPseudo && hasAtRule:
		return 3
	case hasAtRule:
		return 2
	case hasPseudo:
		return 1
	default:
		return 0
	}
}

func sortedDeclKeys(decls style.Declarations) []string {
	keys := make([]string, 0, len(decls))
	for k := range decls {
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

func sortedConditionPairs(conditions map[string]string) []ConditionPair {
	names := make([]string, 0, len(conditions))
	for name := range conditions {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]ConditionPair, len(names))
	for i, name := range names {
		pairs[i] = ConditionPair{Name: name, Value: conditions[name]}
	}
	return pairs
}
