// Package style holds the canonical, AST-independent style model that
// the extractor produces and the CSS generator and synthesizer consume.
package style

// ValueKind discriminates the three StyleValue cases. There is no
// base-class/virtual dispatch here by design — callers switch on Kind.
type ValueKind int

const (
	KindStatic ValueKind = iota
	KindToken
	KindCompound
)

// PartKind discriminates the two StylePart cases inside a Compound value.
type PartKind int

const (
	PartStatic PartKind = iota
	PartToken
)

// StylePart is one fragment of a Compound value: either a literal run of
// text or a single `$token` reference.
type StylePart struct {
	Kind  PartKind
	Text  string // literal text when Kind == PartStatic
	Token string // token name without the leading "$" when Kind == PartToken
}

// Value is a tagged union of the three style-value shapes. Exactly one of
// the fields is meaningful, selected by Kind:
//   - KindStatic:   Static holds the literal CSS value.
//   - KindToken:    Token holds the token name without its leading "$".
//   - KindCompound: Parts holds the alternating literal/token fragments.
type Value struct {
	Kind   ValueKind
	Static string
	Token  string
	Parts  []StylePart
}

func Static(s string) Value  { return Value{Kind: KindStatic, Static: s} }
func Token(name string) Value { return Value{Kind: KindToken, Token: name} }
func Compound(parts []StylePart) Value {
	return Value{Kind: KindCompound, Parts: parts}
}

// Declarations maps a CSS property (camelCase, as written in the DSL) to
// its resolved-later Value.
type Declarations map[string]Value

// CompoundVariant is one entry of a `compoundVariants` array: a conjunction
// of variant-name/value conditions paired with the styles that apply when
// every condition holds.
type CompoundVariant struct {
	Conditions map[string]string
	Styles     Declarations
}

// Extraction is the canonical, call-shape-independent model of one
// `styled()` invocation.
type Extraction struct {
	ComponentName string

	// Element is either an HTML tag literal, the default "div", or an
	// identifier naming another component being composed.
	Element string
	// ElementIsComposition is true when Element names another component
	// rather than an HTML tag.
	ElementIsComposition bool

	BaseStyles Declarations

	// NestedSelectors maps a selector (starting with "&", ":", or "@") to
	// its own declaration map.
	NestedSelectors map[string]Declarations

	// Variants maps variantName -> valueName -> declarations. A declaration
	// key of the form "{selector}@@{property}" encodes a nested selector
	// inside a variant value's otherwise-flat map.
	Variants map[string]map[string]Declarations

	CompoundVariants []CompoundVariant

	DefaultVariants map[string]string
}

// NewExtraction returns an Extraction with every map initialized, so
// callers never need a nil check before indexing into it.
func NewExtraction(componentName string) *Extraction {
	return &Extraction{
		ComponentName:   componentName,
		BaseStyles:      Declarations{},
		NestedSelectors: map[string]Declarations{},
		Variants:        map[string]map[string]Declarations{},
		DefaultVariants: map[string]string{},
	}
}

// NestedSelectorKey builds the "{selector}@@{property}" encoding used for
// folding a variant value's nested-selector styles into its otherwise-flat
// declaration map.
func NestedSelectorKey(selector, property string) string {
	return selector + "@@" + property
}
