// Package utility expands the fixed set of shorthand property names
// into the real CSS properties they stand for.
package utility

// expansions maps each utility name to the camelCase CSS properties it
// expands into, sharing the single value it was given.
var expansions = map[string][]string{
	"m":  {"margin"},
	"mb": {"marginBottom"},
	"mt": {"marginTop"},
	"ml": {"marginLeft"},
	"mr": {"marginRight"},
	"mx": {"marginLeft", "marginRight"},
	"my": {"marginTop", "marginBottom"},

	"p":  {"padding"},
	"pb": {"paddingBottom"},
	"pt": {"paddingTop"},
	"pl": {"paddingLeft"},
	"pr": {"paddingRight"},
	"px": {"paddingLeft", "paddingRight"},
	"py": {"paddingTop", "paddingBottom"},

	"gap":       {"gap"},
	"rowGap":    {"rowGap"},
	"columnGap": {"columnGap"},

	"w":    {"width"},
	"h":    {"height"},
	"minW": {"minWidth"},
	"maxW": {"maxWidth"},
	"minH": {"minHeight"},
	"maxH": {"maxHeight"},
}

// IsUtility reports whether name is one of the recognized shorthand
// property names.
func IsUtility(name string) bool {
	_, ok := expansions[name]
	return ok
}

// Expand returns the set of camelCase CSS properties name stands for, each
// mapped to the same value. Panics are never raised for an unknown name;
// callers are expected to have already checked IsUtility.
func Expand[V any](name string, value V) map[string]V {
	props := expansions[name]
	out := make(map[string]V, len(props))
	for _, p := range props {
		out[p] = value
	}
	return out
}
