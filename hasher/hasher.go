// Package hasher provides the deterministic naming primitives the rest of
// the transform builds on: atomic class names and the kebab-casing used to
// turn a camelCase CSS-in-JS property into a real CSS property name.
//
// Every function here is pure and must be byte-identical across runs and
// platforms — none of them may read the clock, consult
// map iteration order, or otherwise vary.
package hasher

import "unicode/utf16"

const (
	fnvOffsetBasis uint32 = 0x811C9DC5
	fnvPrime       uint32 = 0x01000193
)

// fnv1a hashes input using the classic 32-bit FNV-1a algorithm run over the
// input's UTF-16 code units rather than its bytes, so that a JS runtime
// hashing the same string with `charCodeAt` produces the identical value.
func fnv1a(input string) uint32 {
	h := fnvOffsetBasis
	for _, unit := range utf16.Encode([]rune(input)) {
		// Each UTF-16 code unit contributes two bytes, low byte first, the
		// way a JS implementation iterating charCodeAt() & 0xff, >> 8 would.
		h ^= uint32(unit & 0xff)
		h *= fnvPrime
		h ^= uint32(unit >> 8)
		h *= fnvPrime
	}
	return h
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// base36 renders n in lowercase base-36, with 0 rendered as "0" rather than
// the empty string.
func base36(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [13]byte // max digits for a 32-bit value in base 36
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = base36Alphabet[n%36]
		n /= 36
	}
	return string(buf[i:])
}

// HashAtomic derives the class name for one atomic CSS declaration. context
// is the pseudo/at-rule wrapping (empty for an unconditional base rule);
// prefix is the configured class-name prefix.
func HashAtomic(property, value, context, prefix string) string {
	var input string
	if context == "" {
		input = property + ":" + value
	} else {
		input = context + ":" + property + ":" + value
	}
	return prefix + base36(fnv1a(input))
}

// HashString hashes an arbitrary identifier (a keyframes body or a
// component name) into a stable short name, for keyframe animation names
// and per-component selector classes.
func HashString(input, prefix string) string {
	return prefix + base36(fnv1a(input))
}

// ToKebabCase converts a camelCase or PascalCase identifier to kebab-case,
// correctly collapsing runs of consecutive uppercase letters so that
// "HTMLElement" becomes "html-element" and "getURL" becomes "get-url"
// rather than "h-t-m-l-element" / "get-u-r-l".
//
// A hyphen is inserted before an uppercase rune when either:
//   - it follows a non-uppercase letter ("backgroundColor" -> "background-Color"), or
//   - it is itself the end of an uppercase run, i.e. it is followed by a
//     lowercase letter while also following another uppercase rune
//     ("XMLHttp" -> the 'H' splits because 'X','M','L' precede it and 't'
//     follows).
func ToKebabCase(s string) string {
	runes := []rune(s)
	var b []rune
	for i, r := range runes {
		if isUpper(r) {
			prevUpper := i > 0 && isUpper(runes[i-1])
			prevOther := i > 0 && isLower(runes[i-1])
			nextLower := i+1 < len(runes) && isLower(runes[i+1])
			if prevOther || (prevUpper && nextLower) {
				b = append(b, '-')
			}
			b = append(b, toLower(r))
			continue
		}
		b = append(b, r)
	}
	return string(b)
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}
