// Package emitter accumulates CSSMetadataEntry records for one module and
// serializes them into the compact JSON string that becomes the module's
// __stoop_css__ constant.
package emitter

import (
	"encoding/json"
	"fmt"

	"stoopc/cssgen"
)

// Entry is one CSSMetadataEntry. Field order and json names (c, s, p, g) are
// the wire contract the runtime library parses; Origin ("o") is an AMBIENT
// addition, only ever populated in dev mode, and omitted otherwise.
type Entry struct {
	Class    string `json:"c"`
	Rule     string `json:"s"`
	Priority int    `json:"p"`
	Global   bool   `json:"g,omitempty"`
	Origin   string `json:"o,omitempty"`
}

// Emitter owns the module-level dedup and accumulation the Visitor threads
// through every recognized call in one module transform.
type Emitter struct {
	dev     bool
	seen    map[string]bool
	entries []Entry
}

// New returns an empty Emitter. dev enables the source-origin annotation on
// atomic rules (AMBIENT supplement, only meaningful with config.Config.Dev).
func New(dev bool) *Emitter {
	return &Emitter{dev: dev, seen: map[string]bool{}}
}

// AddAtomic registers rule's formatted CSS text under its class name. A
// class name already seen in this module is a no-op: the hash is a pure
// function of (property, value, context, prefix), so a repeat is guaranteed
// to format identically — one emitted rule per unique class across the
// whole module, not just within one call.
func (e *Emitter) AddAtomic(rule cssgen.AtomicRule, origin string) {
	if e.seen[rule.ClassName] {
		return
	}
	e.seen[rule.ClassName] = true
	entry := Entry{Class: rule.ClassName, Rule: formatAtomic(rule), Priority: rule.Priority}
	if e.dev {
		entry.Origin = origin
	}
	e.entries = append(e.entries, entry)
}

// AddGlobal registers a globalCss() selector block. Global entries carry no
// class name and are never deduplicated against each other: a module may
// legitimately declare the same selector twice across separate globalCss()
// calls.
func (e *Emitter) AddGlobal(selector, body string) {
	e.entries = append(e.entries, Entry{Rule: fmt.Sprintf("%s{%s}", selector, body), Global: true})
}

// AddKeyframes registers a keyframes() animation body under its derived
// name.
func (e *Emitter) AddKeyframes(name, body string) {
	e.entries = append(e.entries, Entry{Rule: fmt.Sprintf("@keyframes %s{%s}", name, body), Global: true})
}

// HasEntries reports whether anything was registered; the Visitor only
// prepends __stoop_css__ when this is true.
func (e *Emitter) HasEntries() bool {
	return len(e.entries) > 0
}

// Serialize renders the accumulated entries as compact JSON.
func (e *Emitter) Serialize() (string, error) {
	out, err := json.Marshal(e.entries)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func formatAtomic(rule cssgen.AtomicRule) string {
	body := fmt.Sprintf(".%s%s{%s:%s}", rule.ClassName, rule.Pseudo, rule.Property, rule.Value)
	if rule.AtRule != "" {
		return fmt.Sprintf("%s{%s}", rule.AtRule, body)
	}
	return body
}
