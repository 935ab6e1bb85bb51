// Package visitor implements the Module Visitor: the traversal passes
// that recognize styled()/css()/globalCss()/keyframes() call
// sites, dispatches each to the extractor/generator/synthesizer/emitter
// pipeline, and patches the surrounding module with the metadata constant
// and any newly required imports.
package visitor

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stoopc/ast"
	"stoopc/config"
	"stoopc/cssgen"
	"stoopc/emitter"
	"stoopc/extractor"
	"stoopc/synth"
	"stoopc/tokens"
)

// ModuleNames are the three import sources the transform cares about.
// They are "configured per distribution but fixed per transformation"
// — a build of the plugin bakes them in, they are not part of the
// per-call JSON configuration.
type ModuleNames struct {
	Library string // where styled/css/globalCss/keyframes are imported from
	React   string // forwardRef, createElement
	Runtime string // clsx, createSelector
}

// DefaultModuleNames is the distribution this module ships.
func DefaultModuleNames() ModuleNames {
	return ModuleNames{Library: "@stoop/styled", React: "react", Runtime: "@stoop/runtime"}
}

// Visitor owns the alias sets and the per-module Emitter/Generator for one
// transform: one Visitor per module, no shared mutable state crosses
// modules.
type Visitor struct {
	cfg       *config.Config
	modules   ModuleNames
	generator *cssgen.Generator
	resolver  *tokens.Resolver
	emitter   *emitter.Emitter
	log       *zap.Logger

	styledAliases    map[string]bool
	cssAliases       map[string]bool
	globalCssAliases map[string]bool
	keyframesAliases map[string]bool

	styledUsed bool
	diag       error
}

// New constructs a Visitor. em is owned by the caller, which reads it back
// (HasEntries/Serialize) after Transform returns.
func New(cfg *config.Config, modules ModuleNames, generator *cssgen.Generator, resolver *tokens.Resolver, em *emitter.Emitter, log *zap.Logger) *Visitor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Visitor{
		cfg: cfg, modules: modules, generator: generator, resolver: resolver, emitter: em, log: log,
		styledAliases:    map[string]bool{"styled": true},
		cssAliases:       map[string]bool{"css": true},
		globalCssAliases: map[string]bool{"globalCss": true},
		keyframesAliases: map[string]bool{"keyframes": true},
	}
}

// Transform runs its passes over program in order (alias collection, the
// styled() declarator rewrite, the css()/keyframes() expression rewrite,
// globalCss() statement removal, then finalize) and returns it, mutated in
// place. It is safe to call at most once per Visitor.
func (v *Visitor) Transform(program *ast.Program) *ast.Program {
	v.collectAliases(program)
	v.transformStyledDeclarations(program)
	ast.RewriteProgram(program, v.tryReplaceCSSOrKeyframes)
	ast.RemoveMatchingStatements(program, v.isGlobalCssCall, v.registerGlobalCss)
	v.finalize(program)
	return program
}

// Diagnostics returns the non-fatal issues accumulated during Transform,
// folded together with go.uber.org/multierr: nothing here aborts the
// transform, but a host may want to surface what degraded. Nil means the
// module transformed cleanly.
func (v *Visitor) Diagnostics() error {
	return v.diag
}

// collectAliases seeds the four alias sets from the module's own import
// declarations, then extends them again for the re-export supplement:
// `const s = styled;` (no call, a bare reference) makes `s` an additional
// alias for the rest of the module.
func (v *Visitor) collectAliases(program *ast.Program) {
	for _, stmt := range program.Body {
		imp, ok := stmt.(*ast.ImportDeclaration)
		if !ok || imp.Source != v.modules.Library {
			continue
		}
		for _, spec := range imp.Specifiers {
			local := spec.Local
			if local == "" {
				local = spec.Imported
			}
			switch spec.Imported {
			case "styled":
				v.styledAliases[local] = true
			case "css":
				v.cssAliases[local] = true
			case "globalCss":
				v.globalCssAliases[local] = true
			case "keyframes":
				v.keyframesAliases[local] = true
			}
		}
	}

	for _, stmt := range program.Body {
		decl, ok := stmt.(*ast.VariableDeclaration)
		if !ok {
			continue
		}
		for _, d := range decl.Declarations {
			ident, ok := d.ID.(*ast.Identifier)
			ref, isRef := d.Init.(*ast.Identifier)
			if !ok || !isRef {
				continue
			}
			switch {
			case v.styledAliases[ref.Name]:
				v.styledAliases[ident.Name] = true
			case v.cssAliases[ref.Name]:
				v.cssAliases[ident.Name] = true
			case v.globalCssAliases[ref.Name]:
				v.globalCssAliases[ident.Name] = true
			case v.keyframesAliases[ref.Name]:
				v.keyframesAliases[ident.Name] = true
			}
		}
	}
}

// transformStyledDeclarations handles the declarator-position rewrite:
// only a variable declarator's own initializer is considered, since the
// component name comes from the binding itself.
func (v *Visitor) transformStyledDeclarations(program *ast.Program) {
	for _, stmt := range program.Body {
		decl, ok := stmt.(*ast.VariableDeclaration)
		if !ok {
			continue
		}
		for _, d := range decl.Declarations {
			call, ok := d.Init.(*ast.CallExpression)
			if !ok || !v.isStyledCall(call) {
				continue
			}
			ident, ok := d.ID.(*ast.Identifier)
			if !ok {
				continue // destructuring the styled() result isn't a valid binding shape; leave untouched
			}
			d.Init = v.synthesizeStyled(ident.Name, call)
			v.styledUsed = true
		}
	}
}

func (v *Visitor) synthesizeStyled(componentName string, call *ast.CallExpression) ast.Expression {
	ext := extractor.Extract(componentName, call)
	out := v.generator.Generate(ext)
	origin := ""
	if v.cfg.Dev {
		origin = componentName
	}
	return synth.Styled(out, v.emitter, ext.Element, ext.ElementIsComposition, origin)
}

// tryReplaceCSSOrKeyframes is the fn ast.RewriteProgram drives across every
// expression position in the module.
func (v *Visitor) tryReplaceCSSOrKeyframes(call *ast.CallExpression) (ast.Expression, bool) {
	ident, ok := call.Callee.(*ast.Identifier)
	if !ok || len(call.Arguments) == 0 {
		return nil, false
	}
	obj, ok := call.Arguments[0].(*ast.ObjectExpression)
	if !ok {
		return nil, false
	}
	switch {
	case v.cssAliases[ident.Name]:
		return synth.CSS(obj, v.resolver, v.cfg.Prefix, v.emitter, ""), true
	case v.keyframesAliases[ident.Name]:
		return synth.Keyframes(obj, v.resolver, v.cfg.Prefix, v.emitter), true
	default:
		return nil, false
	}
}

func (v *Visitor) isStyledCall(call *ast.CallExpression) bool {
	ident, ok := call.Callee.(*ast.Identifier)
	return ok && v.styledAliases[ident.Name]
}

func (v *Visitor) isGlobalCssCall(call *ast.CallExpression) bool {
	ident, ok := call.Callee.(*ast.Identifier)
	return ok && v.globalCssAliases[ident.Name]
}

func (v *Visitor) registerGlobalCss(call *ast.CallExpression) {
	if len(call.Arguments) == 0 {
		return
	}
	obj, ok := call.Arguments[0].(*ast.ObjectExpression)
	if !ok {
		v.diag = multierr.Append(v.diag, fmt.Errorf("globalCss: argument is not an object literal, statement dropped"))
		v.log.Debug("stoop: malformed globalCss argument, statement dropped")
		return // statement dropped, but recorded as a diagnostic
	}
	synth.GlobalCSS(obj, v.resolver, v.emitter)
}
