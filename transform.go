// Package stoopc is the build-time transform for the four styling
// primitives (styled/css/globalCss/keyframes): Transform rewrites a
// module's call sites in place and returns the serialized CSS metadata it
// collected along the way.
package stoopc

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stoopc/ast"
	"stoopc/config"
	"stoopc/cssgen"
	"stoopc/emitter"
	"stoopc/tokens"
	"stoopc/visitor"
)

// Result is what Transform hands back: the mutated program, whatever CSS
// metadata the module's styling primitives produced, and any non-fatal
// issues collected along the way.
type Result struct {
	Program     *ast.Program
	CSS         string
	Diagnostics error
}

// Transform is the host entry point: it loads metadata as JSON
// configuration (falling back to defaults on a parse failure, per ), then
// runs one Visitor pass over program. log may be nil.
//
// A single call transforms one module; the host is responsible for calling
// it once per module and for not sharing a Result's Program across calls.
func Transform(program *ast.Program, metadata []byte, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var diag error
	cfg, err := config.Load(metadata)
	if err != nil {
		log.Warn("stoop: configuration invalid, falling back to defaults", zap.Error(err))
		diag = multierr.Append(diag, fmt.Errorf("configuration: %w", err))
	}

	resolver := tokens.NewResolver(cfg.Theme.ToTokenTheme())
	generator := cssgen.New(cfg.Prefix, resolver, cfg.Media, cfg.DenyProperties, log)
	em := emitter.New(cfg.Dev)

	v := visitor.New(cfg, visitor.DefaultModuleNames(), generator, resolver, em, log)
	out := v.Transform(program)
	diag = multierr.Append(diag, v.Diagnostics())

	css := ""
	if em.HasEntries() {
		serialized, serr := em.Serialize()
		if serr != nil {
			return &Result{Program: out, Diagnostics: diag}, serr
		}
		css = serialized
	}
	return &Result{Program: out, CSS: css, Diagnostics: diag}, nil
}
