package visitor

import (
	"go.uber.org/zap"

	"stoopc/ast"
)

const metadataBindingName = "__stoop_css__"

// finalize runs after the main traversal: the metadata constant is only
// added when the emitter actually collected something, and imports are
// only ensured when a styled() call was transformed — a module that never
// touched any of the four primitives is left otherwise byte-for-byte
// equivalent.
func (v *Visitor) finalize(program *ast.Program) {
	if v.styledUsed {
		ensureImports(program, v.modules.React, []string{"forwardRef", "createElement"})
		ensureImports(program, v.modules.Runtime, []string{"clsx", "createSelector"})
	}

	if v.emitter.HasEntries() {
		serialized, err := v.emitter.Serialize()
		if err != nil {
			v.log.Error("stoop: failed to serialize metadata, module will ship without it", zap.Error(err))
			return
		}
		insertAfterImports(program, &ast.VariableDeclaration{
			DeclKind: "const",
			Declarations: []*ast.VariableDeclarator{
				{ID: ast.Ident(metadataBindingName), Init: ast.Str(serialized)},
			},
		})
	}
}

// ensureImports adds any of names missing from the existing import of
// source, or creates the import declaration entirely if source isn't
// imported at all yet.
func ensureImports(program *ast.Program, source string, names []string) {
	for _, stmt := range program.Body {
		imp, ok := stmt.(*ast.ImportDeclaration)
		if !ok || imp.Source != source {
			continue
		}
		have := make(map[string]bool, len(imp.Specifiers))
		for _, s := range imp.Specifiers {
			have[s.Imported] = true
		}
		for _, n := range names {
			if !have[n] {
				imp.Specifiers = append(imp.Specifiers, &ast.ImportSpecifier{Imported: n, Local: n})
			}
		}
		return
	}

	specs := make([]*ast.ImportSpecifier, len(names))
	for i, n := range names {
		specs[i] = &ast.ImportSpecifier{Imported: n, Local: n}
	}
	program.Body = append([]ast.Statement{&ast.ImportDeclaration{Source: source, Specifiers: specs}}, program.Body...)
}

// insertAfterImports places stmt right after the module's leading run of
// import declarations, so the generated metadata constant doesn't land
// above statements that must stay hoisted first.
func insertAfterImports(program *ast.Program, stmt ast.Statement) {
	idx := 0
	for idx < len(program.Body) {
		if _, ok := program.Body[idx].(*ast.ImportDeclaration); !ok {
			break
		}
		idx++
	}
	body := make([]ast.Statement, 0, len(program.Body)+1)
	body = append(body, program.Body[:idx]...)
	body = append(body, stmt)
	body = append(body, program.Body[idx:]...)
	program.Body = body
}
