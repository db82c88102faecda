package sorter

import (
	"github.com/pkg/errors"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

// mergeableFlavors lists merge candidates in processing order
var mergeableFlavors = []Flavor{FlavorValue, FlavorType}

// Merge combines declarations of one sortable chunk that import the same
// source with a compatible flavor. Kept declarations are mutated in place;
// the returned slice is decls without the declarations merged away.
func Merge(decls []*ast.ImportDecl, opts Options) []*ast.ImportDecl {
	if !opts.MergeDuplicateImports {
		return decls
	}

	flavors := make(map[*ast.ImportDecl]Flavor, len(decls))
	for _, d := range decls {
		flavors[d] = Classify(d, nil)
	}

	forgotten := make(map[*ast.ImportDecl]bool)
	var kept map[string]*ast.ImportDecl
	for _, flavor := range mergeableFlavors {
		if kept == nil || !opts.MergeTypeImportsIntoRegular {
			kept = make(map[string]*ast.ImportDecl)
		}
		for _, d := range decls {
			if flavors[d] != flavor {
				continue
			}
			keep, ok := kept[d.Source]
			if !ok {
				kept[d.Source] = d
				continue
			}
			if mergeDecls(keep, d) {
				forgotten[d] = true
			}
		}
	}

	if len(forgotten) == 0 {
		return decls
	}
	out := make([]*ast.ImportDecl, 0, len(decls)-len(forgotten))
	for _, d := range decls {
		if !forgotten[d] {
			out = append(out, d)
		}
	}
	return out
}

// mergeIsSafe reports false when combining would change meaning or produce
// invalid syntax
func mergeIsSafe(keep, forget *ast.ImportDecl) bool {
	if keep.HasNamespace() || forget.HasNamespace() {
		return false
	}
	if keep.HasDefault() && forget.HasDefault() {
		return false
	}
	return true
}

// mergeDecls moves forget's specifiers and comments into keep. It returns
// true when forget must be dropped.
func mergeDecls(keep, forget *ast.ImportDecl) bool {
	if !mergeIsSafe(keep, forget) {
		return false
	}

	switch {
	case keep.IsTypeOnly() && !forget.IsTypeOnly():
		convertTypeImportToValue(keep)
	case !keep.IsTypeOnly() && forget.IsTypeOnly():
		convertTypeImportToValue(forget)
	}

	keep.Specifiers = append(keep.Specifiers, forget.Specifiers...)
	keep.LeadingComments = concatComments(keep.LeadingComments, forget.LeadingComments)
	keep.InnerComments = concatComments(keep.InnerComments, forget.InnerComments)
	keep.TrailingComments = concatComments(keep.TrailingComments, forget.TrailingComments)

	forget.Specifiers = nil
	forget.LeadingComments = nil
	forget.InnerComments = nil
	forget.TrailingComments = nil
	return true
}

// convertTypeImportToValue turns `import type {A}` into `import {type A}`
func convertTypeImportToValue(d *ast.ImportDecl) {
	if d.ImportKind != ast.KindType {
		panic(errors.Errorf("import of %q has kind %q, expected %q", d.Source, d.ImportKind, ast.KindType))
	}
	d.ImportKind = ast.KindValue
	for _, s := range d.Specifiers {
		if named, ok := s.(*ast.NamedSpecifier); ok {
			named.ImportKind = ast.KindType
		}
	}
}

func concatComments(a, b []ast.Comment) []ast.Comment {
	if len(b) == 0 {
		return a
	}
	out := make([]ast.Comment, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
