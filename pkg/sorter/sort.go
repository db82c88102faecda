package sorter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

// Sort orders the merged declarations of one chunk: specifiers first (when
// enabled), then groups, then declarations within each group. With
// GroupNamespaceSpecifiers, declarations binding a namespace lead their group.
// With Separation a *ast.Separator sits between adjacent non-empty groups.
func (s *Sorter) Sort(decls []*ast.ImportDecl) []ast.Stmt {
	cmp := newComparer(s.opts.CaseInsensitive)

	if s.opts.SortSpecifiers {
		for _, d := range decls {
			sortSpecifiers(d, s.opts, cmp)
		}
	}

	out := make([]ast.Stmt, 0, len(decls)+len(s.matchers))
	for _, g := range s.Group(decls) {
		if len(g.Decls) == 0 {
			continue
		}
		slices.SortStableFunc(g.Decls, func(a, b *ast.ImportDecl) int {
			if s.opts.GroupNamespaceSpecifiers {
				if na, nb := a.HasNamespace(), b.HasNamespace(); na != nb {
					if na {
						return -1
					}
					return 1
				}
			}
			return cmp(a.Source, b.Source)
		})
		if len(out) > 0 && s.opts.Separation {
			out = append(out, &ast.Separator{})
		}
		for _, d := range g.Decls {
			out = append(out, d)
		}
	}
	return out
}

// newComparer returns a lexicographic comparison, folding case when asked.
// A cases.Caser is stateful so each call gets its own.
func newComparer(caseInsensitive bool) func(a, b string) int {
	if !caseInsensitive {
		return strings.Compare
	}
	fold := cases.Fold()
	return func(a, b string) int {
		return strings.Compare(fold.String(a), fold.String(b))
	}
}

// specifierRank orders default, then namespace (when grouped), then the rest
func specifierRank(s ast.Specifier, opts Options) int {
	switch s.(type) {
	case *ast.DefaultSpecifier:
		return 0
	case *ast.NamespaceSpecifier:
		if opts.GroupNamespaceSpecifiers {
			return 1
		}
	}
	return 2
}

func sortSpecifiers(d *ast.ImportDecl, opts Options, cmp func(a, b string) int) {
	slices.SortStableFunc(d.Specifiers, func(a, b ast.Specifier) int {
		ra, rb := specifierRank(a, opts), specifierRank(b, opts)
		if ra != rb {
			return ra - rb
		}
		if ra < 2 {
			return 0
		}
		return cmp(a.LocalName(), b.LocalName())
	})
}
