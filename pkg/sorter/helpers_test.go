package sorter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
	"github.com/siyuan-infoblox/impsort/pkg/render"
)

// imp builds a value import. Specifier shorthands: "default:X", "*:X",
// "type:X", "a as b", "a".
func imp(source string, specs ...string) *ast.ImportDecl {
	d := &ast.ImportDecl{Source: source, ImportKind: ast.KindValue}
	for _, s := range specs {
		switch {
		case strings.HasPrefix(s, "default:"):
			d.Specifiers = append(d.Specifiers, &ast.DefaultSpecifier{Local: strings.TrimPrefix(s, "default:")})
		case strings.HasPrefix(s, "*:"):
			d.Specifiers = append(d.Specifiers, &ast.NamespaceSpecifier{Local: strings.TrimPrefix(s, "*:")})
		case strings.HasPrefix(s, "type:"):
			name := strings.TrimPrefix(s, "type:")
			d.Specifiers = append(d.Specifiers, &ast.NamedSpecifier{Imported: name, Local: name, ImportKind: ast.KindType})
		case strings.Contains(s, " as "):
			parts := strings.SplitN(s, " as ", 2)
			d.Specifiers = append(d.Specifiers, &ast.NamedSpecifier{Imported: parts[0], Local: parts[1], ImportKind: ast.KindValue})
		default:
			d.Specifiers = append(d.Specifiers, &ast.NamedSpecifier{Imported: s, Local: s, ImportKind: ast.KindValue})
		}
	}
	return d
}

// typeImp builds an `import type` declaration
func typeImp(source string, specs ...string) *ast.ImportDecl {
	d := imp(source, specs...)
	d.ImportKind = ast.KindType
	return d
}

func typeofImp(source string, specs ...string) *ast.ImportDecl {
	d := imp(source, specs...)
	d.ImportKind = ast.KindTypeof
	return d
}

func code(text string) *ast.Opaque {
	return &ast.Opaque{Type: "ExpressionStatement", Raw: []byte(text)}
}

func ignoreComment() ast.Comment {
	return ast.Comment{Kind: ast.CommentLine, Value: " " + IgnoreDirective}
}

func stmts(nodes ...ast.Stmt) []ast.Stmt {
	return nodes
}

func decls(nodes ...*ast.ImportDecl) []*ast.ImportDecl {
	return nodes
}

func newSorter(t *testing.T, opts Options) *Sorter {
	t.Helper()
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

// lines renders statements to one line each, blank for separators
func lines(out []ast.Stmt) []string {
	text := strings.TrimSuffix(render.Imports(out), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func sources(out []ast.Stmt) []string {
	var result []string
	for _, s := range out {
		switch n := s.(type) {
		case *ast.ImportDecl:
			result = append(result, n.Source)
		case *ast.Separator:
			result = append(result, "")
		case *ast.Opaque:
			result = append(result, string(n.Raw))
		}
	}
	return result
}
