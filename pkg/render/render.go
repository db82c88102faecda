package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

// Imports renders the import declarations of stmts as source lines for a
// preview. Separators become blank lines; any other statement becomes a
// one-line placeholder naming its node type. Layout is left to a real printer.
func Imports(stmts []ast.Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		switch n := stmt.(type) {
		case *ast.ImportDecl:
			for _, c := range n.LeadingComments {
				b.WriteString(Comment(c))
				b.WriteString("\n")
			}
			b.WriteString(Decl(n))
			for _, c := range n.TrailingComments {
				b.WriteString(" ")
				b.WriteString(Comment(c))
			}
			b.WriteString("\n")
		case *ast.Separator:
			b.WriteString("\n")
		case *ast.Opaque:
			b.WriteString("/* ")
			b.WriteString(n.Type)
			b.WriteString(" */\n")
		}
	}
	return b.String()
}

// Decl renders a single import declaration on one line
func Decl(d *ast.ImportDecl) string {
	source := strconv.Quote(d.Source)
	if len(d.Specifiers) == 0 {
		return "import " + source
	}

	var head []string
	var named []string
	for _, s := range d.Specifiers {
		switch sp := s.(type) {
		case *ast.DefaultSpecifier:
			head = append(head, sp.Local)
		case *ast.NamespaceSpecifier:
			head = append(head, "* as "+sp.Local)
		case *ast.NamedSpecifier:
			named = append(named, namedSpecifier(sp))
		}
	}
	if len(named) > 0 {
		head = append(head, "{ "+strings.Join(named, ", ")+" }")
	}

	kind := ""
	if d.IsTypeOnly() || d.ImportKind == ast.KindTypeof {
		kind = string(d.ImportKind) + " "
	}
	return "import " + kind + strings.Join(head, ", ") + " from " + source
}

func namedSpecifier(s *ast.NamedSpecifier) string {
	text := s.Imported
	if !isIdentifier(text) {
		text = strconv.Quote(text)
	}
	if s.Local != "" && s.Local != s.Imported {
		text += " as " + s.Local
	}
	if s.IsTypeOnly() {
		text = "type " + text
	}
	return text
}

// isIdentifier reports whether name can be written without quotes.
// Non-ASCII letters are accepted as they are.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '$' || r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// Comment renders a comment with its delimiters
func Comment(c ast.Comment) string {
	if c.Kind == ast.CommentBlock {
		return "/*" + c.Value + "*/"
	}
	return "//" + c.Value
}
