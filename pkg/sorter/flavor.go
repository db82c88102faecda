package sorter

import (
	"strings"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

// IgnoreDirective excludes the next import from merging and sorting
const IgnoreDirective = "prettier-sort-ignore"

// Flavor is the semantic category of an import declaration
type Flavor int

const (
	FlavorValue Flavor = iota
	FlavorType
	FlavorSideEffect
	FlavorIgnore
	// FlavorTypeof is never merged with anything
	FlavorTypeof
)

func (f Flavor) String() string {
	switch f {
	case FlavorValue:
		return "value"
	case FlavorType:
		return "type"
	case FlavorSideEffect:
		return "side-effect"
	case FlavorIgnore:
		return "ignore"
	case FlavorTypeof:
		return "typeof"
	}
	return "unknown"
}

// Classify returns the flavor of decl. prev is the statement right before
// decl, or nil when decl is the first statement.
func Classify(decl *ast.ImportDecl, prev ast.Stmt) Flavor {
	if hasIgnoreDirective(decl.LeadingComments) || ignoredByPrevious(prev) {
		return FlavorIgnore
	}
	if len(decl.Specifiers) == 0 {
		return FlavorSideEffect
	}
	if decl.IsTypeOnly() {
		return FlavorType
	}
	if decl.ImportKind == ast.KindTypeof {
		return FlavorTypeof
	}
	return FlavorValue
}

func hasIgnoreDirective(comments []ast.Comment) bool {
	for _, c := range comments {
		if strings.TrimSpace(c.Value) == IgnoreDirective {
			return true
		}
	}
	return false
}

// ignoredByPrevious catches a directive the parser attached as a trailing
// comment of the previous statement. A directive on the same line as that
// statement belongs to it, not to the next one.
func ignoredByPrevious(prev ast.Stmt) bool {
	if prev == nil {
		return false
	}
	end := prev.Position().EndLine
	for _, c := range ast.TrailingOf(prev) {
		if strings.TrimSpace(c.Value) != IgnoreDirective {
			continue
		}
		if c.Pos.StartLine == 0 || end == 0 || c.Pos.StartLine > end {
			return true
		}
	}
	return false
}
