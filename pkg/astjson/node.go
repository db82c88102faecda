package astjson

import (
	"github.com/goccy/go-json"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

// Babel node type names
const (
	typeFile                     = "File"
	typeProgram                  = "Program"
	typeImportDeclaration        = "ImportDeclaration"
	typeImportDefaultSpecifier   = "ImportDefaultSpecifier"
	typeImportNamespaceSpecifier = "ImportNamespaceSpecifier"
	typeImportSpecifier          = "ImportSpecifier"
	typeExpressionStatement      = "ExpressionStatement"
	typeStringLiteral            = "StringLiteral"
	typeIdentifier               = "Identifier"
)

// NewLineMarker is the string literal printers replace with a blank line
const NewLineMarker = "PRETTIER_IMPORT_SORT_NEW_LINE"

// rawNode keeps every field of a node undecoded
type rawNode map[string]json.RawMessage

type lineInfo struct {
	Line int `json:"line"`
}

type location struct {
	Start lineInfo `json:"start"`
	End   lineInfo `json:"end"`
}

type position struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Loc   *location `json:"loc,omitempty"`
}

func (p position) toPos() ast.Pos {
	pos := ast.Pos{Start: p.Start, End: p.End}
	if p.Loc != nil {
		pos.StartLine = p.Loc.Start.Line
		pos.EndLine = p.Loc.End.Line
	}
	return pos
}

type comment struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	position
}

// name is an Identifier or, for `import {"a-b" as c}`, a StringLiteral
type name struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

func (n name) text() string {
	if n.Type == typeStringLiteral {
		return n.Value
	}
	return n.Name
}

type stringLiteral struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type newLineStatement struct {
	Type       string        `json:"type"`
	Expression stringLiteral `json:"expression"`
}

func (n rawNode) str(key string) string {
	var s string
	if raw, ok := n[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

func (n rawNode) extra() map[string][]byte {
	out := make(map[string][]byte, len(n))
	for k, v := range n {
		out[k] = v
	}
	return out
}
