package astjson

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

// Encode writes the document back with its current Body. Fields the engine
// does not interpret are written back as they were read.
func (d *Document) Encode() ([]byte, error) {
	body := make([]json.RawMessage, 0, len(d.Body))
	for i, stmt := range d.Body {
		raw, err := encodeStmt(stmt)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		body = append(body, raw)
	}

	rawBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	d.program["body"] = rawBody

	if d.root.str("type") == typeFile {
		rawProgram, err := json.Marshal(d.program)
		if err != nil {
			return nil, err
		}
		d.root["program"] = rawProgram
	}
	return json.Marshal(d.root)
}

func encodeStmt(stmt ast.Stmt) (json.RawMessage, error) {
	switch n := stmt.(type) {
	case *ast.ImportDecl:
		return encodeImport(n)
	case *ast.Separator:
		return json.Marshal(newLineStatement{
			Type:       typeExpressionStatement,
			Expression: stringLiteral{Type: typeStringLiteral, Value: NewLineMarker},
		})
	case *ast.Opaque:
		return json.RawMessage(n.Raw), nil
	}
	return nil, fmt.Errorf("unknown statement %T", stmt)
}

func encodeImport(d *ast.ImportDecl) (json.RawMessage, error) {
	node := fromExtra(d.Extra)
	node["type"] = mustMarshal(typeImportDeclaration)
	if _, ok := node["source"]; !ok {
		node["source"] = mustMarshal(stringLiteral{Type: typeStringLiteral, Value: d.Source})
	}
	kind := d.ImportKind
	if kind == "" {
		kind = ast.KindValue
	}
	node["importKind"] = mustMarshal(string(kind))

	specs := make([]json.RawMessage, 0, len(d.Specifiers))
	for _, s := range d.Specifiers {
		raw, err := encodeSpecifier(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, raw)
	}
	node["specifiers"] = mustMarshal(specs)

	setComments(node, "leadingComments", d.LeadingComments)
	setComments(node, "innerComments", d.InnerComments)
	setComments(node, "trailingComments", d.TrailingComments)
	return json.Marshal(node)
}

func encodeSpecifier(s ast.Specifier) (json.RawMessage, error) {
	var node rawNode
	switch sp := s.(type) {
	case *ast.DefaultSpecifier:
		node = fromExtra(sp.Extra)
		node["type"] = mustMarshal(typeImportDefaultSpecifier)
		setIdentifier(node, "local", sp.Local)
	case *ast.NamespaceSpecifier:
		node = fromExtra(sp.Extra)
		node["type"] = mustMarshal(typeImportNamespaceSpecifier)
		setIdentifier(node, "local", sp.Local)
	case *ast.NamedSpecifier:
		node = fromExtra(sp.Extra)
		node["type"] = mustMarshal(typeImportSpecifier)
		setIdentifier(node, "imported", sp.Imported)
		setIdentifier(node, "local", sp.LocalName())
		if sp.ImportKind != "" {
			node["importKind"] = mustMarshal(string(sp.ImportKind))
		}
	default:
		return nil, fmt.Errorf("unknown specifier %T", s)
	}
	return json.Marshal(node)
}

func setIdentifier(node rawNode, key, value string) {
	if _, ok := node[key]; ok {
		return
	}
	node[key] = mustMarshal(name{Type: typeIdentifier, Name: value})
}

func setComments(node rawNode, key string, comments []ast.Comment) {
	if len(comments) == 0 {
		delete(node, key)
		return
	}
	items := make([]json.RawMessage, 0, len(comments))
	for _, c := range comments {
		if len(c.Raw) > 0 {
			items = append(items, c.Raw)
			continue
		}
		items = append(items, mustMarshal(comment{Type: string(c.Kind), Value: c.Value}))
	}
	node[key] = mustMarshal(items)
}

func fromExtra(extra map[string][]byte) rawNode {
	node := make(rawNode, len(extra)+4)
	for k, v := range extra {
		node[k] = v
	}
	return node
}

// mustMarshal encodes values whose shape is fixed by this package
func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
