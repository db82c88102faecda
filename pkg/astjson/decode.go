package astjson

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

// Document is a parsed Babel AST whose top-level statements can be replaced
type Document struct {
	root    rawNode
	program rawNode // same map as root when the document is a bare Program
	Body    []ast.Stmt
}

// Decode reads a Babel `File` or `Program` JSON document
func Decode(data []byte) (*Document, error) {
	var root rawNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	doc := &Document{root: root}
	switch root.str("type") {
	case typeFile:
		if err := json.Unmarshal(root["program"], &doc.program); err != nil {
			return nil, fmt.Errorf("decode program: %w", err)
		}
	case typeProgram:
		doc.program = root
	default:
		return nil, fmt.Errorf("unsupported root node type %q", root.str("type"))
	}

	var body []json.RawMessage
	if raw, ok := doc.program["body"]; ok {
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("decode program body: %w", err)
		}
	}

	doc.Body = make([]ast.Stmt, 0, len(body))
	for i, raw := range body {
		stmt, err := decodeStmt(raw)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		doc.Body = append(doc.Body, stmt)
	}
	return doc, nil
}

func decodeStmt(raw json.RawMessage) (ast.Stmt, error) {
	var node rawNode
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, err
	}

	typ := node.str("type")
	switch {
	case typ == typeImportDeclaration:
		return decodeImport(node)
	case typ == typeExpressionStatement && isNewLineMarker(raw):
		return &ast.Separator{}, nil
	}

	var pos position
	if err := json.Unmarshal(raw, &pos); err != nil {
		return nil, err
	}
	trailing, err := decodeComments(node["trailingComments"])
	if err != nil {
		return nil, err
	}
	return &ast.Opaque{
		Type:             typ,
		TrailingComments: trailing,
		Pos:              pos.toPos(),
		Raw:              append([]byte(nil), raw...),
	}, nil
}

func isNewLineMarker(raw json.RawMessage) bool {
	var stmt newLineStatement
	if err := json.Unmarshal(raw, &stmt); err != nil {
		return false
	}
	return stmt.Expression.Type == typeStringLiteral && stmt.Expression.Value == NewLineMarker
}

func decodeImport(node rawNode) (*ast.ImportDecl, error) {
	var source stringLiteral
	if err := json.Unmarshal(node["source"], &source); err != nil {
		return nil, fmt.Errorf("import source: %w", err)
	}

	decl := &ast.ImportDecl{
		Source:     source.Value,
		ImportKind: ast.KindValue,
		Extra:      node.extra(),
	}
	if kind := node.str("importKind"); kind != "" {
		decl.ImportKind = ast.ImportKind(kind)
	}

	var pos position
	if err := remarshal(node, &pos); err != nil {
		return nil, err
	}
	decl.Pos = pos.toPos()

	var err error
	if decl.LeadingComments, err = decodeComments(node["leadingComments"]); err != nil {
		return nil, err
	}
	if decl.InnerComments, err = decodeComments(node["innerComments"]); err != nil {
		return nil, err
	}
	if decl.TrailingComments, err = decodeComments(node["trailingComments"]); err != nil {
		return nil, err
	}

	var specs []rawNode
	if raw, ok := node["specifiers"]; ok {
		if err := json.Unmarshal(raw, &specs); err != nil {
			return nil, fmt.Errorf("import specifiers: %w", err)
		}
	}
	for _, spec := range specs {
		s, err := decodeSpecifier(spec)
		if err != nil {
			return nil, err
		}
		decl.Specifiers = append(decl.Specifiers, s)
	}
	return decl, nil
}

func decodeSpecifier(node rawNode) (ast.Specifier, error) {
	var local name
	if raw, ok := node["local"]; ok {
		if err := json.Unmarshal(raw, &local); err != nil {
			return nil, fmt.Errorf("specifier local: %w", err)
		}
	}

	switch typ := node.str("type"); typ {
	case typeImportDefaultSpecifier:
		return &ast.DefaultSpecifier{Local: local.text(), Extra: node.extra()}, nil
	case typeImportNamespaceSpecifier:
		return &ast.NamespaceSpecifier{Local: local.text(), Extra: node.extra()}, nil
	case typeImportSpecifier:
		var imported name
		if err := json.Unmarshal(node["imported"], &imported); err != nil {
			return nil, fmt.Errorf("specifier imported: %w", err)
		}
		return &ast.NamedSpecifier{
			Imported:   imported.text(),
			Local:      local.text(),
			ImportKind: ast.ImportKind(node.str("importKind")),
			Extra:      node.extra(),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported import specifier %q", typ)
	}
}

func decodeComments(raw json.RawMessage) ([]ast.Comment, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("comments: %w", err)
	}
	var out []ast.Comment
	for _, item := range items {
		var c comment
		if err := json.Unmarshal(item, &c); err != nil {
			return nil, fmt.Errorf("comment: %w", err)
		}
		out = append(out, ast.Comment{
			Kind:  ast.CommentKind(c.Type),
			Value: c.Value,
			Pos:   c.toPos(),
			Raw:   append([]byte(nil), item...),
		})
	}
	return out, nil
}

// remarshal decodes the position fields of an already split node
func remarshal(node rawNode, v any) error {
	data, err := json.Marshal(map[string]json.RawMessage{
		"start": orNull(node["start"]),
		"end":   orNull(node["end"]),
		"loc":   orNull(node["loc"]),
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
