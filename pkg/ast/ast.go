package ast

// ImportKind is the declaration-level or specifier-level import kind
type ImportKind string

const (
	KindValue  ImportKind = "value"
	KindType   ImportKind = "type"
	KindTypeof ImportKind = "typeof" // Flow
)

// CommentKind distinguishes line and block comments
type CommentKind string

const (
	CommentLine  CommentKind = "CommentLine"
	CommentBlock CommentKind = "CommentBlock"
)

// Pos is the source position of a node as reported by the parser
type Pos struct {
	Start     int
	End       int
	StartLine int
	EndLine   int
}

// Comment is a single comment attached to a node
type Comment struct {
	Kind  CommentKind
	Value string // comment text without delimiters
	Pos   Pos
	Raw   []byte // original encoded form, if decoded from a document
}

// Stmt is a top-level statement of a program.
// Implementations: *ImportDecl, *Opaque, *Separator.
type Stmt interface {
	isStmt()
	Position() Pos
}

// ImportDecl is an `import ... from "source"` declaration
type ImportDecl struct {
	Source           string
	Specifiers       []Specifier
	ImportKind       ImportKind
	LeadingComments  []Comment
	InnerComments    []Comment
	TrailingComments []Comment
	Pos              Pos

	// Extra holds encoded fields the engine does not interpret (loc, attributes, ...)
	Extra map[string][]byte
}

// Opaque is any statement that is not an import declaration. The engine never looks inside it.
type Opaque struct {
	Type             string
	TrailingComments []Comment
	Pos              Pos
	Raw              []byte
}

// Separator is a blank-line hint for the printer
type Separator struct{}

func (*ImportDecl) isStmt() {}
func (*Opaque) isStmt()     {}
func (*Separator) isStmt()  {}

func (d *ImportDecl) Position() Pos { return d.Pos }
func (o *Opaque) Position() Pos     { return o.Pos }
func (*Separator) Position() Pos    { return Pos{} }

// IsTypeOnly reports whether the whole declaration is `import type`
func (d *ImportDecl) IsTypeOnly() bool {
	return d.ImportKind == KindType
}

// HasDefault reports whether the declaration binds a default import
func (d *ImportDecl) HasDefault() bool {
	for _, s := range d.Specifiers {
		if _, ok := s.(*DefaultSpecifier); ok {
			return true
		}
	}
	return false
}

// HasNamespace reports whether the declaration binds `* as name`
func (d *ImportDecl) HasNamespace() bool {
	for _, s := range d.Specifiers {
		if _, ok := s.(*NamespaceSpecifier); ok {
			return true
		}
	}
	return false
}

// TrailingOf returns the trailing comments of any statement kind
func TrailingOf(s Stmt) []Comment {
	switch n := s.(type) {
	case *ImportDecl:
		return n.TrailingComments
	case *Opaque:
		return n.TrailingComments
	}
	return nil
}
