package ast

// Specifier is one imported binding.
// Implementations: *DefaultSpecifier, *NamespaceSpecifier, *NamedSpecifier.
type Specifier interface {
	isSpecifier()
	LocalName() string
}

// DefaultSpecifier is `import Local from "x"`
type DefaultSpecifier struct {
	Local string
	Extra map[string][]byte
}

// NamespaceSpecifier is `import * as Local from "x"`
type NamespaceSpecifier struct {
	Local string
	Extra map[string][]byte
}

// NamedSpecifier is `import { Imported as Local } from "x"`, optionally `type`-marked
type NamedSpecifier struct {
	Imported   string
	Local      string
	ImportKind ImportKind // empty when the parser did not set it
	Extra      map[string][]byte
}

func (*DefaultSpecifier) isSpecifier()   {}
func (*NamespaceSpecifier) isSpecifier() {}
func (*NamedSpecifier) isSpecifier()     {}

func (s *DefaultSpecifier) LocalName() string   { return s.Local }
func (s *NamespaceSpecifier) LocalName() string { return s.Local }

func (s *NamedSpecifier) LocalName() string {
	if s.Local == "" {
		return s.Imported
	}
	return s.Local
}

// IsTypeOnly reports whether the specifier carries an inline `type` marker
func (s *NamedSpecifier) IsTypeOnly() bool {
	return s.ImportKind == KindType
}
