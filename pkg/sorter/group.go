package sorter

import (
	"fmt"
	"slices"

	"github.com/dlclark/regexp2"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
	"github.com/siyuan-infoblox/impsort/pkg/builtins"
)

// relativeProbes decide whether a pattern targets local files
var relativeProbes = []string{"./x", "../x"}

// matcher is one entry of the resolved import order
type matcher struct {
	key string
	re  *regexp2.Regexp // nil for placeholders
}

// Group is an ordered bucket of declarations
type Group struct {
	Key   string
	Decls []*ast.ImportDecl
}

// ImportGroups holds every group in output order, empty ones included
type ImportGroups []Group

// Sorter groups and orders the declarations of sortable chunks
type Sorter struct {
	opts       Options
	matchers   []matcher
	unmatched  int
	builtinIdx int // -1 when builtins are not grouped
}

// New compiles the import order of opts. Patterns are JavaScript regular
// expressions and are tested against the module source.
func New(opts Options) (*Sorter, error) {
	if opts.UnmatchedPosition == "" {
		opts.UnmatchedPosition = UnmatchedAuto
	}

	var matchers []matcher
	for _, pattern := range opts.ImportOrder {
		if pattern == ThirdPartyModules || pattern == BuiltinModules {
			if opts.BuiltinModulesToTop && pattern == BuiltinModules {
				continue
			}
			matchers = append(matchers, matcher{key: pattern})
			continue
		}
		re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
		if err != nil {
			return nil, fmt.Errorf("invalid import order pattern %q: %w", pattern, err)
		}
		matchers = append(matchers, matcher{key: pattern, re: re})
	}

	if !slices.ContainsFunc(matchers, func(m matcher) bool { return m.key == ThirdPartyModules }) {
		pos := unmatchedInsertPosition(matchers, opts.UnmatchedPosition)
		matchers = slices.Insert(matchers, pos, matcher{key: ThirdPartyModules})
	}
	if opts.BuiltinModulesToTop {
		matchers = slices.Insert(matchers, 0, matcher{key: BuiltinModules})
	}

	s := &Sorter{opts: opts, matchers: matchers, unmatched: -1, builtinIdx: -1}
	for i, m := range matchers {
		switch {
		case m.key == ThirdPartyModules && m.re == nil && s.unmatched < 0:
			s.unmatched = i
		case m.key == BuiltinModules && m.re == nil && s.builtinIdx < 0:
			s.builtinIdx = i
		}
	}
	return s, nil
}

// Options returns the options the sorter was built with
func (s *Sorter) Options() Options {
	return s.opts
}

// Keys returns the group keys in output order
func (s *Sorter) Keys() []string {
	keys := make([]string, len(s.matchers))
	for i, m := range s.matchers {
		keys[i] = m.key
	}
	return keys
}

func unmatchedInsertPosition(matchers []matcher, pos UnmatchedPosition) int {
	switch pos {
	case UnmatchedFirst:
		return 0
	case UnmatchedLast:
		return len(matchers)
	}
	for i, m := range matchers {
		if m.re == nil {
			continue
		}
		for _, probe := range relativeProbes {
			if matches(m.re, probe) {
				return i
			}
		}
	}
	return len(matchers)
}

func matches(re *regexp2.Regexp, source string) bool {
	ok, err := re.MatchString(source)
	return err == nil && ok
}

// groupIndex returns the index of the group decl belongs to
func (s *Sorter) groupIndex(decl *ast.ImportDecl) int {
	if s.builtinIdx >= 0 && builtins.IsBuiltinModule(decl.Source) {
		return s.builtinIdx
	}
	for i, m := range s.matchers {
		if m.re != nil && matches(m.re, decl.Source) {
			return i
		}
	}
	return s.unmatched
}

// Group assigns every declaration to exactly one group
func (s *Sorter) Group(decls []*ast.ImportDecl) ImportGroups {
	groups := make(ImportGroups, len(s.matchers))
	for i, m := range s.matchers {
		groups[i].Key = m.key
	}
	for _, d := range decls {
		i := s.groupIndex(d)
		groups[i].Decls = append(groups[i].Decls, d)
	}
	return groups
}
