package sorter

import "fmt"

const (
	// ThirdPartyModules is the placeholder for imports no pattern matches
	ThirdPartyModules = "<THIRD_PARTY_MODULES>"
	// BuiltinModules is the placeholder for platform builtin modules
	BuiltinModules = "<BUILTIN_MODULES>"
)

// UnmatchedPosition decides where the unmatched-imports group goes when
// ImportOrder does not name ThirdPartyModules explicitly
type UnmatchedPosition string

const (
	// UnmatchedAuto places the group right before the first pattern that
	// accepts a relative path, or last when there is none
	UnmatchedAuto  UnmatchedPosition = "auto"
	UnmatchedFirst UnmatchedPosition = "first"
	UnmatchedLast  UnmatchedPosition = "last"
)

// DefaultParserPlugins are forwarded to the host parser when none are configured
var DefaultParserPlugins = []string{"typescript", "jsx"}

// Options is the per-file option bundle. It is never mutated by the engine.
type Options struct {
	ImportOrder                 []string
	CaseInsensitive             bool
	ParserPlugins               []string // consumed by the host parser, not by the engine
	Separation                  bool
	GroupNamespaceSpecifiers    bool
	SortSpecifiers              bool
	BuiltinModulesToTop         bool
	MergeDuplicateImports       bool
	MergeTypeImportsIntoRegular bool
	UnmatchedPosition           UnmatchedPosition
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		ImportOrder:       []string{},
		ParserPlugins:     append([]string(nil), DefaultParserPlugins...),
		UnmatchedPosition: UnmatchedAuto,
	}
}

// Fingerprint is a stable textual form of the options that affect output
func (o Options) Fingerprint() string {
	return fmt.Sprintf("%q|%t|%t|%t|%t|%t|%t|%t|%s",
		o.ImportOrder, o.CaseInsensitive, o.Separation, o.GroupNamespaceSpecifiers,
		o.SortSpecifiers, o.BuiltinModulesToTop, o.MergeDuplicateImports,
		o.MergeTypeImportsIntoRegular, o.UnmatchedPosition)
}
