package formatter

import "github.com/siyuan-infoblox/impsort/pkg/ast"

// Result represents the outcome of sorting a single file
type Result struct {
	Path    string
	Before  int  // import declarations read
	After   int  // import declarations written
	Merged  int  // declarations folded into another one
	Changed bool // the sorted tree differs from the input
	Skipped bool // unchanged since the last cached run
	Err     error
	Body    []ast.Stmt // sorted top-level statements, nil when skipped
}

// Status is a short label for reports
func (r *Result) Status() string {
	switch {
	case r.Err != nil:
		return "error"
	case r.Skipped:
		return "cached"
	case r.Changed:
		return "sorted"
	default:
		return "ok"
	}
}
