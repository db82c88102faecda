package sorter

import "github.com/siyuan-infoblox/impsort/pkg/ast"

// Reassemble replaces each sortable chunk with its merged and sorted
// declarations. Unsortable chunks are copied through unchanged.
func (s *Sorter) Reassemble(chunks []Chunk) []ast.Stmt {
	var out []ast.Stmt
	for i, chunk := range chunks {
		if chunk.Type == ChunkUnsortable {
			out = append(out, chunk.Nodes...)
			continue
		}

		merged := Merge(chunk.Decls(), s.opts)
		out = append(out, s.Sort(merged)...)
		if s.opts.Separation && i < len(chunks)-1 {
			out = append(out, &ast.Separator{})
		}
	}
	return out
}

// Process runs the whole pipeline over the top-level statements of one file.
// Separator hints left by an earlier pass are dropped first.
func (s *Sorter) Process(stmts []ast.Stmt) []ast.Stmt {
	clean := make([]ast.Stmt, 0, len(stmts))
	hasImports := false
	for _, stmt := range stmts {
		switch stmt.(type) {
		case *ast.Separator:
			continue
		case *ast.ImportDecl:
			hasImports = true
		}
		clean = append(clean, stmt)
	}
	if !hasImports {
		return clean
	}
	return s.Reassemble(Partition(clean))
}
