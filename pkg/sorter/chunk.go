package sorter

import "github.com/siyuan-infoblox/impsort/pkg/ast"

// ChunkType tags a run of statements
type ChunkType int

const (
	ChunkSortable ChunkType = iota
	ChunkUnsortable
)

func (c ChunkType) String() string {
	if c == ChunkSortable {
		return "sortable"
	}
	return "unsortable"
}

// Chunk is a maximal run of statements handled as one unit
type Chunk struct {
	Type  ChunkType
	Nodes []ast.Stmt
}

// Decls returns the import declarations of a sortable chunk
func (c Chunk) Decls() []*ast.ImportDecl {
	decls := make([]*ast.ImportDecl, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		if d, ok := n.(*ast.ImportDecl); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

// Partition splits a statement list into sortable and unsortable chunks.
// Only the node kind and the ignore directive decide a boundary.
func Partition(stmts []ast.Stmt) []Chunk {
	var chunks []Chunk
	for i, stmt := range stmts {
		var prev ast.Stmt
		if i > 0 {
			prev = stmts[i-1]
		}

		typ := ChunkUnsortable
		if decl, ok := stmt.(*ast.ImportDecl); ok && Classify(decl, prev) != FlavorIgnore {
			typ = ChunkSortable
		}

		if n := len(chunks); n > 0 && chunks[n-1].Type == typ {
			chunks[n-1].Nodes = append(chunks[n-1].Nodes, stmt)
			continue
		}
		chunks = append(chunks, Chunk{Type: typ, Nodes: []ast.Stmt{stmt}})
	}
	return chunks
}
