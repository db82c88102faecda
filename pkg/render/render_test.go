package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
)

func TestDecl(t *testing.T) {
	tests := []struct {
		name string
		decl *ast.ImportDecl
		want string
	}{
		{
			name: "side effect",
			decl: &ast.ImportDecl{Source: "./polyfill"},
			want: `import "./polyfill"`,
		},
		{
			name: "default and named",
			decl: &ast.ImportDecl{Source: "react", Specifiers: []ast.Specifier{
				&ast.DefaultSpecifier{Local: "React"},
				&ast.NamedSpecifier{Imported: "useState", Local: "useState"},
				&ast.NamedSpecifier{Imported: "useEffect", Local: "effect"},
			}},
			want: `import React, { useState, useEffect as effect } from "react"`,
		},
		{
			name: "namespace",
			decl: &ast.ImportDecl{Source: "x", Specifiers: []ast.Specifier{&ast.NamespaceSpecifier{Local: "NS"}}},
			want: `import * as NS from "x"`,
		},
		{
			name: "type only",
			decl: &ast.ImportDecl{Source: "x", ImportKind: ast.KindType, Specifiers: []ast.Specifier{
				&ast.NamedSpecifier{Imported: "T", Local: "T"},
			}},
			want: `import type { T } from "x"`,
		},
		{
			name: "inline type specifier",
			decl: &ast.ImportDecl{Source: "x", ImportKind: ast.KindValue, Specifiers: []ast.Specifier{
				&ast.NamedSpecifier{Imported: "a", Local: "a"},
				&ast.NamedSpecifier{Imported: "T", Local: "T", ImportKind: ast.KindType},
			}},
			want: `import { a, type T } from "x"`,
		},
		{
			name: "string literal imported name",
			decl: &ast.ImportDecl{Source: "x", ImportKind: ast.KindValue, Specifiers: []ast.Specifier{
				&ast.NamedSpecifier{Imported: "a-b", Local: "c"},
				&ast.NamedSpecifier{Imported: "$ok_1", Local: "$ok_1"},
				&ast.NamedSpecifier{Imported: "1st", Local: "first"},
			}},
			want: `import { "a-b" as c, $ok_1, "1st" as first } from "x"`,
		},
		{
			name: "flow typeof import",
			decl: &ast.ImportDecl{Source: "a", ImportKind: ast.KindTypeof, Specifiers: []ast.Specifier{
				&ast.DefaultSpecifier{Local: "T"},
			}},
			want: `import typeof T from "a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, Decl(tt.decl))
		})
	}
}

func TestImports(t *testing.T) {
	req := require.New(t)
	stmts := []ast.Stmt{
		&ast.ImportDecl{
			Source:           "a",
			LeadingComments:  []ast.Comment{{Kind: ast.CommentLine, Value: " first"}},
			TrailingComments: []ast.Comment{{Kind: ast.CommentBlock, Value: " tail "}},
		},
		&ast.Separator{},
		&ast.ImportDecl{Source: "./b"},
		&ast.Opaque{Type: "VariableDeclaration"},
	}

	want := "// first\n" +
		"import \"a\" /* tail */\n" +
		"\n" +
		"import \"./b\"\n" +
		"/* VariableDeclaration */\n"
	req.Equal(want, Imports(stmts))
}
