package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceFileSuffix marks a serialized syntax tree produced by the host parser
const SourceFileSuffix = ".ast.json"

// IsSourceFile checks if a file is a serialized syntax tree
func IsSourceFile(filename string) bool {
	return strings.HasSuffix(filename, SourceFileSuffix)
}

// FindSourceFiles recursively finds all syntax tree files in a directory
func FindSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency directories and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			if SkipDir(filepath.Base(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsSourceFile(filepath.Base(path)) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// SkipDir reports whether a directory is never searched for syntax tree files
func SkipDir(name string) bool {
	return name == "node_modules" || strings.HasPrefix(name, ".")
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
