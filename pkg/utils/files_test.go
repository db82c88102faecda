package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected bool
	}{
		{
			name:     "syntax tree file",
			filename: "index.ast.json",
			expected: true,
		},
		{
			name:     "syntax tree file with path",
			filename: "src/components/button.ast.json",
			expected: true,
		},
		{
			name:     "test file syntax tree",
			filename: "button.test.ast.json",
			expected: true,
		},
		{
			name:     "plain json file",
			filename: "package.json",
			expected: false,
		},
		{
			name:     "source file",
			filename: "index.ts",
			expected: false,
		},
		{
			name:     "suffix in the middle",
			filename: "file.ast.json.bak",
			expected: false,
		},
		{
			name:     "empty string",
			filename: "",
			expected: false,
		},
		{
			name:     "just the suffix",
			filename: ".ast.json",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := IsSourceFile(tt.filename)
			req.Equal(tt.expected, result, "IsSourceFile(%q) = %v, want %v", tt.filename, result, tt.expected)
		})
	}
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory for testing
	tempDir := t.TempDir()

	// Create a temporary file
	tempFile := filepath.Join(tempDir, "test.txt")
	err := os.WriteFile(tempFile, []byte("test"), 0644)
	req.NoError(err, "Failed to create temp file: %v", err)

	tests := []struct {
		name      string
		path      string
		expected  bool
		expectErr bool
	}{
		{
			name:      "existing directory",
			path:      tempDir,
			expected:  true,
			expectErr: false,
		},
		{
			name:      "existing file",
			path:      tempFile,
			expected:  false,
			expectErr: false,
		},
		{
			name:      "non-existent path",
			path:      "/non/existent/path",
			expected:  false,
			expectErr: true,
		},
		{
			name:      "current directory",
			path:      ".",
			expected:  true,
			expectErr: false,
		},
		{
			name:      "parent directory",
			path:      "..",
			expected:  true,
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := IsDirectory(tt.path)

			if tt.expectErr {
				req.Error(err, "IsDirectory(%q) expected error, got nil", tt.path)
			} else {
				req.NoError(err, "IsDirectory(%q) unexpected error: %v", tt.path, err)
				req.Equal(tt.expected, result, "IsDirectory(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFindSourceFiles(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	dirs := []string{
		"src/components",
		"src/utils",
		"node_modules/react",
		".git",
		".cache",
	}

	for _, dir := range dirs {
		err := os.MkdirAll(filepath.Join(tempDir, dir), 0755)
		req.NoError(err, "Failed to create directory %s: %v", dir, err)
	}

	files := map[string]string{
		"index.ast.json":                    "{}",
		"src/components/button.ast.json":    "{}",
		"src/utils/format.ast.json":         "{}",
		"src/utils/format.test.ast.json":    "{}",
		"node_modules/react/index.ast.json": "{}", // Should be excluded (dependency dir)
		".cache/stale.ast.json":             "{}", // Should be excluded (hidden dir)
		".git/config":                       "config",
		"package.json":                      "{}", // Should be excluded (not a syntax tree)
		"src/utils/format.ts":               "export {}",
	}

	for filePath, content := range files {
		fullPath := filepath.Join(tempDir, filePath)
		err := os.WriteFile(fullPath, []byte(content), 0644)
		req.NoError(err, "Failed to create file %s: %v", filePath, err)
	}

	err := os.Mkdir(filepath.Join(tempDir, "empty"), 0755)
	req.NoError(err, "Failed to create empty directory: %v", err)

	t.Run("find syntax tree files", func(t *testing.T) {
		req := require.New(t)
		result, err := FindSourceFiles(tempDir)
		req.NoError(err)
		req.ElementsMatch([]string{
			filepath.Join(tempDir, "index.ast.json"),
			filepath.Join(tempDir, "src/components/button.ast.json"),
			filepath.Join(tempDir, "src/utils/format.ast.json"),
			filepath.Join(tempDir, "src/utils/format.test.ast.json"),
		}, result)
	})

	t.Run("non-existent directory", func(t *testing.T) {
		req := require.New(t)
		_, err := FindSourceFiles("/non/existent/path")
		req.Error(err)
	})

	t.Run("empty directory", func(t *testing.T) {
		req := require.New(t)
		result, err := FindSourceFiles(filepath.Join(tempDir, "empty"))
		req.NoError(err)
		req.Empty(result)
	})
}
