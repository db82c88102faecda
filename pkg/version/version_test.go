package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	req := require.New(t)
	color.NoColor = true

	oldVersion, oldCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })

	// Test: ldflags win over everything
	Version, GitCommit = "v1.2.0", "abcdef0123456789"
	info := Get("v0.0.1")
	req.Equal("v1.2.0", info.Version)
	req.Equal("abcdef0123456789", info.GitCommit)
	req.Equal("impsort v1.2.0 (abcdef0)", info.Short())
	req.Contains(info.String(), "Go version: ")
	req.Contains(info.String(), "Platform: ")
}

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"ldflags", []string{"v1.0.0", "v0.9.0", "v0.8.0"}, "v1.0.0"},
		{"build info", []string{"dev", "v0.9.0", "v0.8.0"}, "v0.9.0"},
		{"caller", []string{"dev", "(devel)", "v0.8.0"}, "v0.8.0"},
		{"nothing known", []string{"dev", "", "(devel)"}, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, resolveVersion(tt.candidates...))
		})
	}
}
