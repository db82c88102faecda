package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/impsort/pkg/sorter"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("impsort", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringArray("import-order", nil, "")
	fs.StringArray("import-order-parser-plugins", nil, "")
	fs.Bool("import-order-separation", false, "")
	fs.Bool("import-order-sort-specifiers", false, "")
	fs.String("import-order-unmatched-position", "", "")
	fs.Int("jobs", 0, "")
	fs.Bool("in-place", false, "")
	return fs
}

func TestLoad_defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load("", t.TempDir(), nil)
	req.NoError(err)
	req.Empty(cfg.ConfigFile)
	req.Empty(cfg.ImportOrder)
	req.Equal(DefaultCacheFile, cfg.CacheFile)
	req.Equal(string(sorter.UnmatchedAuto), cfg.ImportOrderUnmatchedPosition)
	req.Equal(sorter.DefaultOptions(), cfg.Options())
	req.Positive(cfg.Workers())
}

func TestLoad_yamlDiscovery(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".impsortrc.yaml"), `
import_order:
  - "^@core/(.*)$"
  - "^[./]"
import_order_separation: true
import_order_sort_specifiers: true
jobs: 3
`)
	sub := filepath.Join(dir, "src")
	req.NoError(os.Mkdir(sub, 0755))

	cfg, err := Load("", sub, nil)
	req.NoError(err)
	req.Equal(filepath.Join(dir, ".impsortrc.yaml"), cfg.ConfigFile)
	req.Equal([]string{"^@core/(.*)$", "^[./]"}, cfg.ImportOrder)
	req.True(cfg.ImportOrderSeparation)
	req.True(cfg.ImportOrderSortSpecifiers)
	req.Equal(3, cfg.Workers())

	opts := cfg.Options()
	req.True(opts.Separation)
	req.Equal(sorter.DefaultParserPlugins, opts.ParserPlugins)
}

func TestLoad_toml(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".impsortrc.toml")
	writeFile(t, path, `
import_order = ["^react$", "<THIRD_PARTY_MODULES>", "^[./]"]
import_order_case_insensitive = true
import_order_unmatched_position = "last"
`)

	cfg, err := Load(path, "", nil)
	req.NoError(err)
	req.Equal(path, cfg.ConfigFile)
	req.Equal([]string{"^react$", sorter.ThirdPartyModules, "^[./]"}, cfg.ImportOrder)
	req.True(cfg.ImportOrderCaseInsensitive)
	req.Equal(sorter.UnmatchedLast, cfg.Options().UnmatchedPosition)
}

func TestLoad_precedence(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".impsortrc.yml"), `
import_order: ["^file$"]
import_order_separation: false
jobs: 2
`)
	t.Setenv("IMPSORT_IMPORT_ORDER", "^env$\n ^[./]\n")
	t.Setenv("IMPSORT_IMPORT_ORDER_SEPARATION", "true")
	t.Setenv("IMPSORT_JOBS", "4")

	// Test: env overrides the file
	cfg, err := Load("", dir, testFlags())
	req.NoError(err)
	req.Equal([]string{"^env$", "^[./]"}, cfg.ImportOrder)
	req.True(cfg.ImportOrderSeparation)
	req.Equal(4, cfg.Jobs)

	// Test: explicitly set flags override env
	fs := testFlags()
	req.NoError(fs.Parse([]string{"--import-order", "^flag$", "--jobs", "1", "--in-place"}))
	cfg, err = Load("", dir, fs)
	req.NoError(err)
	req.Equal([]string{"^flag$"}, cfg.ImportOrder)
	req.True(cfg.ImportOrderSeparation)
	req.Equal(1, cfg.Jobs)
	req.True(cfg.InPlace)
}

func TestLoad_listsWithCommas(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		req := require.New(t)
		fs := testFlags()
		req.NoError(fs.Parse([]string{
			"--import-order", "^@(a|b){1,2}/",
			"--import-order", "^[./]",
			"--import-order-parser-plugins", "flow",
		}))
		cfg, err := Load("", t.TempDir(), fs)
		req.NoError(err)
		req.Equal([]string{"^@(a|b){1,2}/", "^[./]"}, cfg.ImportOrder)
		req.Equal([]string{"flow"}, cfg.ImportOrderParserPlugins)
	})

	t.Run("env", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("IMPSORT_IMPORT_ORDER", "^x{1,2}$")
		t.Setenv("IMPSORT_IMPORT_ORDER_PARSER_PLUGINS", "typescript, jsx")
		cfg, err := Load("", t.TempDir(), nil)
		req.NoError(err)
		req.Equal([]string{"^x{1,2}$"}, cfg.ImportOrder)
		req.Equal([]string{"typescript", "jsx"}, cfg.ImportOrderParserPlugins)
	})
}

func TestLoad_errors(t *testing.T) {
	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	writeFile(t, badYAML, "import_order: [\n")
	badPattern := filepath.Join(dir, "pattern.yaml")
	writeFile(t, badPattern, "import_order: [\"(unclosed\"]\n")
	badPosition := filepath.Join(dir, "position.toml")
	writeFile(t, badPosition, "import_order_unmatched_position = \"middle\"\n")

	tests := []struct {
		name      string
		cfgFile   string
		errSubstr string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), "error reading config file"},
		{"invalid yaml", badYAML, "error reading config file"},
		{"invalid pattern", badPattern, "invalid import order"},
		{"invalid position", badPosition, "middle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := Load(tt.cfgFile, "", nil)
			req.Error(err)
			req.Contains(err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Validate_jobs(t *testing.T) {
	req := require.New(t)
	cfg := &Config{Jobs: -1}
	err := cfg.Validate()
	req.Error(err)
	req.Contains(err.Error(), "-1")
}

func TestConfig_Dump(t *testing.T) {
	req := require.New(t)
	cfg := &Config{
		ImportOrder:           []string{"^[./]"},
		ImportOrderSeparation: true,
		CacheFile:             DefaultCacheFile,
		ConfigFile:            "/tmp/.impsortrc.yaml",
	}

	out, err := cfg.Dump()
	req.NoError(err)
	req.Contains(string(out), "import_order:\n")
	req.Contains(string(out), "^[./]")
	req.Contains(string(out), "import_order_separation: true\n")
	req.Contains(string(out), "cache_file: .impsort-cache\n")
	req.NotContains(string(out), "/tmp/.impsortrc.yaml")
}
