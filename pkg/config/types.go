// Package config loads impsort settings from defaults, config files,
// environment variables and command-line flags.
package config

import (
	"fmt"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/impsort/pkg/errors"
	"github.com/siyuan-infoblox/impsort/pkg/sorter"
)

// Config holds the sorting options and the CLI settings
type Config struct {
	ImportOrder                            []string `koanf:"import_order" yaml:"import_order"`
	ImportOrderCaseInsensitive             bool     `koanf:"import_order_case_insensitive" yaml:"import_order_case_insensitive"`
	ImportOrderParserPlugins               []string `koanf:"import_order_parser_plugins" yaml:"import_order_parser_plugins"`
	ImportOrderSeparation                  bool     `koanf:"import_order_separation" yaml:"import_order_separation"`
	ImportOrderGroupNamespaceSpecifiers    bool     `koanf:"import_order_group_namespace_specifiers" yaml:"import_order_group_namespace_specifiers"`
	ImportOrderSortSpecifiers              bool     `koanf:"import_order_sort_specifiers" yaml:"import_order_sort_specifiers"`
	ImportOrderBuiltinModulesToTop         bool     `koanf:"import_order_builtin_modules_to_top" yaml:"import_order_builtin_modules_to_top"`
	ImportOrderMergeDuplicateImports       bool     `koanf:"import_order_merge_duplicate_imports" yaml:"import_order_merge_duplicate_imports"`
	ImportOrderMergeTypeImportsIntoRegular bool     `koanf:"import_order_merge_type_imports_into_regular" yaml:"import_order_merge_type_imports_into_regular"`
	ImportOrderUnmatchedPosition           string   `koanf:"import_order_unmatched_position" yaml:"import_order_unmatched_position"`

	InPlace   bool   `koanf:"in_place" yaml:"in_place"`
	Check     bool   `koanf:"check" yaml:"check"`
	Jobs      int    `koanf:"jobs" yaml:"jobs"`
	Cache     bool   `koanf:"cache" yaml:"cache"`
	CacheFile string `koanf:"cache_file" yaml:"cache_file"`
	Verbose   bool   `koanf:"verbose" yaml:"verbose"`

	// ConfigFile is the file the settings were read from, if any
	ConfigFile string `koanf:"-" yaml:"-"`
}

// Defaults for settings without a sorter counterpart
const (
	DefaultCacheFile = ".impsort-cache"
	EnvPrefix        = "IMPSORT_"
)

// ConfigFileNames are searched for, in order, in the target directory and its parents
var ConfigFileNames = []string{".impsortrc.yaml", ".impsortrc.yml", ".impsortrc.toml"}

// Options converts the sorting settings into the engine's option bundle
func (c *Config) Options() sorter.Options {
	opts := sorter.DefaultOptions()
	opts.ImportOrder = append([]string{}, c.ImportOrder...)
	opts.CaseInsensitive = c.ImportOrderCaseInsensitive
	if len(c.ImportOrderParserPlugins) > 0 {
		opts.ParserPlugins = append([]string(nil), c.ImportOrderParserPlugins...)
	}
	opts.Separation = c.ImportOrderSeparation
	opts.GroupNamespaceSpecifiers = c.ImportOrderGroupNamespaceSpecifiers
	opts.SortSpecifiers = c.ImportOrderSortSpecifiers
	opts.BuiltinModulesToTop = c.ImportOrderBuiltinModulesToTop
	opts.MergeDuplicateImports = c.ImportOrderMergeDuplicateImports
	opts.MergeTypeImportsIntoRegular = c.ImportOrderMergeTypeImportsIntoRegular
	if c.ImportOrderUnmatchedPosition != "" {
		opts.UnmatchedPosition = sorter.UnmatchedPosition(c.ImportOrderUnmatchedPosition)
	}
	return opts
}

// Validate checks values the engine cannot coerce itself
func (c *Config) Validate() error {
	switch sorter.UnmatchedPosition(c.ImportOrderUnmatchedPosition) {
	case "", sorter.UnmatchedAuto, sorter.UnmatchedFirst, sorter.UnmatchedLast:
	default:
		return fmt.Errorf(errors.ErrMsgInvalidUnmatchedPos, c.ImportOrderUnmatchedPosition)
	}
	if c.Jobs < 0 {
		return fmt.Errorf(errors.ErrMsgInvalidJobs, c.Jobs)
	}
	if _, err := sorter.New(c.Options()); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgInvalidImportOrder, err)
	}
	return nil
}

// Workers returns the number of files to process at once
func (c *Config) Workers() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}

// Dump renders the effective configuration as YAML
func (c *Config) Dump() ([]byte, error) {
	return yaml.Marshal(c)
}
