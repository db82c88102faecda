package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/siyuan-infoblox/impsort/pkg/errors"
	"github.com/siyuan-infoblox/impsort/pkg/sorter"
	"github.com/siyuan-infoblox/impsort/pkg/utils"
)

// listSeparators split list values that come from the environment. Import
// order patterns may contain commas, so they are one per line.
var listSeparators = map[string]string{
	"import_order":                "\n",
	"import_order_parser_plugins": ",",
}

// defaults mirrors sorter.DefaultOptions for the koanf layer
func defaults() map[string]interface{} {
	opts := sorter.DefaultOptions()
	return map[string]interface{}{
		"import_order":                                 opts.ImportOrder,
		"import_order_case_insensitive":                opts.CaseInsensitive,
		"import_order_parser_plugins":                  opts.ParserPlugins,
		"import_order_separation":                      opts.Separation,
		"import_order_group_namespace_specifiers":      opts.GroupNamespaceSpecifiers,
		"import_order_sort_specifiers":                 opts.SortSpecifiers,
		"import_order_builtin_modules_to_top":          opts.BuiltinModulesToTop,
		"import_order_merge_duplicate_imports":         opts.MergeDuplicateImports,
		"import_order_merge_type_imports_into_regular": opts.MergeTypeImportsIntoRegular,
		"import_order_unmatched_position":              string(opts.UnmatchedPosition),
		"in_place":                                     false,
		"check":                                        false,
		"jobs":                                         0,
		"cache":                                        false,
		"cache_file":                                   DefaultCacheFile,
		"verbose":                                      false,
	}
}

// Load reads the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// When cfgFile is empty the config file is searched upward from start.
func Load(cfgFile, start string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadDefaults, err)
	}

	// 2. Config file
	if cfgFile == "" && start != "" {
		cfgFile = utils.FindConfigFile(start, ConfigFileNames)
	}
	if cfgFile != "" {
		if err := loadFile(k, cfgFile); err != nil {
			return nil, fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToReadConfig, cfgFile, err)
		}
	}

	// 3. Environment: IMPSORT_IMPORT_ORDER_SEPARATION -> import_order_separation
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if sep, ok := listSeparators[key]; ok {
			return key, splitList(value, sep)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadEnv, err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if f.Value.Type() == "stringArray" {
				values, err := flags.GetStringArray(f.Name)
				if err != nil {
					return "", nil
				}
				return key, values
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadFlags, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToDecodeConfig, err)
	}
	cfg.ConfigFile = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile picks the parser from the file extension
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var raw map[string]interface{}
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return err
		}
		return k.Load(confmap.Provider(raw, "."), nil)
	default:
		return k.Load(file.Provider(path), yaml.Parser())
	}
}

func splitList(value, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
