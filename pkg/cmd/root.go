package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/impsort/pkg/cache"
	"github.com/siyuan-infoblox/impsort/pkg/config"
	"github.com/siyuan-infoblox/impsort/pkg/errors"
	"github.com/siyuan-infoblox/impsort/pkg/formatter"
	"github.com/siyuan-infoblox/impsort/pkg/version"
)

const (
	UseDescription   = "impsort [flags] PATH"
	ShortDescription = "Import sorter - sorts the import declarations of JavaScript/TypeScript syntax trees"
	LongDescription  = `impsort sorts the top-level import declarations of JavaScript and TypeScript
modules that were parsed into Babel-compatible JSON syntax trees (*.ast.json).

Imports are grouped by an ordered list of regular expressions (--import-order),
sorted by module path within each group and optionally merged, separated by
blank lines and sorted by specifier. Imports that no pattern matches go to the
<THIRD_PARTY_MODULES> group; Node builtins can be hoisted with
--import-order-builtin-modules-to-top.

Settings are read from .impsortrc.yaml, .impsortrc.yml or .impsortrc.toml (searched
upward from PATH), then IMPSORT_* environment variables, then flags.

PATH can be either a single syntax tree file or a directory. When a directory is
specified, all *.ast.json files in the directory and subdirectories will be
processed recursively (node_modules and hidden directories are skipped).`
)

type rootOptions struct {
	cfgFile     string
	watch       bool
	report      bool
	printConfig bool
	showVersion bool
	versionStr  string
}

// NewRootCmd builds the impsort command
func NewRootCmd(versionStr string) *cobra.Command {
	opts := &rootOptions{versionStr: versionStr}

	rootCmd := &cobra.Command{
		Use:          UseDescription,
		Short:        ShortDescription,
		Long:         LongDescription,
		Args:         opts.validateArgs,
		RunE:         opts.run,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "Config file (default: nearest .impsortrc.yaml, .impsortrc.yml or .impsortrc.toml)")
	flags.StringArray("import-order", nil, "Regular expression of one import group; repeat the flag for each group, in output order")
	flags.Bool("import-order-case-insensitive", false, "Compare module paths and specifier names case-insensitively")
	flags.StringArray("import-order-parser-plugins", nil, "Parser plugin the syntax trees were produced with; repeat the flag for each plugin (default: typescript, jsx)")
	flags.Bool("import-order-separation", false, "Separate import groups with a blank line")
	flags.Bool("import-order-group-namespace-specifiers", false, "Place namespace specifiers before the other specifiers")
	flags.Bool("import-order-sort-specifiers", false, "Sort the specifiers of each import")
	flags.Bool("import-order-builtin-modules-to-top", false, "Place Node builtin modules before every other group")
	flags.Bool("import-order-merge-duplicate-imports", false, "Merge imports of the same module")
	flags.Bool("import-order-merge-type-imports-into-regular", false, "Merge type-only imports into value imports of the same module")
	flags.String("import-order-unmatched-position", "", "Where unmatched imports go when <THIRD_PARTY_MODULES> is not listed (auto|first|last)")
	flags.Bool("in-place", false, "Modify the file in place instead of printing to stdout")
	flags.Bool("check", false, "Exit with an error when a file has unsorted imports, without modifying it")
	flags.IntP("jobs", "j", 0, "Number of files processed at once (default: number of CPUs)")
	flags.Bool("cache", false, "Skip files that are unchanged since they were last sorted")
	flags.String("cache-file", config.DefaultCacheFile, "Location of the cache file")
	flags.Bool("verbose", false, "Log every processed file to stderr")
	flags.BoolVar(&opts.watch, "watch", false, "Keep running and sort files again when they change")
	flags.BoolVar(&opts.report, "report", false, "Print a per-file summary table")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and exit")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	_ = rootCmd.RegisterFlagCompletionFunc("import-order-unmatched-position", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "first", "last"}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

func (o *rootOptions) validateArgs(cmd *cobra.Command, args []string) error {
	// If version or print-config is set, we don't need file arguments
	if o.showVersion || o.printConfig {
		return cobra.MaximumNArgs(1)(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if o.showVersion {
		info := version.Get(o.versionStr)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Load(o.cfgFile, path, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.ConfigFile != "" {
		logger.Debug("using config file", slog.String("path", cfg.ConfigFile))
	}

	if o.printConfig {
		data, err := cfg.Dump()
		if err != nil {
			return err
		}
		_, _ = cmd.OutOrStdout().Write(data)
		return nil
	}

	sortOptions := cfg.Options()
	var c *cache.Cache
	if cfg.Cache {
		c, err = cache.Load(cfg.CacheFile, sortOptions.Fingerprint())
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadCache, err)
		}
	}

	g, err := formatter.New(formatter.FormatterConfig{
		FilePath: path, // This will be updated for each file when processing directories
		Options:  sortOptions,
		InPlace:  cfg.InPlace,
		Check:    cfg.Check,
		Jobs:     cfg.Workers(),
		Cache:    c,
		Report:   o.report,
		Logger:   logger,
		Out:      cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if o.watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return g.Watch(ctx, path)
	}
	return g.ProcessPath(cmd.Context(), path)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Execute(versionStr string) error {
	return NewRootCmd(versionStr).ExecuteContext(context.Background())
}
