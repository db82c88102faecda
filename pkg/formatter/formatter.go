package formatter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/impsort/pkg/ast"
	"github.com/siyuan-infoblox/impsort/pkg/astjson"
	"github.com/siyuan-infoblox/impsort/pkg/cache"
	"github.com/siyuan-infoblox/impsort/pkg/errors"
	"github.com/siyuan-infoblox/impsort/pkg/render"
	"github.com/siyuan-infoblox/impsort/pkg/sorter"
	"github.com/siyuan-infoblox/impsort/pkg/utils"
)

type FormatterConfig struct {
	FilePath string         // path to the syntax tree file
	Options  sorter.Options // sorting options applied to every file
	InPlace  bool           // whether to modify the file in place
	Check    bool           // report unsorted files without writing them
	Jobs     int            // files processed at once, 0 means one
	Cache    *cache.Cache   // optional record of already sorted files
	Report   bool           // print a summary table after a batch
	Logger   *slog.Logger   // diagnostics; discarded when nil
	Out      io.Writer      // user-facing output; stdout when nil
}

var warnColor = color.New(color.FgYellow, color.Bold)

// formatter handles the import sorting of syntax tree files
type formatter struct {
	config FormatterConfig
	sorter *sorter.Sorter
}

// New creates a new formatter, compiling the configured import order once
func New(config FormatterConfig) (*formatter, error) {
	s, err := sorter.New(config.Options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgInvalidImportOrder, err)
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}
	return &formatter{config: config, sorter: s}, nil
}

func (g *formatter) getFilePath() string {
	return g.config.FilePath
}

func (g *formatter) getInPlace() bool {
	return g.config.InPlace
}

func (g *formatter) getCheck() bool {
	return g.config.Check
}

func (g *formatter) getJobs() int {
	if g.config.Jobs <= 0 {
		return 1
	}
	return g.config.Jobs
}

func (g *formatter) log() *slog.Logger {
	return g.config.Logger
}

func (g *formatter) out() io.Writer {
	return g.config.Out
}

func (g *formatter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out(), format, args...)
}

func (g *formatter) warnf(format string, args ...any) {
	_, _ = warnColor.Fprintf(g.out(), format, args...)
}

// Format sorts the imports of one serialized tree and returns the encoded result.
// Changed compares canonical encodings, so formatting-only input differences do not count.
func (g *formatter) Format(src []byte) (*Result, []byte, error) {
	doc, err := astjson.Decode(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToDecodeFile, err)
	}

	before, err := doc.Encode()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToEncodeFile, err)
	}
	res := &Result{Before: countImports(doc.Body)}

	doc.Body = g.sorter.Process(doc.Body)

	after, err := doc.Encode()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToEncodeFile, err)
	}
	res.After = countImports(doc.Body)
	res.Merged = res.Before - res.After
	res.Changed = !bytes.Equal(before, after)
	res.Body = doc.Body
	return res, after, nil
}

// processFile runs the pipeline on one file and writes it back when asked
func (g *formatter) processFile(path string) *Result {
	logger := g.log().With("file", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return &Result{Path: path, Err: fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)}
	}

	if g.config.Cache.Unchanged(path, src) {
		logger.Debug("skipping file sorted by an earlier run")
		return &Result{Path: path, Skipped: true}
	}

	res, output, err := g.Format(src)
	if err != nil {
		return &Result{Path: path, Err: err}
	}
	res.Path = path
	logger.Debug("sorted imports",
		slog.Int("before", res.Before),
		slog.Int("after", res.After),
		slog.Bool("changed", res.Changed))

	switch {
	case !res.Changed:
		g.config.Cache.Update(path, src)
	case g.getCheck():
		g.config.Cache.Forget(path)
	case g.getInPlace():
		if err := os.WriteFile(path, output, 0644); err != nil {
			res.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
			return res
		}
		g.config.Cache.Update(path, output)
	}
	return res
}

// ProcessFileWithOutput processes a syntax tree file with optional preview output
func (g *formatter) ProcessFileWithOutput(verbose bool) error {
	res := g.processFile(g.getFilePath())
	if res.Err != nil {
		return res.Err
	}

	if verbose && !g.getInPlace() && !g.getCheck() && !res.Skipped {
		g.printf("%s", render.Imports(res.Body))
	}
	if g.getCheck() && res.Changed {
		return fmt.Errorf("%s: %s", errors.ErrMsgFileWouldChange, res.Path)
	}
	return nil
}

// ProcessFile processes a syntax tree file and sorts its imports
func (g *formatter) ProcessFile() error {
	return g.ProcessFileWithOutput(true)
}

// ProcessFiles processes multiple syntax tree files concurrently. Output is
// printed in input order once every file is done.
func (g *formatter) ProcessFiles(ctx context.Context, filePaths []string) error {
	results, err := g.processAll(ctx, filePaths)
	if err != nil {
		return err
	}

	processedCount, skippedCount, errorCount, changedCount := 0, 0, 0, 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			g.printf(errors.InfoMsgErrorProcessing+"\n", res.Path, res.Err)
			errorCount++
		case res.Skipped:
			skippedCount++
		default:
			processedCount++
			if res.Changed {
				changedCount++
				if g.getInPlace() && !g.getCheck() {
					g.printf(errors.InfoMsgProcessedFiles+"\n", res.Path)
				} else {
					g.warnf(errors.InfoMsgWouldChange+"\n", res.Path)
				}
			}
		}
	}

	if g.config.Report {
		g.printf("\n")
		RenderReport(g.out(), results)
	}

	g.printf(errors.InfoMsgProcessedCount, processedCount)
	if skippedCount > 0 {
		g.printf(errors.InfoMsgSkippedCount, skippedCount)
	}
	if errorCount > 0 {
		g.printf(errors.InfoMsgErrorCount, errorCount)
	}
	g.printf("\n")

	if err := g.config.Cache.Save(); err != nil {
		g.log().Warn(errors.ErrMsgFailedToSaveCache, slog.Any("error", err))
	}

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	if g.getCheck() && changedCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesWouldChange, changedCount)
	}
	return nil
}

// processAll fans the files out over a bounded worker group
func (g *formatter) processAll(ctx context.Context, filePaths []string) ([]*Result, error) {
	results := make([]*Result, len(filePaths))
	if len(filePaths) == 0 {
		return results, nil
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(min(g.getJobs(), len(filePaths)))

	for i, path := range filePaths {
		eg.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// index i is unique per goroutine
			results[i] = g.processFile(path)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessPath processes a file or directory path
func (g *formatter) ProcessPath(ctx context.Context, path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		g.config.FilePath = path
		err := g.ProcessFile()
		if saveErr := g.config.Cache.Save(); saveErr != nil {
			g.log().Warn(errors.ErrMsgFailedToSaveCache, slog.Any("error", saveErr))
		}
		return err
	}

	// When processing directories, in-place mode is recommended
	if !g.getInPlace() && !g.getCheck() {
		g.warnf(errors.WarnMsgProcessingDirWithoutInPlace + "\n")
		g.printf(errors.InfoMsgUseInPlaceFlag + "\n\n")
	}

	files, err := utils.FindSourceFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
	}

	if len(files) == 0 {
		g.printf(errors.InfoMsgNoFilesFound+"\n", path)
		return nil
	}

	g.printf(errors.InfoMsgFoundFiles+"\n\n", len(files), path)
	return g.ProcessFiles(ctx, files)
}

func countImports(stmts []ast.Stmt) int {
	n := 0
	for _, stmt := range stmts {
		if _, ok := stmt.(*ast.ImportDecl); ok {
			n++
		}
	}
	return n
}
