package formatter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/siyuan-infoblox/impsort/pkg/errors"
	"github.com/siyuan-infoblox/impsort/pkg/utils"
)

// watchDebounce collapses the burst of events an editor save produces
const watchDebounce = 100 * time.Millisecond

// Watch processes path once and then again whenever a syntax tree file
// under it is written. It returns when ctx is cancelled.
func (g *formatter) Watch(ctx context.Context, path string) error {
	if err := g.ProcessPath(ctx, path); err != nil {
		g.printf(errors.InfoMsgErrorProcessing+"\n", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToStartWatcher, err)
	}
	defer func() { _ = watcher.Close() }()

	isDir, _ := utils.IsDirectory(path)
	if err := watchTree(watcher, path); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToStartWatcher, err)
	}
	g.printf(errors.InfoMsgWatching+"\n", path)

	pending := map[string]bool{}
	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if created, _ := utils.IsDirectory(event.Name); created {
					if err := watchTree(watcher, event.Name); err != nil {
						g.log().Warn("failed to watch new directory", slog.String("dir", event.Name), slog.Any("error", err))
					}
					continue
				}
			}
			if !utils.IsSourceFile(filepath.Base(event.Name)) {
				continue
			}
			if !isDir && filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			pending[event.Name] = true
			timer.Reset(watchDebounce)

		case <-timer.C:
			files := make([]string, 0, len(pending))
			for f := range pending {
				files = append(files, f)
			}
			clear(pending)
			g.log().Debug("change detected", slog.Int("files", len(files)))
			// our own writes trigger events too; the cache or an unchanged result makes them no-ops
			if err := g.ProcessFiles(ctx, files); err != nil {
				g.printf("%v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.log().Warn("watcher error", slog.Any("error", err))
		}
	}
}

// watchTree adds root and every directory below it that FindSourceFiles would visit
func watchTree(watcher *fsnotify.Watcher, root string) error {
	isDir, err := utils.IsDirectory(root)
	if err != nil {
		return err
	}
	if !isDir {
		return watcher.Add(filepath.Dir(root))
	}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && utils.SkipDir(info.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
