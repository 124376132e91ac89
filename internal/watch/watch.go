// Package watch re-runs a callback whenever a watched file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Watch monitors path and calls fn after each change until ctx is
// cancelled. It watches the parent directory rather than the file itself
// so that atomic writes (temp file + rename) and file recreation are still
// observed. Callback errors are logged and do not stop the watch.
func Watch(ctx context.Context, logger log.Logger, path string, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %q: %w", dir, err)
	}

	filename := filepath.Base(path)
	level.Debug(logger).Log("msg", "watching file", "path", path)

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Only process events for our specific file
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			level.Debug(logger).Log("msg", "file changed", "op", event.Op.String())
			if err := fn(); err != nil {
				level.Error(logger).Log("msg", "reformat failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			level.Error(logger).Log("msg", "watch error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}
