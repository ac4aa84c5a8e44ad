package savefile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"vindec/pkg/log"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchDebounce coalesces the burst of events a game save produces.
var WatchDebounce = 300 * time.Millisecond

// Watch calls onChange after the file at path is written, created or
// renamed into place. The parent directory is watched so atomic replaces
// are seen. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debug("watching save file", zap.String("path", path))

	target := filepath.Clean(path)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				pending = time.After(WatchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("save file watcher error", zap.Error(err))
		case <-pending:
			pending = nil
			log.Debug("save file changed", zap.String("path", path))
			onChange()
		}
	}
}
