package fixtures

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives a freshly loaded dataset after the seed file changed.
type ReloadFunc func(*Dataset)

const reloadDebounce = 200 * time.Millisecond

// Watch reloads the dataset at path whenever the file changes and passes
// it to cb, until ctx is cancelled. The parent directory is watched rather
// than the file itself so that editors which save by rename are picked up.
// A file that fails to parse or validate is logged and skipped; the
// previous data stays in place.
func Watch(ctx context.Context, path string, logger *slog.Logger, cb ReloadFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	logger.Info("fixtures watcher: started", slog.String("path", abs))

	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(reloadDebounce)
			timerCh = timer.C
		} else {
			timer.Reset(reloadDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("fixtures watcher: stopped")
			return nil

		case <-timerCh:
			d, loadErr := Load(abs)
			if loadErr != nil {
				logger.Warn("fixtures watcher: reload failed", slog.String("path", abs), slog.String("error", loadErr.Error()))
				continue
			}
			logger.Info("fixtures watcher: reloaded", slog.String("path", abs))
			if cb != nil {
				cb(d)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				logger.Debug("fixtures watcher: change", slog.String("op", ev.Op.String()))
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("fixtures watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
