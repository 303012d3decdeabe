package stats

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
)

// DefaultDebounce coalesces bursts of write events from editors.
const DefaultDebounce = 100 * time.Millisecond

// Watch reloads path whenever it changes and passes the result to onChange,
// until ctx is cancelled. The parent directory is watched so that editors which
// replace the file via rename are still picked up. onChange runs on a timer
// goroutine; callers forward the result to their event loop rather than
// mutating shared state directly.
func Watch(ctx context.Context, path string, debounce time.Duration, log logger.Logger, onChange func([]Record, error)) error {
	log = logger.OrDefault(log)
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrData, "Can't resolve data file path "+path, "")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrData, "Can't start file watcher", "Set watch: false in .dash.yaml")
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.WrapWithCode(err, errors.ErrData,
			"Can't watch "+filepath.Dir(abs),
			"Check the directory exists and is readable")
	}

	log.Debug("watching data file", "path", abs)

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)
	defer func() {
		mu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				if ctx.Err() != nil {
					return
				}
				log.Debug("data file changed, reloading", "path", abs)
				records, err := LoadFile(abs)
				onChange(records, err)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}
