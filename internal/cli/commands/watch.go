package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// defaultDebounce coalesces the burst of events editors emit on save.
const defaultDebounce = 100 * time.Millisecond

// watchScript runs the script once, then again after every change to it,
// until ctx is cancelled. Script errors are reported by run and do not
// stop watching.
func watchScript(ctx context.Context, script string, debounce time.Duration, logger *slog.Logger, run func(context.Context) error) error {
	abs, err := filepath.Abs(script)
	if err != nil {
		return fmt.Errorf("failed to resolve script path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watchLoop(ctx, watcher, abs, debounce, changes, logger)
	})

	g.Go(func() error {
		for {
			if err := run(ctx); err != nil && ctx.Err() == nil {
				logger.Debug("watched run failed", "script", script, "error", err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-changes:
				logger.Debug("script changed", "script", script)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, debounce time.Duration, changes chan<- struct{}, logger *slog.Logger) error {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, notify)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
