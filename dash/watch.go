package dash

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/midbel/animcharts/logging"
)

// Watch calls fn every time the file at path is written or created, until ctx
// is done. Bursts of events within delay are merged in one call.
func Watch(ctx context.Context, path string, delay time.Duration, fn func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file: watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logging.Info().
		Add(logging.Component("watch")).
		Add(logging.Path(abs)).
		Msg("watching data file")

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(delay)
			trigger = timer.C
		case <-trigger:
			trigger = nil
			logging.Debug().
				Add(logging.Component("watch")).
				Add(logging.Path(abs)).
				Msg("data file changed")
			if err := fn(); err != nil {
				logging.Error().
					Add(logging.Component("watch")).
					Add(logging.ErrorField(err)).
					Msg("reload failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn().
				Add(logging.Component("watch")).
				Add(logging.ErrorField(err)).
				Msg("watcher error")
		}
	}
}
