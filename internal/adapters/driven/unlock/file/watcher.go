package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/campus-labs/tutor-cli/internal/logger"
)

// debounceDelay coalesces bursts of filesystem events. Editors and the
// course guide both tend to write the state file several times in
// quick succession.
const debounceDelay = 300 * time.Millisecond

// Watcher observes the unlock-state file and invokes a callback when
// it changes. The indexer uses this to rebuild automatically when the
// guide unlocks a new module.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func(context.Context)
}

// NewWatcher creates a watcher for the unlock-state file at path.
// onChange runs on the watcher goroutine after each (debounced)
// modification; it must handle its own errors.
func NewWatcher(path string, onChange func(context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the parent directory rather than the file itself so
	// atomic rename-over-writes keep being observed.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     path,
		watcher:  fsw,
		onChange: onChange,
	}, nil
}

// Run processes filesystem events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			logger.Debug("Unlock state changed: %s", event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			w.onChange(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Unlock watcher error: %v", err)
		}
	}
}
