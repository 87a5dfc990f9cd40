package csvfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/turtacn/opportunity-canvas/internal/infrastructure/monitoring/logging"
)

// Watcher invokes a callback when the canvas CSV changes on disk.  It
// watches the file's parent directory rather than the file itself because
// most editors replace files via rename, which drops inotify watches on the
// old inode.  Bursts of events are debounced into a single callback.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   logging.Logger

	fw *fsnotify.Watcher
}

// NewWatcher creates a Watcher for path.  onChange runs on the watcher
// goroutine; it must not block for long.
func NewWatcher(path string, debounce time.Duration, onChange func(), logger logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		logger:   logger.Named("watcher"),
		fw:       fw,
	}, nil
}

// Start blocks, dispatching debounced change callbacks until ctx is
// cancelled.  Run it on its own goroutine.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fw.Close()

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	fire := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("dataset file event", logging.String("op", ev.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, fire)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("filesystem watch error", logging.Err(err))

		case <-pending:
			w.logger.Info("dataset changed on disk, reloading", logging.String("path", w.path))
			w.onChange()
		}
	}
}
