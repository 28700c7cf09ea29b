// Package fs provides filesystem adapters: watching a data store that is
// still being written by an in-progress acquisition.
package fs

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ims-labs/timsdf/internal/ports"
)

// DefaultDebounce is the delay applied after a filesystem event before a
// notification fires. Acquisition software appends to the catalogue and the
// container in bursts; debouncing collapses each burst to one signal.
const DefaultDebounce = 250 * time.Millisecond

// StoreWatcher watches a data-store directory and signals when the
// catalogue or the raw container changes, so a follower can re-open the
// store and pick up newly completed frames.
type StoreWatcher struct {
	dataPath string
	debounce time.Duration
	logger   ports.Logger

	watcher *fsnotify.Watcher
	events  chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStoreWatcher creates a watcher for the store at dataPath.
// A non-positive debounce falls back to DefaultDebounce.
func NewStoreWatcher(dataPath string, debounce time.Duration, logger ports.Logger) (*StoreWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dataPath); err != nil {
		fw.Close()
		return nil, err
	}
	return &StoreWatcher{
		dataPath: dataPath,
		debounce: debounce,
		logger:   logger,
		watcher:  fw,
		events:   make(chan struct{}, 1),
	}, nil
}

// Start begins watching. It returns immediately; notifications are
// delivered on Events until ctx is canceled or Close is called.
func (w *StoreWatcher) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)

	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop(runCtx)
}

// Events returns the notification channel. Each receive means at least one
// store file changed since the previous receive; signals are coalesced.
func (w *StoreWatcher) Events() <-chan struct{} {
	return w.events
}

func (w *StoreWatcher) loop(ctx context.Context) {
	defer w.wg.Done()

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !storeFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(w.debounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(w.debounce)
			}
			fire = debounce.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("store watch error", ports.Err(err))

		case <-fire:
			fire = nil
			select {
			case w.events <- struct{}{}:
			default:
				// A signal is already pending; coalesce.
			}
			w.logger.Debug("store changed", ports.String("store", w.dataPath))
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *StoreWatcher) Close() error {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// storeFile reports whether the changed path belongs to the store's
// catalogue or container. SQLite journal and WAL side files count: they
// change while the acquisition software commits new frame rows.
func storeFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, "analysis.tdf")
}
