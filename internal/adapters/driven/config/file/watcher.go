package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
	"github.com/stonynews/stonynews-cli/internal/logger"
)

// reloadOps are the events that change a prompt's content.
const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// PromptWatcher clears a prompt store's cache whenever a prompt file in its
// directory changes, so long-running modes pick up edits without a restart.
type PromptWatcher struct {
	store    driven.PromptStore
	dir      string
	watcher  *fsnotify.Watcher
	onReload func(name string)

	closeOnce sync.Once
	done      chan struct{}
}

// NewPromptWatcher creates a watcher for the directory of store.
// It does not start watching until Start is called.
func NewPromptWatcher(store *PromptStore) *PromptWatcher {
	return &PromptWatcher{
		store: store,
		dir:   store.Dir(),
		done:  make(chan struct{}),
	}
}

// OnReload registers a callback run after each reload with the prompt name.
// Must be called before Start.
func (w *PromptWatcher) OnReload(fn func(name string)) {
	w.onReload = fn
}

// Start begins watching. The loop ends when ctx is done or Close is called.
func (w *PromptWatcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.watcher = watcher

	logger.Debug("Watching prompts in %s", w.dir)
	go w.loop(ctx)
	return nil
}

// Close stops watching. It is safe to call more than once.
func (w *PromptWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		if w.watcher != nil {
			err = w.watcher.Close()
		}
	})
	return err
}

func (w *PromptWatcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Prompt watcher error: %v", err)
		}
	}
}

// handle reloads the store for events on prompt files.
func (w *PromptWatcher) handle(event fsnotify.Event) {
	name, ok := promptName(event.Name)
	if !ok || event.Op&reloadOps == 0 {
		return
	}

	w.store.Reload()
	logger.Info("Prompt %q changed, reloaded", name)
	if w.onReload != nil {
		w.onReload(name)
	}
}

// promptName returns the prompt name of a .txt path.
func promptName(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, promptExt) {
		return "", false
	}
	return strings.TrimSuffix(base, promptExt), true
}
