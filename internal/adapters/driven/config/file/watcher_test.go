package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
)

// countingStore wraps a PromptStore and counts reloads.
type countingStore struct {
	driven.PromptStore
	reloads int
}

func (c *countingStore) Reload() {
	c.reloads++
	c.PromptStore.Reload()
}

func TestPromptWatcher_ReloadsOnEdit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	_, err = store.Load(driven.PromptNewsUser)
	require.NoError(t, err)

	w := NewPromptWatcher(store)
	reloaded := make(chan string, 10)
	w.OnReload(func(name string) { reloaded <- name })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "news_user.txt"), []byte("Édité : %s"), 0600))

	select {
	case name := <-reloaded:
		assert.Equal(t, driven.PromptNewsUser, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after editing a prompt file")
	}

	prompt, err := store.Load(driven.PromptNewsUser)
	require.NoError(t, err)
	assert.Equal(t, "Édité : %s", prompt)
}

func TestPromptWatcher_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	w := NewPromptWatcher(store)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	assert.DirExists(t, dir)
}

func TestPromptWatcher_CloseIsIdempotent(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)
	w := NewPromptWatcher(store)
	require.NoError(t, w.Start(context.Background()))

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestPromptWatcher_Handle(t *testing.T) {
	tests := []struct {
		name   string
		event  fsnotify.Event
		reload bool
	}{
		{"write prompt", fsnotify.Event{Name: "/p/news_user.txt", Op: fsnotify.Write}, true},
		{"create prompt", fsnotify.Event{Name: "/p/news_system.txt", Op: fsnotify.Create}, true},
		{"remove prompt", fsnotify.Event{Name: "/p/news_user.txt", Op: fsnotify.Remove}, true},
		{"rename prompt", fsnotify.Event{Name: "/p/news_user.txt", Op: fsnotify.Rename}, true},
		{"chmod prompt", fsnotify.Event{Name: "/p/news_user.txt", Op: fsnotify.Chmod}, false},
		{"readme", fsnotify.Event{Name: "/p/README.md", Op: fsnotify.Write}, false},
		{"editor swap file", fsnotify.Event{Name: "/p/.news_user.txt.swp", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, err := NewPromptStore(t.TempDir())
			require.NoError(t, err)
			store := &countingStore{PromptStore: inner}
			w := &PromptWatcher{store: store, done: make(chan struct{})}

			w.handle(tt.event)

			if tt.reload {
				assert.Equal(t, 1, store.reloads)
			} else {
				assert.Equal(t, 0, store.reloads)
			}
		})
	}
}
