package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWatcher records Start and Close calls.
type fakeWatcher struct {
	startErr error
	started  int
	closed   int
}

func (w *fakeWatcher) Start(context.Context) error {
	w.started++
	return w.startErr
}

func (w *fakeWatcher) Close() error {
	w.closed++
	return nil
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "no-config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestInitServices_RunsBootstrapOnce(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()
	services = nil

	var calls int
	var got Options
	SetBootstrap(func(_ context.Context, opts Options) (*Services, error) {
		calls++
		got = opts
		return &Services{News: env.news, Settings: env.settings}, nil
	})

	_, err := executeCommand("--no-config", "--config-dir", "/tmp/stony", "suggestions")
	require.NoError(t, err)
	_, err = executeCommand("suggestions")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.True(t, got.NoConfig)
	assert.Equal(t, "/tmp/stony", got.ConfigDir)
}

func TestInitServices_BootstrapError(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	services = nil

	boom := errors.New("config unreadable")
	SetBootstrap(func(context.Context, Options) (*Services, error) {
		return nil, boom
	})

	_, err := executeCommand("suggestions")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "initialise:")
}

func TestInitServices_InjectedServicesSkipBootstrap(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	SetBootstrap(func(context.Context, Options) (*Services, error) {
		t.Fatal("bootstrap must not run")
		return nil, nil
	})
	SetServices(&Services{News: env.news, Settings: env.settings})

	_, err := executeCommand("suggestions")

	assert.NoError(t, err)
}

func TestServiceAccessors_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	services = nil

	_, err := newsService()
	assert.Error(t, err)
	_, err = settingsService()
	assert.Error(t, err)

	services = &Services{}
	_, err = newsService()
	assert.Error(t, err)
	_, err = settingsService()
	assert.Error(t, err)
}

func TestStartPromptWatcher(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	w := &fakeWatcher{}
	services.PromptWatcher = w

	stop := startPromptWatcher(context.Background())
	assert.Equal(t, 1, w.started)
	assert.Equal(t, 0, w.closed)

	stop()
	assert.Equal(t, 1, w.closed)
}

func TestStartPromptWatcher_StartFailure(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	w := &fakeWatcher{startErr: errors.New("no inotify")}
	services.PromptWatcher = w

	stop := startPromptWatcher(context.Background())
	stop()

	assert.Equal(t, 1, w.started)
	assert.Equal(t, 0, w.closed)
}

func TestStartPromptWatcher_None(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	assert.NotPanics(t, func() { startPromptWatcher(context.Background())() })
}

func TestCloseServices(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	var closed bool
	services.Close = func() { closed = true }

	closeServices()

	assert.True(t, closed)
}
