package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsense/chordsense/pkg/adapters/fs"
	"github.com/chordsense/chordsense/pkg/core"
)

// waitFor drains events until one matches or the timeout expires.
func waitFor(t *testing.T, events <-chan core.Event, want core.EventType, slug string) {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "events channel closed before %s %s", want, slug)
			if e.Type == want && e.Slug == slug {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s %s", want, slug)
		}
	}
}

func TestWatch(t *testing.T) {
	repo, dir := setupRepo(t, map[string]string{"existing.mdx": helloPost})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	state := repo.State().(fs.RepositoryState)
	assert.True(t, state.WatcherActive)

	// Create
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fresh.mdx"), []byte(helloPost), 0644))
	waitFor(t, events, core.EventCreate, "fresh")

	// Modify
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.mdx"), []byte("changed"), 0644))
	waitFor(t, events, core.EventModify, "existing")

	// Delete
	require.NoError(t, os.Remove(filepath.Join(dir, "existing.mdx")))
	waitFor(t, events, core.EventDelete, "existing")

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 3*time.Second, 10*time.Millisecond, "events channel should close after cancel")

	assert.Eventually(t, func() bool {
		return !repo.State().(fs.RepositoryState).WatcherActive
	}, time.Second, 10*time.Millisecond)
}

func TestWatch_IgnoresNonContent(t *testing.T) {
	repo, dir := setupRepo(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.mdx"), []byte("x"), 0644))

	select {
	case e := <-events:
		assert.Equal(t, "real", e.Slug)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for content event")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	repo := fs.NewRepository(fs.Config{Path: filepath.Join(t.TempDir(), "missing")})
	_, err := repo.Watch(context.Background())
	assert.Error(t, err)
}
