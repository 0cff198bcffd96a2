package platform

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsense/chordsense/pkg/adapters/fs"
	"github.com/chordsense/chordsense/pkg/core"
)

type stubRepo struct{}

func (stubRepo) List(ctx context.Context) ([]core.Post, error) {
	return []core.Post{{Slug: "stub"}}, nil
}

func (stubRepo) Get(ctx context.Context, slug string) (core.Document, error) {
	return core.Document{Post: core.Post{Slug: slug}, Body: []byte("*stub*")}, nil
}

func TestNew_FS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("---\ntitle: A\n---\n**bold**\n"), 0644))

	svc, err := New(dir, WithExtension("md"), WithConcurrency(2), WithMustExist(true))
	require.NoError(t, err)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "A", posts[0].Title)

	rendered, err := svc.RenderPost(context.Background(), "a")
	require.NoError(t, err)
	assert.Contains(t, string(rendered.HTML), "<strong>bold</strong>")

	state := svc.State().(core.ServiceState)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.True(t, state.Watchable)
}

func TestNew_HardWraps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "verse.mdx"), []byte("line one\nline two\n"), 0644))

	svc, err := New(dir, WithHardWraps(true))
	require.NoError(t, err)

	rendered, err := svc.RenderPost(context.Background(), "verse")
	require.NoError(t, err)
	assert.Contains(t, string(rendered.HTML), "line one<br")
}

func TestNew_MustExist(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), WithMustExist(true))
	assert.True(t, errors.Is(err, iofs.ErrNotExist), "expected not-exist error, got %v", err)
}

func TestNew_InjectedRepository(t *testing.T) {
	svc, err := New("", WithRepository(stubRepo{}))
	require.NoError(t, err)

	rendered, err := svc.RenderPost(context.Background(), "x")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(rendered.HTML), "<em>stub</em>"))
}

func TestNew_UnsafeHTML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p.mdx"), []byte("<div>raw</div>\n"), 0644))

	svc, err := New(dir, WithUnsafeHTML(true))
	require.NoError(t, err)

	rendered, err := svc.RenderPost(context.Background(), "p")
	require.NoError(t, err)
	assert.Contains(t, string(rendered.HTML), "<div>raw</div>")
}

func TestInit(t *testing.T) {
	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := Init(t.TempDir(), WithAdapter("s3"))
		assert.EqualError(t, err, "unknown adapter: s3")
	})

	t.Run("Empty Path", func(t *testing.T) {
		_, err := Init("")
		assert.Error(t, err)
	})

	t.Run("Returns FS Repository", func(t *testing.T) {
		repo, err := Init(t.TempDir(), WithPattern("*.mdx"), WithEventBuffer(5))
		require.NoError(t, err)
		fsRepo, ok := repo.(*fs.Repository)
		require.True(t, ok)
		assert.Equal(t, "*.mdx", fsRepo.State().(fs.RepositoryState).Pattern)
	})
}
