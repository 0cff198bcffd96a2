package chordsense

import (
	"log/slog"

	"github.com/chordsense/chordsense/internal/platform"
	"github.com/chordsense/chordsense/pkg/core"
	"github.com/chordsense/chordsense/pkg/typed"
)

// --- Types ---

// Post is a public alias for the post summary.
type Post = core.Post

// Document is a public alias for a post with its body.
type Document = core.Document

// DocumentModel is a public alias for the typed document model.
type DocumentModel[T any] = typed.DocumentModel[T]

// TypedRepository is a public alias for the typed repository.
type TypedRepository[T any] = typed.Repository[T]

// --- Configuration ---

// Option defines a functional option for configuring the content service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithRenderer replaces the default Markdown renderer.
func WithRenderer(r core.Renderer) Option {
	return platform.WithRenderer(r)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithExtension sets the content file extension (default ".mdx").
func WithExtension(ext string) Option {
	return platform.WithExtension(ext)
}

// WithPattern limits content files to names matching a glob pattern.
func WithPattern(pattern string) Option {
	return platform.WithPattern(pattern)
}

// WithConcurrency bounds parallel file reads while listing.
func WithConcurrency(n int) Option {
	return platform.WithConcurrency(n)
}

// WithMustExist ensures the content directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithEventBuffer sets the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithUnsafeHTML lets raw HTML through the renderer.
func WithUnsafeHTML(enabled bool) Option {
	return platform.WithUnsafeHTML(enabled)
}

// WithHardWraps renders single newlines in a body as <br>.
func WithHardWraps(enabled bool) Option {
	return platform.WithHardWraps(enabled)
}

// WithMarkdownExtensions selects goldmark extensions by name.
func WithMarkdownExtensions(names ...string) Option {
	return platform.WithMarkdownExtensions(names...)
}

// WithWatcherErrorHandler registers a callback for watcher errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a content Service over the directory at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init builds the content repository without a service.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// NewTypedRepository creates a typed wrapper around an existing repository.
func NewTypedRepository[T any](repo core.Repository) *typed.Repository[T] {
	return typed.NewRepository[T](repo)
}

// OpenTypedRepository simplifies creating a TypedRepository from a path.
func OpenTypedRepository[T any](path string, opts ...Option) (*typed.Repository[T], error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}
	return typed.NewRepository[T](repo), nil
}

// FindSiteRoot looks upwards from startDir for a chordsense.yaml or content directory.
func FindSiteRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
