package platform

import (
	"log/slog"

	"github.com/chordsense/chordsense/pkg/core"
)

// options holds the internal configuration for the content service.
type options struct {
	repository core.Repository
	renderer   core.Renderer
	logger     *slog.Logger
	adapter    string
	config     map[string]interface{}
}

// Option defines a functional option for configuring the content service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		config:  make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithRenderer replaces the default goldmark renderer.
func WithRenderer(r core.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithAdapter allows specifying the storage adapter to use by name.
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithExtension sets the content file extension. Defaults to ".mdx".
func WithExtension(ext string) Option {
	return func(o *options) {
		o.config["extension"] = ext
	}
}

// WithPattern limits content files to names matching a doublestar pattern.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.config["pattern"] = pattern
	}
}

// WithConcurrency bounds the number of files read in parallel while listing.
// 1 reads files sequentially; zero means the adapter default.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.config["concurrency"] = n
	}
}

// WithMustExist makes initialization fail when the content directory is missing.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithEventBuffer sets the capacity of the channel returned by Watch.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithUnsafeHTML lets raw HTML in content bodies reach the rendered output.
func WithUnsafeHTML(enabled bool) Option {
	return func(o *options) {
		o.config["unsafe_html"] = enabled
	}
}

// WithHardWraps renders single newlines in a body as <br>.
func WithHardWraps(enabled bool) Option {
	return func(o *options) {
		o.config["hard_wraps"] = enabled
	}
}

// WithMarkdownExtensions selects goldmark extensions by name.
func WithMarkdownExtensions(names ...string) Option {
	return func(o *options) {
		o.config["markdown_extensions"] = names
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
