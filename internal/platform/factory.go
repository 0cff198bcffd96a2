package platform

import (
	"context"
	"fmt"

	"github.com/chordsense/chordsense/pkg/adapters/fs"
	"github.com/chordsense/chordsense/pkg/core"
	"github.com/chordsense/chordsense/pkg/render"
)

// New wires a content service over the directory at uri.
//
//	svc, err := chordsense.New("./content", chordsense.WithConcurrency(4))
//
// The uri argument is adapter-specific (a directory path for "fs").
func New(uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(uri, o)
	if err != nil {
		return nil, err
	}

	renderer := o.renderer
	if renderer == nil {
		renderer = newRenderer(o)
	}

	return core.NewService(repo, renderer, o.logger), nil
}

// Init builds and initializes the repository only.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(uri, o)
}

func initRepository(uri string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	switch o.adapter {
	case "fs":
		return initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("content path is required")
	}

	ext, _ := o.config["extension"].(string)
	pattern, _ := o.config["pattern"].(string)
	concurrency, _ := o.config["concurrency"].(int)
	mustExist, _ := o.config["must_exist"].(bool)
	eventBuffer, _ := o.config["event_buffer"].(int)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	repo := fs.NewRepository(fs.Config{
		Path:         path,
		Extension:    ext,
		Pattern:      pattern,
		Concurrency:  concurrency,
		MustExist:    mustExist,
		EventBuffer:  eventBuffer,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("content repository ready", "path", path, "extension", repo.Extension())
	}
	return repo, nil
}

func newRenderer(o *options) core.Renderer {
	unsafe, _ := o.config["unsafe_html"].(bool)
	hardWraps, _ := o.config["hard_wraps"].(bool)
	exts, _ := o.config["markdown_extensions"].([]string)
	return render.NewGoldmark(render.Options{
		Extensions: exts,
		HardWraps:  hardWraps,
		Unsafe:     unsafe,
	})
}
