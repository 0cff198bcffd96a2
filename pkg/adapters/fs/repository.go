package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/chordsense/chordsense/pkg/core"
)

const (
	// DefaultExtension is the extension of content files.
	DefaultExtension = ".mdx"
	// DefaultConcurrency bounds the number of files read at once by List.
	DefaultConcurrency = 8
	// DefaultEventBuffer is the capacity of the channel returned by Watch.
	DefaultEventBuffer = 100
)

// Repository implements core.Repository over a flat directory of content files.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	Extension string // e.g. ".mdx"; a missing leading dot is added
	Pattern   string // optional doublestar pattern matched against file names
	// Concurrency limits parallel file reads during List. 1 reads sequentially.
	Concurrency  int
	MustExist    bool
	EventBuffer  int
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher errors
	Serializer   Serializer
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	config.Extension = normalizeExt(config.Extension)
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = DefaultEventBuffer
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	serializer := config.Serializer
	if serializer == nil {
		serializer = NewMarkdownSerializer()
	}

	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: serializer,
	}
}

// Initialize checks the configuration against the filesystem.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.Pattern != "" && !doublestar.ValidatePattern(r.config.Pattern) {
		return fmt.Errorf("invalid content pattern: %q", r.config.Pattern)
	}

	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if err != nil {
			return fmt.Errorf("content path is not accessible: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("content path is not a directory: %s", r.Path)
		}
	}

	return nil
}

// Extension returns the normalized content file extension.
func (r *Repository) Extension() string {
	return r.config.Extension
}

// List reads the content directory and returns one Post per content file.
//
// Strategy:
//  1. Enumerate the directory once, keeping entries that look like content.
//  2. Read and parse the files with at most Config.Concurrency in flight.
//  3. Keep enumeration order in the result regardless of completion order.
//
// The first failure cancels the remaining reads and is returned as-is.
func (r *Repository) List(ctx context.Context) ([]core.Post, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !r.isContent(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	posts := make([]core.Post, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Concurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := r.readFile(filepath.Join(r.Path, name), r.slugOf(name))
			if err != nil {
				return err
			}
			posts[i] = doc.Post
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.config.Logger.Debug("listed content", "path", r.Path, "count", len(posts))
	return posts, nil
}

// Get reads the file at Path/slug+Extension. Slugs that would leave Path
// fail with core.ErrInvalidSlug.
func (r *Repository) Get(ctx context.Context, slug string) (core.Document, error) {
	if err := ctx.Err(); err != nil {
		return core.Document{}, err
	}
	if err := core.ValidateSlug(slug); err != nil {
		return core.Document{}, err
	}
	return r.readFile(r.pathFor(slug), slug)
}

func (r *Repository) readFile(path, slug string) (core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to read %s: %w", slug, err)
	}

	doc, err := ParseDocument(r.serializer, slug, data)
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to parse document %s: %w", slug, err)
	}
	return doc, nil
}

func (r *Repository) pathFor(slug string) string {
	return filepath.Join(r.Path, slug+r.config.Extension)
}

func (r *Repository) slugOf(name string) string {
	return strings.TrimSuffix(name, r.config.Extension)
}

// isContent reports whether a file name in the content directory is a
// content file: visible, with the configured extension, and matching Pattern.
func (r *Repository) isContent(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	if filepath.Ext(name) != r.config.Extension {
		return false
	}
	if r.config.Pattern == "" {
		return true
	}
	ok, err := doublestar.Match(r.config.Pattern, name)
	return err == nil && ok
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
