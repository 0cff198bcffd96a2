package core

import "context"

// Repository defines the read contract over a set of content files.
// Adhering to this interface keeps the core independent of where the
// content lives.
type Repository interface {
	// List returns one Post per content file, in the order the storage
	// enumerates them.
	List(ctx context.Context) ([]Post, error)

	// Get loads a single document by slug.
	// A missing document yields an error matching fs.ErrNotExist.
	Get(ctx context.Context, slug string) (Document, error)
}

// Watchable is implemented by repositories that can report content changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Renderer turns a document body into HTML.
type Renderer interface {
	Render(ctx context.Context, body []byte) ([]byte, error)
}
