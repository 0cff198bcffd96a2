// Package typed decodes post metadata into caller-defined structs.
package typed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chordsense/chordsense/pkg/core"
)

// DocumentModel is a typed view of a content file.
type DocumentModel[T any] struct {
	Slug string
	Body []byte
	Data T // The decoded metadata header
}

// Repository wraps a core.Repository to provide typed metadata.
type Repository[T any] struct {
	repo core.Repository
}

// NewRepository creates a new type-safe wrapper around an existing repository.
func NewRepository[T any](repo core.Repository) *Repository[T] {
	return &Repository[T]{repo: repo}
}

// Get retrieves a document and decodes its header into T.
func (r *Repository[T]) Get(ctx context.Context, slug string) (*DocumentModel[T], error) {
	doc, err := r.repo.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	data, err := decode[T](doc.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", slug, err)
	}
	return &DocumentModel[T]{Slug: doc.Slug, Body: doc.Body, Data: data}, nil
}

// List returns the decoded header of every post. Bodies are not loaded.
func (r *Repository[T]) List(ctx context.Context) ([]*DocumentModel[T], error) {
	posts, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*DocumentModel[T], 0, len(posts))
	for _, p := range posts {
		data, err := decode[T](p.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to process document %s: %w", p.Slug, err)
		}
		result = append(result, &DocumentModel[T]{Slug: p.Slug, Data: data})
	}
	return result, nil
}

// decode goes through JSON so struct tags drive the mapping.
func decode[T any](meta core.Metadata) (T, error) {
	var data T
	raw, err := json.Marshal(meta)
	if err != nil {
		return data, fmt.Errorf("metadata marshal failed: %w", err)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("unmarshal to target type failed: %w", err)
	}
	return data, nil
}
