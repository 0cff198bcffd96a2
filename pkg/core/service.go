package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service handles the listing and detail flows for posts.
type Service struct {
	repo     Repository
	renderer Renderer
	logger   *slog.Logger
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, renderer Renderer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, renderer: renderer, logger: logger}
}

// ListPosts returns the summary of every post.
func (s *Service) ListPosts(ctx context.Context) ([]Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("listed posts", "count", len(posts))
	return posts, nil
}

// GetPost loads one post and its raw body.
func (s *Service) GetPost(ctx context.Context, slug string) (Document, error) {
	if err := ValidateSlug(slug); err != nil {
		return Document{}, err
	}
	return s.repo.Get(ctx, slug)
}

// RenderPost loads one post and renders its body.
func (s *Service) RenderPost(ctx context.Context, slug string) (RenderedPost, error) {
	if s.renderer == nil {
		return RenderedPost{}, fmt.Errorf("no renderer configured")
	}

	doc, err := s.GetPost(ctx, slug)
	if err != nil {
		return RenderedPost{}, err
	}

	html, err := s.renderer.Render(ctx, doc.Body)
	if err != nil {
		return RenderedPost{}, fmt.Errorf("failed to render %s: %w", slug, err)
	}
	s.logger.Debug("rendered post", "slug", slug, "bytes", len(html))

	return RenderedPost{Post: doc.Post, HTML: html}, nil
}

// Watch observes content changes if the repository supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx)
}

// ValidateSlug rejects slugs that would resolve outside the content directory.
func ValidateSlug(slug string) error {
	switch {
	case strings.TrimSpace(slug) == "":
		return fmt.Errorf("%w: empty", ErrInvalidSlug)
	case strings.ContainsAny(slug, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidSlug, slug)
	case slug == "." || slug == "..":
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}
