// Package site serves the blog over HTTP.
package site

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chordsense/chordsense/pkg/core"
)

//go:embed templates/*.html
var templateFS embed.FS

// PostStore is the subset of core.Service the handlers need.
type PostStore interface {
	ListPosts(ctx context.Context) ([]core.Post, error)
	RenderPost(ctx context.Context, slug string) (core.RenderedPost, error)
}

// Info is shown in the layout and on the home page.
type Info struct {
	Title       string
	Description string
}

// Handler serves the blog pages and the JSON API from a PostStore.
type Handler struct {
	store  PostStore
	info   Info
	logger *slog.Logger
}

// NewHandler creates a Handler. A nil logger falls back to slog.Default.
func NewHandler(store PostStore, info Info, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, info: info, logger: logger}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *Handler) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.Home)
	r.GET("/blog", h.Index)
	r.GET("/blog/:slug", h.Post)
	r.GET("/api/posts", h.ListJSON)
	r.GET("/api/posts/:slug", h.PostJSON)
	r.GET("/healthz", h.Health)
	r.NoRoute(func(c *gin.Context) {
		h.renderError(c, http.StatusNotFound, "Page not found")
	})

	return r, nil
}

type page struct {
	Site      Info
	PageTitle string
	Posts     []core.Post
	Post      core.Post
	Body      template.HTML
	Status    int
	Message   string
}

// Home renders the landing page.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", page{Site: h.info})
}

// Index renders the list of posts.
func (h *Handler) Index(c *gin.Context) {
	posts, err := h.store.ListPosts(c.Request.Context())
	if err != nil {
		h.logger.Error("error listing posts", "error", err)
		h.renderError(c, http.StatusInternalServerError, "Could not load posts")
		return
	}
	c.HTML(http.StatusOK, "index", page{Site: h.info, PageTitle: "Blog", Posts: posts})
}

// Post renders one post; a missing slug answers 404.
func (h *Handler) Post(c *gin.Context) {
	slug := c.Param("slug")
	rendered, err := h.store.RenderPost(c.Request.Context(), slug)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("error rendering post", "slug", slug, "error", err)
		}
		h.renderError(c, status, http.StatusText(status))
		return
	}

	c.HTML(http.StatusOK, "post", page{
		Site:      h.info,
		PageTitle: rendered.Title,
		Post:      rendered.Post,
		Body:      template.HTML(rendered.HTML),
	})
}

// ListJSON returns every post summary as JSON.
func (h *Handler) ListJSON(c *gin.Context) {
	posts, err := h.store.ListPosts(c.Request.Context())
	if err != nil {
		h.logger.Error("error listing posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": len(posts)})
}

// PostJSON returns one post with its rendered HTML as JSON.
func (h *Handler) PostJSON(c *gin.Context) {
	slug := c.Param("slug")
	rendered, err := h.store.RenderPost(c.Request.Context(), slug)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("error rendering post", "slug", slug, "error", err)
		}
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": rendered.Post, "html": string(rendered.HTML)})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error", page{
		Site:      h.info,
		PageTitle: http.StatusText(status),
		Status:    status,
		Message:   msg,
	})
}

// statusFor maps flow errors onto HTTP statuses. Only the routing layer
// turns a missing file into a 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, core.ErrInvalidSlug):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
