// Package core holds the content domain: posts, documents and the ports the
// storage and rendering adapters plug into.
package core

import (
	"fmt"
	"time"
)

// Metadata represents the key-value pairs found in a content file's header.
type Metadata map[string]any

// DateLayout is the layout used when a header date is a YAML timestamp.
const DateLayout = "2006-01-02"

// Post is the summary of one content file, built from its metadata header.
// Fields are copied from the header as-is; absent keys stay empty.
type Post struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Date     string   `json:"date"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Document is a Post together with the body that follows its header.
type Document struct {
	Post
	Body []byte `json:"-"`
}

// RenderedPost is a Post whose body went through a Renderer.
type RenderedPost struct {
	Post
	HTML []byte `json:"-"`
}

// NewPost builds a Post from a slug and the decoded header.
func NewPost(slug string, meta Metadata) Post {
	if meta == nil {
		meta = Metadata{}
	}
	return Post{
		Slug:     slug,
		Title:    meta.String("title"),
		Summary:  meta.String("summary"),
		Date:     meta.String("date"),
		Metadata: meta,
	}
}

// String returns the value stored under key as text.
// Timestamps are formatted with DateLayout, nil and missing keys give "".
func (m Metadata) String(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(DateLayout)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// EventType represents the kind of change seen in the content directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to one content file.
type Event struct {
	Type      EventType
	Slug      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Slug)
}
