package fs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/chordsense/chordsense/pkg/core"
)

// Serializer splits a content file into its metadata header and body.
type Serializer interface {
	Parse(r io.Reader) (core.Metadata, []byte, error)
}

// MarkdownSerializer reads Markdown/MDX files with a YAML frontmatter block
// delimited by "---" lines. Files without a header are all body.
type MarkdownSerializer struct {
	formats []*frontmatter.Format
}

// NewMarkdownSerializer creates a serializer decoding the header with yaml.v3.
func NewMarkdownSerializer() *MarkdownSerializer {
	return &MarkdownSerializer{
		formats: []*frontmatter.Format{
			frontmatter.NewFormat("---", "---", yaml.Unmarshal),
		},
	}
}

func (s *MarkdownSerializer) Parse(r io.Reader) (core.Metadata, []byte, error) {
	var meta core.Metadata
	body, err := frontmatter.Parse(r, &meta, s.formats...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	if meta == nil {
		meta = core.Metadata{}
	}
	return meta, body, nil
}

// ParseDocument parses raw file contents into a Document for slug.
func ParseDocument(s Serializer, slug string, data []byte) (core.Document, error) {
	meta, body, err := s.Parse(bytes.NewReader(data))
	if err != nil {
		return core.Document{}, err
	}
	return core.Document{
		Post: core.NewPost(slug, meta),
		Body: body,
	}, nil
}
