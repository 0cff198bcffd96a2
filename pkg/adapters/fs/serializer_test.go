package fs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsense/chordsense/pkg/adapters/fs"
)

func TestMarkdownSerializer_Parse(t *testing.T) {
	s := fs.NewMarkdownSerializer()

	t.Run("Nested Metadata", func(t *testing.T) {
		input := "---\ntitle: Nested\ntags:\n  - theory\n  - chords\nauthor:\n  name: Ana\n---\nBody\n"
		meta, body, err := s.Parse(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, "Nested", meta["title"])
		assert.Equal(t, []interface{}{"theory", "chords"}, meta["tags"])
		author, ok := meta["author"].(map[string]interface{})
		require.True(t, ok, "expected nested map, got %T", meta["author"])
		assert.Equal(t, "Ana", author["name"])
		assert.Equal(t, "Body\n", string(body))
	})

	t.Run("Empty Header", func(t *testing.T) {
		meta, body, err := s.Parse(strings.NewReader("---\n---\nonly body"))
		require.NoError(t, err)
		assert.NotNil(t, meta)
		assert.Empty(t, meta)
		assert.Equal(t, "only body", string(body))
	})

	t.Run("MDX Components Pass Through", func(t *testing.T) {
		input := "---\ntitle: JSX\n---\n<Chord name=\"Cmaj7\" />\n"
		_, body, err := s.Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "<Chord name=\"Cmaj7\" />\n", string(body))
	})
}

func TestParseDocument(t *testing.T) {
	doc, err := fs.ParseDocument(fs.NewMarkdownSerializer(), "hello", []byte(helloPost))
	require.NoError(t, err)

	assert.Equal(t, "hello", doc.Slug)
	assert.Equal(t, "Hello", doc.Title)
	assert.Equal(t, "World", doc.Summary)
	assert.Equal(t, "2024-01-01", doc.Date)
	assert.Equal(t, "Hello", doc.Metadata["title"])
}
