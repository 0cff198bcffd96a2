package render_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chordsense/chordsense/pkg/render"
)

func TestGoldmark_Render(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		opts     render.Options
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "Heading With ID",
			input:    "# Circle of Fifths\n",
			contains: []string{`<h1 id="circle-of-fifths">Circle of Fifths</h1>`},
		},
		{
			name:     "GFM Table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "Raw HTML Dropped By Default",
			input:    "<Chord name=\"C\" />\n",
			excludes: []string{"<Chord"},
		},
		{
			name:     "Raw HTML Kept When Unsafe",
			opts:     render.Options{Unsafe: true},
			input:    "<div class=\"chord\">C</div>\n",
			contains: []string{`<div class="chord">C</div>`},
		},
		{
			name:     "Explicit Extensions Only",
			opts:     render.Options{Extensions: []string{"footnote", "bogus"}},
			input:    "~~gone~~\n",
			excludes: []string{"<del>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := render.NewGoldmark(tt.opts).Render(ctx, []byte(tt.input))
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(out), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, string(out), s)
			}
		})
	}
}

func TestGoldmark_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := render.NewGoldmark(render.Options{}).Render(ctx, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
