package htmltomarkdown_test

import (
	"testing"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs and emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>The <strong>JVM</strong> runs <em>bytecode</em>.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "The **JVM** runs *bytecode*.", md)
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Heap</li><li>Stack</li></ul><ol><li>Load</li><li>Link</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Heap")
		assert.Contains(t, md, "- Stack")
		assert.Contains(t, md, "1. Load")
		assert.Contains(t, md, "2. Link")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code class="language-java">class Main {}</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "```java")
		assert.Contains(t, md, "class Main {}")
	})

	t.Run("converts inline code and links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Call <code>useState</code>, see <a href="https://react.dev">docs</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "`useState`")
		assert.Contains(t, md, "[docs](https://react.dev)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table><thead><tr><th>Scope</th></tr></thead><tbody><tr><td>block</td></tr></tbody></table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Scope")
		assert.Contains(t, md, "block")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, jobready.EINVALID, jobready.ErrorCode(err))
	})
}

func TestIsHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"paragraph", "<p>Hi</p>", true},
		{"line break", "first<br/>second", true},
		{"closing tag only", "text</strong>", true},
		{"uppercase tag", "<UL><LI>x</LI></UL>", true},
		{"plain text", "Closures capture scope.", false},
		{"markdown", "- item\n**bold**", false},
		{"comparison", "a < b && b > c", false},
		{"generic type", "Use List<String> here", false},
		{"unknown element", "<custom>x</custom>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, htmltomarkdown.IsHTML(tt.in))
		})
	}
}
