package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lep/jassbot/internal/syntax"
)

func testHighlighter() *syntax.Highlighter {
	return syntax.NewHighlighter(syntax.NewVocabulary(syntax.Names{Natives: []string{"CreateUnit"}}), "/doc")
}

func TestParse_Blocks(t *testing.T) {
	src := `<p>Use <code>CreateUnit</code>.</p>` +
		`<pre><code class="language-lua">local x</code></pre>` +
		`<pre class="sourceCode"><code class="sourceCode jass"><span>call</span> x</code></pre>` +
		`<pre><code>a &lt; b</code></pre>`

	d, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	blocks := d.Blocks()
	require.Len(t, blocks, 4)
	assert.Equal(t, syntax.Block{Text: "CreateUnit"}, blocks[0])
	assert.Equal(t, syntax.Block{Text: "local x", Language: "language-lua"}, blocks[1])
	assert.Equal(t, syntax.Block{Text: "call x", Language: "sourceCode", Prerendered: true}, blocks[2])
	assert.Equal(t, "a < b", blocks[3].Text)
}

func TestHighlight(t *testing.T) {
	out, err := Highlight(testHighlighter(), `<p>See <code>CreateUnit</code></p>`)
	require.NoError(t, err)
	assert.Equal(t,
		`<p>See <code><span class="native"><a href="/doc/CreateUnit">CreateUnit</a></span></code></p>`,
		out)
}

func TestHighlight_EscapesText(t *testing.T) {
	out, err := Highlight(testHighlighter(), `<pre><code>a &lt; "b"</code></pre>`)
	require.NoError(t, err)
	assert.Equal(t,
		`<pre><code><span class="ident">a</span><span class="ws"> </span>`+
			`<span class="operator">&lt;</span><span class="ws"> </span>`+
			`<span class="string">&#34;b&#34;</span></code></pre>`,
		out)
}

func TestHighlight_KeepsPrerendered(t *testing.T) {
	src := `<pre><code class="sourceCode"><span class="kw">call</span></code></pre>`
	out, err := Highlight(testHighlighter(), src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestHighlight_LuaClass(t *testing.T) {
	out, err := Highlight(testHighlighter(), `<code class="lua">-- hi</code>`)
	require.NoError(t, err)
	assert.Equal(t, `<code class="lua"><span class="comment">-- hi</span></code>`, out)
}

func TestHighlight_NoCode(t *testing.T) {
	out, err := Highlight(testHighlighter(), `<p>plain</p>`)
	require.NoError(t, err)
	assert.Equal(t, `<p>plain</p>`, out)
}

func TestApply_LengthMismatch(t *testing.T) {
	d, err := Parse(strings.NewReader(`<code>x</code>`))
	require.NoError(t, err)
	require.Error(t, d.Apply(nil))
}
