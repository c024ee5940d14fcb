package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/marksync/internal/engine/block"
	"github.com/colonyops/marksync/internal/engine/preview"
)

func parseBlocks(t *testing.T, content string) []block.Block {
	t.Helper()
	return block.NewParser().Parse(content)
}

func renderPane(t *testing.T, content string) *Pane {
	t.Helper()
	pane, err := NewRenderer("notty").Render(parseBlocks(t, content), 60)
	require.NoError(t, err)
	return pane
}

func TestRender_ElementPerBlock(t *testing.T) {
	pane := renderPane(t, "# Title\n\nSome paragraph.\n\n- item1\n- item2\n")

	els := pane.Elements()
	require.Len(t, els, 3)
	assert.Equal(t, "h1", els[0].Tag())
	assert.Equal(t, "p", els[1].Tag())
	assert.Equal(t, "ul", els[2].Tag())
}

func TestTagFor(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		tag  string
	}{
		{"heading level", "### Deep", "h3"},
		{"code fence", "```", "pre"},
		{"ordered list", "1. first\n2. second", "ol"},
		{"unordered list", "- first\n- second", "ul"},
		{"blockquote", "> wise words", "blockquote"},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "table"},
		{"rule", "---", "hr"},
		{"image", "![alt](pic.png)", "img"},
		{"paragraph", "plain text", "p"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blocks := parseBlocks(t, tc.doc)
			require.Len(t, blocks, 1)
			assert.Equal(t, tc.tag, tagFor(blocks[0]))
		})
	}
}

func TestRender_RectsOrderedAndDisjoint(t *testing.T) {
	pane := renderPane(t, "# Title\n\nFirst paragraph.\n\nSecond paragraph.\n\n## End\n")

	els := pane.Elements()
	require.Len(t, els, 4)

	prevBottom := -1.0
	for _, el := range els {
		rect := pane.ElementRect(el)
		assert.Greater(t, rect.Height, 0.0)
		assert.Greater(t, rect.Top, prevBottom)
		prevBottom = rect.Bottom()
	}

	last := pane.ElementRect(els[len(els)-1])
	assert.LessOrEqual(t, last.Bottom(), float64(pane.LineCount()))
}

func TestPlainText_InlineMarkupResolved(t *testing.T) {
	blocks := parseBlocks(t, "## Some **bold** heading")
	require.Len(t, blocks, 1)

	got := NewRenderer("notty").plainText(blocks[0])
	assert.Equal(t, "Some bold heading", got)
}

func TestPlainText_CodeKeptVerbatim(t *testing.T) {
	b := block.Block{
		Kind:    block.KindCode,
		Content: "```go\nfmt.Println(\"hi\")\n```",
	}

	got := NewRenderer("notty").plainText(b)
	assert.Equal(t, `fmt.Println("hi")`, got)
}

func TestRender_ElementTextMatchesOwnBlock(t *testing.T) {
	doc := "# A real title\n\nA paragraph with some distinct words.\n\n- item1\n- item2\n\n> quoted wisdom\n"
	blocks := parseBlocks(t, doc)
	pane, err := NewRenderer("notty").Render(blocks, 60)
	require.NoError(t, err)

	els := pane.Elements()
	require.Len(t, els, len(blocks))
	for i, b := range blocks {
		assert.True(t, preview.ContentMatches(b, els[i].Text()),
			"block %s should match its own element text %q", b.ID, els[i].Text())
	}
}

func TestQueryByTag_DocumentOrder(t *testing.T) {
	pane := renderPane(t, "# One\n\npara\n\n## Two\n")

	headings := pane.QueryByTag("h1", "h2")
	require.Len(t, headings, 2)
	assert.Equal(t, "h1", headings[0].Tag())
	assert.Equal(t, "h2", headings[1].Tag())

	assert.Empty(t, pane.QueryByTag("table"))
}

func TestTakeScroll(t *testing.T) {
	pane := renderPane(t, "# Title\n")

	_, ok := pane.TakeScroll()
	assert.False(t, ok)

	pane.ScrollTo(12.5)
	got, ok := pane.TakeScroll()
	require.True(t, ok)
	assert.Equal(t, 12.5, got)

	_, ok = pane.TakeScroll()
	assert.False(t, ok, "take drains the pending target")

	pane.ScrollTo(-4)
	got, ok = pane.TakeScroll()
	require.True(t, ok)
	assert.Equal(t, 0.0, got, "negative offsets clamp to the top")
}

func TestSetViewport(t *testing.T) {
	pane := renderPane(t, "# Title\n")

	pane.SetViewport(3, 20)
	assert.Equal(t, preview.Rect{Top: 3, Height: 20}, pane.Viewport())
}

func TestRender_EmptyBlockList(t *testing.T) {
	pane, err := NewRenderer("notty").Render(nil, 60)
	require.NoError(t, err)

	assert.Empty(t, pane.Elements())
	assert.Equal(t, "", pane.Content())
	assert.Equal(t, 0, pane.LineCount())
}

func TestRender_ContentJoinsAllBlocks(t *testing.T) {
	pane := renderPane(t, "# Title\n\nBody text here.\n")

	content := pane.Content()
	assert.Contains(t, content, "Title")
	assert.Contains(t, content, "Body text here.")
	assert.Equal(t, pane.LineCount(), strings.Count(content, "\n")+1)
}
