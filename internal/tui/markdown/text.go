package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/colonyops/marksync/internal/engine/block"
)

// plainText extracts the text a reader sees from a block's markdown, with
// inline markup resolved. This is what the sync engine's content matching
// compares element text against.
func (r *Renderer) plainText(b block.Block) string {
	source := []byte(b.Content)
	doc := r.md.Parser().Parse(text.NewReader(source))

	var sb strings.Builder
	collectText(doc, source, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n ast.Node, source []byte, sb *strings.Builder) {
	switch n := n.(type) {
	case *ast.Text:
		sb.Write(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			sb.WriteByte('\n')
		}
	case *ast.String:
		sb.Write(n.Value)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(source))
		}
		return
	case *ast.ListItem, *ast.Paragraph, *ast.TextBlock:
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectText(c, source, sb)
	}
}
