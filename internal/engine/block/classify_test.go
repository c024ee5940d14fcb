package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		line  string
		level int
	}{
		{"# Title", 1},
		{"## Section", 2},
		{"###### Deep", 6},
		{"####### Too deep", 0},
		{"#NoSpace", 0},
		{"plain text", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, HeadingLevel(tt.line), "line: %q", tt.line)
	}
}

func TestIsFence(t *testing.T) {
	assert.True(t, IsFence("```"))
	assert.True(t, IsFence("```go"))
	assert.True(t, IsFence("~~~"))
	assert.True(t, IsFence("  ```"))
	assert.False(t, IsFence("`inline`"))
	assert.False(t, IsFence("code"))
}

func TestIsListItem(t *testing.T) {
	assert.True(t, IsListItem("- item"))
	assert.True(t, IsListItem("* item"))
	assert.True(t, IsListItem("+ item"))
	assert.True(t, IsListItem("1. item"))
	assert.True(t, IsListItem("  12. nested"))
	assert.False(t, IsListItem("-no space"))
	assert.False(t, IsListItem("---"))
	assert.False(t, IsListItem("1.5 is a number"))
}

func TestIsBlockquote(t *testing.T) {
	assert.True(t, IsBlockquote("> quoted"))
	assert.True(t, IsBlockquote("  > indented quote"))
	assert.False(t, IsBlockquote("not > quoted"))
}

func TestIsTableRow(t *testing.T) {
	// Requires the adjacent line to also contain a separator.
	assert.True(t, IsTableRow("| a | b |", "|---|---|"))
	assert.False(t, IsTableRow("| lone pipe row |", "plain text"))
	assert.False(t, IsTableRow("no pipes", "|---|"))
	assert.False(t, IsTableRow("| a |", ""))
}

func TestIsHorizontalRule(t *testing.T) {
	assert.True(t, IsHorizontalRule("---"))
	assert.True(t, IsHorizontalRule("*****"))
	assert.True(t, IsHorizontalRule("___"))
	assert.False(t, IsHorizontalRule("--"))
	assert.False(t, IsHorizontalRule("-*-"))
	assert.False(t, IsHorizontalRule("--- text"))
}

func TestIsImageLine(t *testing.T) {
	assert.True(t, IsImageLine("![alt](image.png)"))
	assert.True(t, IsImageLine("  ![](https://example.com/x.png)  "))
	assert.False(t, IsImageLine("text ![alt](image.png)"))
	assert.False(t, IsImageLine("[link](page.md)"))
}

func TestClassify_PriorityOrder(t *testing.T) {
	// A heading containing a pipe is still a heading even when the next
	// line would satisfy the table lookahead.
	c := Classify("# a | b", "| x | y |")
	assert.Equal(t, KindHeading, c.Kind)
	assert.Equal(t, 1, c.Level)

	// A quoted list marker is a blockquote, not a list.
	assert.Equal(t, KindBlockquote, Classify("> - item", "").Kind)

	// Unclassifiable lines fall through to paragraph.
	assert.Equal(t, KindParagraph, Classify("just words", "").Kind)
}
