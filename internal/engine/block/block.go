// Package block classifies markdown source into an ordered sequence of
// typed, range-stamped blocks. Blocks are the atomic unit of editor/preview
// synchronization: the set of block ranges, ordered by StartLine, exactly
// covers all non-blank lines of the document with no gaps and no overlaps.
package block

import "fmt"

// Kind represents the type of a block.
type Kind int

const (
	KindParagraph      Kind = iota // Plain text run
	KindHeading                    // # .. ###### headings
	KindCode                       // Fenced code block
	KindList                       // Bulleted or numbered list
	KindBlockquote                 // > quoted lines
	KindTable                      // Pipe-delimited table rows
	KindHorizontalRule             // ---, ***, ___
	KindImage                      // A line that is only an image reference
)

// String returns the kind name as it appears in block IDs.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindCode:
		return "code"
	case KindList:
		return "list"
	case KindBlockquote:
		return "blockquote"
	case KindTable:
		return "table"
	case KindHorizontalRule:
		return "horizontal-rule"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Block is a contiguous, typed span of source lines.
type Block struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"-"`
	Type      string `json:"type"`
	Level     int    `json:"level,omitempty"` // heading depth 1-6, headings only
	Content   string `json:"content"`         // newline-joined raw text of the span
	StartLine int    `json:"start_line"`      // 1-based, inclusive
	EndLine   int    `json:"end_line"`        // 1-based, inclusive
	Hash      string `json:"hash"`
}

// LineCount returns the number of source lines the block spans.
func (b Block) LineCount() int {
	return b.EndLine - b.StartLine + 1
}

// Contains reports whether the 1-based line falls inside the block's range.
func (b Block) Contains(line int) bool {
	return line >= b.StartLine && line <= b.EndLine
}

// blockID derives the parse-order identifier for a block. IDs are stable
// within one parse and best-effort stable across re-parses of structurally
// similar documents, never guaranteed.
func blockID(counter int, kind Kind, level int) string {
	if kind == KindHeading {
		return fmt.Sprintf("block-%d-%s%d", counter, kind, level)
	}
	return fmt.Sprintf("block-%d-%s", counter, kind)
}
