package block

import "strings"

// Parser builds the block list for a document. A Parser carries no state
// between calls; the full block list is rebuilt on every parse.
type Parser struct{}

// NewParser creates a block parser.
func NewParser() *Parser {
	return &Parser{}
}

// builder accumulates lines into the in-progress block during a scan.
type builder struct {
	active    bool
	class     Class
	lines     []string
	startLine int
}

func (a *builder) open(class Class, line string, lineNo int) {
	a.active = true
	a.class = class
	a.lines = append(a.lines[:0], line)
	a.startLine = lineNo
}

func (a *builder) append(line string) {
	a.lines = append(a.lines, line)
}

// continues reports whether a line of the given class belongs to the open
// block: same kind, and for headings the same depth. Two adjacent headings
// at different levels are distinct blocks.
func (a *builder) continues(class Class) bool {
	if !a.active || a.class.Kind != class.Kind {
		return false
	}
	if a.class.Kind == KindHeading {
		return a.class.Level == class.Level
	}
	return true
}

func (a *builder) finish(counter, endLine int) Block {
	content := strings.Join(a.lines, "\n")
	b := Block{
		ID:        blockID(counter, a.class.Kind, a.class.Level),
		Kind:      a.class.Kind,
		Type:      a.class.Kind.String(),
		Level:     a.class.Level,
		Content:   content,
		StartLine: a.startLine,
		EndLine:   endLine,
		Hash:      contentHash(content),
	}
	a.active = false
	a.lines = a.lines[:0]
	return b
}

// Parse classifies content into an ordered block list.
//
// The scan is a single top-to-bottom pass with one accumulator. Each
// non-blank line is classified; a new block starts whenever the detected
// class no longer continues the accumulator. A blank line always closes the
// accumulator, so blank lines are separators belonging to no block. The
// scan is bounded by the line count and terminates on any input.
//
// Fence interiors are a known approximation: a line matching another
// pattern while logically inside a fenced block splits it, and code lines
// that resemble nothing else extend it only because same-kind lines append.
func (p *Parser) Parse(content string) []Block {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	var (
		blocks  []Block
		acc     builder
		counter int
	)

	closeBlock := func(endLine int) {
		if !acc.active {
			return
		}
		blocks = append(blocks, acc.finish(counter, endLine))
		counter++
	}

	for i, line := range lines {
		lineNo := i + 1 // blocks are stamped with 1-based lines

		if strings.TrimSpace(line) == "" {
			closeBlock(lineNo - 1)
			continue
		}

		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		class := Classify(line, next)
		if acc.continues(class) {
			acc.append(line)
			continue
		}

		closeBlock(lineNo - 1)
		acc.open(class, line, lineNo)
	}

	closeBlock(len(lines))

	return blocks
}
