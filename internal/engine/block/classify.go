package block

import (
	"regexp"
	"strings"
)

// Class is the result of classifying a single source line.
type Class struct {
	Kind  Kind
	Level int // heading depth, headings only
}

var (
	listItemRe  = regexp.MustCompile(`^\s*([-*+]|\d+\.)\s+`)
	imageLineRe = regexp.MustCompile(`^\s*!\[[^\]]*\]\([^)]*\)\s*$`)
)

// Classify determines the block kind a line belongs to. Checks run in
// priority order, so a line that could match several patterns gets the
// highest-priority kind. The next line is consulted only by the table
// heuristic (one-line lookahead); pass "" at end of input.
func Classify(line, next string) Class {
	if level := HeadingLevel(line); level > 0 {
		return Class{Kind: KindHeading, Level: level}
	}
	if IsFence(line) {
		return Class{Kind: KindCode}
	}
	if IsListItem(line) {
		return Class{Kind: KindList}
	}
	if IsBlockquote(line) {
		return Class{Kind: KindBlockquote}
	}
	if IsTableRow(line, next) {
		return Class{Kind: KindTable}
	}
	if IsHorizontalRule(line) {
		return Class{Kind: KindHorizontalRule}
	}
	if IsImageLine(line) {
		return Class{Kind: KindImage}
	}
	return Class{Kind: KindParagraph}
}

// HeadingLevel returns the heading depth (1-6) for a leading # run followed
// by a space, or 0 when the line is not a heading.
func HeadingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level >= len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

// IsFence reports whether the line is a code fence delimiter on its own
// line. Only the delimiter itself is recognized; fence state is not tracked
// across lines, so interior lines classify by their own shape.
func IsFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// IsListItem reports whether the line starts a bulleted or numbered list
// item.
func IsListItem(line string) bool {
	return listItemRe.MatchString(line)
}

// IsBlockquote reports whether the line is a quoted line.
func IsBlockquote(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), ">")
}

// IsTableRow reports whether the line looks like a table row: it contains a
// column separator and the adjacent line does too. This is a lookahead
// heuristic, not table grammar; a lone line with a pipe stays a paragraph.
func IsTableRow(line, next string) bool {
	return strings.Contains(line, "|") && strings.Contains(next, "|")
}

// IsHorizontalRule reports whether the line is a thematic break: three or
// more repeated rule characters and nothing else.
func IsHorizontalRule(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	ch := trimmed[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return false
		}
	}
	return true
}

// IsImageLine reports whether the line is only an image reference.
func IsImageLine(line string) bool {
	return imageLineRe.MatchString(line)
}

// TrimListMarker removes a leading bullet or number marker from a line.
// Lines without a marker come back unchanged.
func TrimListMarker(line string) string {
	if loc := listItemRe.FindStringIndex(line); loc != nil {
		return line[loc[1]:]
	}
	return line
}

// TrimQuoteMarker removes leading > markers from a quoted line.
func TrimQuoteMarker(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for strings.HasPrefix(trimmed, ">") {
		trimmed = strings.TrimLeft(trimmed[1:], " \t")
	}
	return trimmed
}
