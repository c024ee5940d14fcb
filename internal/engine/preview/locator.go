package preview

import (
	"fmt"
	"strings"

	"github.com/colonyops/marksync/internal/engine/block"
	"github.com/colonyops/marksync/internal/engine/position"
)

// matchProbeLen is how much of a block's normalized text must appear in a
// candidate element's text for a content match.
const matchProbeLen = 50

// blockTags lists every block-level tag a surface can produce, used when
// scanning the whole pane rather than one block's kind.
var blockTags = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "pre", "code", "ul", "ol", "blockquote", "table", "hr", "img",
}

// TagsFor returns the rendered tags a block of the given kind can appear
// as. The default for unrecognized kinds is the generic text-block tag.
func TagsFor(b block.Block) []string {
	switch b.Kind {
	case block.KindHeading:
		return []string{fmt.Sprintf("h%d", b.Level)}
	case block.KindCode:
		return []string{"pre", "code"}
	case block.KindList:
		return []string{"ul", "ol"}
	case block.KindBlockquote:
		return []string{"blockquote"}
	case block.KindTable:
		return []string{"table"}
	case block.KindHorizontalRule:
		return []string{"hr"}
	case block.KindImage:
		return []string{"img"}
	default:
		return []string{"p"}
	}
}

// AllBlockTags returns the full block-level tag set in a fresh slice.
func AllBlockTags() []string {
	tags := make([]string, len(blockTags))
	copy(tags, blockTags)
	return tags
}

// ContentMatches reports whether a rendered element's text plausibly came
// from the block: the element text must contain the leading probe of the
// block's text with its markup markers stripped. Both sides are compared
// with whitespace runs collapsed, since rendering rewraps lines. Blocks
// with identical leading text are not disambiguated.
func ContentMatches(b block.Block, elementText string) bool {
	probe := matchProbe(b)
	if probe == "" {
		// Marker-only blocks (rules, bare fences) carry no comparable
		// text; treat any candidate of the right kind as a match.
		return true
	}
	return strings.Contains(normalizeSpace(elementText), probe)
}

// matchProbe normalizes a block's content down to the text expected to
// survive rendering, truncated to the probe length. Markup markers that
// renderers drop are stripped: heading hashes, code fences, list bullets,
// quote angles.
func matchProbe(b block.Block) string {
	text := b.Content

	switch b.Kind {
	case block.KindHeading:
		text = strings.TrimLeft(text, "#")
	case block.KindCode:
		text = stripFences(text)
	case block.KindList:
		text = mapLines(text, block.TrimListMarker)
	case block.KindBlockquote:
		text = mapLines(text, block.TrimQuoteMarker)
	}

	text = normalizeSpace(text)
	if len(text) > matchProbeLen {
		text = text[:matchProbeLen]
	}
	return text
}

// normalizeSpace collapses all whitespace runs, including newlines, to
// single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func mapLines(content string, f func(string) string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = f(line)
	}
	return strings.Join(lines, "\n")
}

// stripFences removes the opening and closing fence lines from a code
// block's content. Rendered code elements carry only the code itself.
func stripFences(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && block.IsFence(lines[0]) {
		lines = lines[1:]
	}
	if n := len(lines); n > 0 && block.IsFence(lines[n-1]) {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Locate finds the rendered element corresponding to a position's block.
//
// Candidates of the block's kind are tested for content similarity; the
// first match wins. When no candidate matches by content, the first
// element of the expected kind is returned as a same-kind fallback. Only
// when zero elements of the expected kind exist does the lookup miss.
func Locate(blocks []block.Block, pos position.Position, surface Surface) (Element, bool) {
	var target *block.Block
	for i := range blocks {
		if blocks[i].ID == pos.BlockID {
			target = &blocks[i]
			break
		}
	}
	if target == nil {
		return nil, false
	}

	candidates := surface.QueryByTag(TagsFor(*target)...)
	if len(candidates) == 0 {
		return nil, false
	}

	for _, el := range candidates {
		if ContentMatches(*target, el.Text()) {
			return el, true
		}
	}

	// Same kind of thing, even if the text no longer lines up.
	return candidates[0], true
}

// MatchBlock performs the reverse lookup: given a rendered element, find
// the first block whose content matches it. Used on the preview→editor
// path to map the element under the viewport center back to a source line.
func MatchBlock(blocks []block.Block, el Element) (block.Block, bool) {
	for _, b := range blocks {
		if !tagMatchesKind(b, el.Tag()) {
			continue
		}
		if ContentMatches(b, el.Text()) {
			return b, true
		}
	}
	return block.Block{}, false
}

func tagMatchesKind(b block.Block, tag string) bool {
	for _, t := range TagsFor(b) {
		if t == tag {
			return true
		}
	}
	return false
}
