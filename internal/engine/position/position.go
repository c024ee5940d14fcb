// Package position converts editor cursor coordinates into positions
// relative to the block containing them.
package position

import (
	"strings"

	"github.com/colonyops/marksync/internal/engine/block"
)

// Position locates a cursor inside a block. It is ephemeral: recomputed per
// cursor event and never persisted.
type Position struct {
	BlockID    string
	Offset     int     // character offset into the block's content
	Percentage float64 // Offset / len(content), clamped to [0, 1]
}

// Locate maps a 0-based (line, column) cursor onto the block containing it.
//
// A miss is an expected, non-exceptional outcome: the cursor may sit on a
// blank separator line, or the block list may be stale relative to the live
// document. Callers treat false as "skip this sync".
func Locate(blocks []block.Block, line, column int) (Position, bool) {
	target := line + 1 // blocks use 1-based lines

	for _, b := range blocks {
		// Ranges are non-overlapping by construction, first match wins.
		if !b.Contains(target) {
			continue
		}

		contentLines := strings.Split(b.Content, "\n")
		lineInBlock := target - b.StartLine
		if lineInBlock >= len(contentLines) {
			// Stale block list relative to the live document.
			return Position{}, false
		}

		offset := column
		for i := 0; i < lineInBlock; i++ {
			offset += len(contentLines[i]) + 1 // +1 for the joining newline
		}

		percentage := 0.0
		if len(b.Content) > 0 {
			percentage = float64(offset) / float64(len(b.Content))
		}
		if percentage > 1 {
			percentage = 1
		}

		return Position{BlockID: b.ID, Offset: offset, Percentage: percentage}, true
	}

	return Position{}, false
}
