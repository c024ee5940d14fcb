package block

import "strconv"

// contentHash computes a cheap 32-bit polynomial rolling hash of the block
// content, base-36 encoded. The hash identifies block content across
// re-parses; it is informational and not a change-detection gate.
func contentHash(content string) string {
	var h uint32
	for i := 0; i < len(content); i++ {
		h = h*31 + uint32(content[i])
	}
	return strconv.FormatUint(uint64(h), 36)
}
