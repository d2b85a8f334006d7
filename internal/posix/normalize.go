package posix

// normalizeSegments collapses empty, ".", and ".." segments in a single
// left-to-right pass. A ".." cancels the preceding real segment when there
// is one; otherwise it is kept only when allowAboveRoot is true. Relative
// paths may climb above their implicit start, so callers pass true for
// them; absolute paths cannot climb above "/" and pass false.
func normalizeSegments(segs []string, allowAboveRoot bool) []string {
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch seg {
		case "", ".":
			// Redundant, drop.
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else if allowAboveRoot {
				out = append(out, "..")
			}
		default:
			out = append(out, seg)
		}
	}
	return out
}
