package posix

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMalformedSplit indicates the path splitter did not produce its four
// components. The split pattern matches any string, so this should be
// unreachable; operations guard for it rather than assume.
var ErrMalformedSplit = errors.New("malformed path split")

// splitPathRe decomposes a path into root, dir (with its trailing slash),
// base, and extension in one anchored match. A base of one or two leading
// dots with no further dot (".", "..", ".hidden") is indivisible and
// carries no extension. Trailing slashes are excluded from every group.
var splitPathRe = regexp.MustCompile(`^(/?|)([\s\S]*?)((?:\.{1,2}|[^/]+?|)(\.[^./]*|))(?:[/]*)$`)

// splitPath returns the [root, dir, base, ext] decomposition of p.
func splitPath(p string) ([]string, error) {
	m := splitPathRe.FindStringSubmatch(p)
	if len(m) != 5 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedSplit, p)
	}
	return m[1:], nil
}
