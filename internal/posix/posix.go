// Package posix implements lexical POSIX path manipulation: splitting a
// path into components, normalizing "." and ".." segments, joining,
// resolving against a working directory, and relativizing one path against
// another. It never touches the filesystem; everything is pure string work
// on the input, so every function is safe to call concurrently.
package posix

import "strings"

const (
	// Sep separates the segments of a path.
	Sep = "/"
	// Delimiter separates the entries of path list variables such as $PATH.
	Delimiter = ":"
)

// Path is the structured decomposition of a path string produced by Parse.
// Base is the final segment including its extension; Name is Base with the
// extension removed; Dir includes the root.
type Path struct {
	Root string `json:"root"`
	Dir  string `json:"dir"`
	Base string `json:"base"`
	Ext  string `json:"ext"`
	Name string `json:"name"`
}

// IsAbsolute reports whether p begins with a slash.
func IsAbsolute(p string) bool {
	return len(p) > 0 && p[0] == '/'
}

// Normalize resolves "." and ".." segments and collapses repeated slashes,
// purely lexically. A trailing slash on a non-empty result is preserved,
// and a relative path that normalizes to nothing becomes ".".
func Normalize(p string) string {
	abs := IsAbsolute(p)
	trailing := strings.HasSuffix(p, "/")

	segs := normalizeSegments(strings.Split(p, "/"), !abs)
	out := strings.Join(segs, "/")

	if out == "" && !abs {
		out = "."
	}
	if out != "" && trailing {
		out += "/"
	}
	if abs {
		out = "/" + out
	}
	return out
}

// Join concatenates the given parts with slashes, skipping empty parts, and
// normalizes the result. Joining nothing yields ".".
func Join(parts ...string) string {
	joined := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if joined == "" {
			joined = p
		} else {
			joined += "/" + p
		}
	}
	return Normalize(joined)
}

// Dirname returns everything before the final segment of p, or "." when p
// has no directory part at all.
func Dirname(p string) (string, error) {
	parts, err := splitPath(p)
	if err != nil {
		return "", err
	}
	root, dir := parts[0], parts[1]
	if root == "" && dir == "" {
		return ".", nil
	}
	if dir != "" {
		// Trim the trailing slash the splitter keeps on dir.
		dir = dir[:len(dir)-1]
	}
	return root + dir, nil
}

// Basename returns the final segment of p. A non-empty suffix is stripped
// when the segment ends with it, so Basename("a/b.txt", ".txt") is "b".
func Basename(p, suffix string) (string, error) {
	parts, err := splitPath(p)
	if err != nil {
		return "", err
	}
	base := parts[2]
	if suffix != "" && strings.HasSuffix(base, suffix) {
		base = base[:len(base)-len(suffix)]
	}
	return base, nil
}

// Extname returns the extension of the final segment of p, including the
// leading dot, or "" when there is none. Leading dots never start an
// extension: Extname(".gitignore") is "".
func Extname(p string) (string, error) {
	parts, err := splitPath(p)
	if err != nil {
		return "", err
	}
	return parts[3], nil
}

// Parse decomposes p into its root, dir, base, ext, and name components.
func Parse(p string) (Path, error) {
	parts, err := splitPath(p)
	if err != nil {
		return Path{}, err
	}
	root, dir, base, ext := parts[0], parts[1], parts[2], parts[3]
	if dir != "" {
		dir = dir[:len(dir)-1]
	}
	return Path{
		Root: root,
		Dir:  root + dir,
		Base: base,
		Ext:  ext,
		Name: base[:len(base)-len(ext)],
	}, nil
}

// Format assembles a path string from a parsed record: Dir + Sep + Base
// when Dir is set, otherwise just Base. The Root field is never read back,
// so a record carrying only Root and Base formats to the bare base. Parse
// always fills Dir for rooted paths, so records round-trip regardless.
func Format(p Path) string {
	if p.Dir != "" {
		return p.Dir + Sep + p.Base
	}
	return p.Base
}
