package posix

import (
	"os"
	"strings"
)

// Resolver resolves relative paths against a working directory. The Getwd
// supplier is consulted at most once per call and must return an absolute
// path; anything else falls back to "/".
type Resolver struct {
	Getwd func() string
}

// NewResolver creates a Resolver backed by the given working-directory
// supplier. A nil supplier uses the process working directory.
func NewResolver(getwd func() string) *Resolver {
	if getwd == nil {
		getwd = processWd
	}
	return &Resolver{Getwd: getwd}
}

func processWd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "/"
	}
	return wd
}

func (r *Resolver) wd() string {
	if r.Getwd == nil {
		return processWd()
	}
	wd := r.Getwd()
	if !IsAbsolute(wd) {
		return "/"
	}
	return wd
}

// Resolve builds an absolute path from parts, processing them right to
// left: each part is prepended until an absolute one is found, with the
// working directory as the final fallback. Empty parts are skipped. The
// result is normalized and is always absolute once the working directory
// is.
func (r *Resolver) Resolve(parts ...string) string {
	resolved := ""
	abs := false
	for i := len(parts) - 1; i >= -1 && !abs; i-- {
		var p string
		if i >= 0 {
			p = parts[i]
		} else {
			p = r.wd()
		}
		if p == "" {
			continue
		}
		resolved = p + "/" + resolved
		abs = p[0] == '/'
	}

	segs := normalizeSegments(strings.Split(resolved, "/"), !abs)
	out := strings.Join(segs, "/")
	if abs {
		out = "/" + out
	}
	if out == "" {
		out = "."
	}
	return out
}

// Relative computes the path that, joined onto from, reaches to. Both
// inputs are resolved to absolute form first; the answer walks up out of
// from with ".." segments and then down into to. Identical paths yield "".
func (r *Resolver) Relative(from, to string) string {
	f := trimEmpty(strings.Split(r.Resolve(from)[1:], "/"))
	t := trimEmpty(strings.Split(r.Resolve(to)[1:], "/"))

	n := len(f)
	if len(t) < n {
		n = len(t)
	}
	common := n
	for i := 0; i < n; i++ {
		if f[i] != t[i] {
			common = i
			break
		}
	}

	out := make([]string, 0, len(f)-common+len(t)-common)
	for i := common; i < len(f); i++ {
		out = append(out, "..")
	}
	out = append(out, t[common:]...)
	return strings.Join(out, "/")
}

// trimEmpty strips empty segments from both ends of segs, as produced by
// slashes at the path boundaries.
func trimEmpty(segs []string) []string {
	start := 0
	for start < len(segs) && segs[start] == "" {
		start++
	}
	end := len(segs)
	for end > start && segs[end-1] == "" {
		end--
	}
	return segs[start:end]
}
