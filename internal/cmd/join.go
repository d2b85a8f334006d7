package cmd

import (
	"github.com/rowantrollope/pathkit/internal/posix"
)

func (r *Router) handleJoin(args []string) error {
	// Joining nothing is ".", same as the library.
	r.Formatter.PrintString(posix.Join(args...))
	return nil
}
