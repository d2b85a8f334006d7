package cmd

import (
	"fmt"

	"github.com/rowantrollope/pathkit/internal/posix"
)

func (r *Router) handleNormalize(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("normalize: missing operand")
	}

	for _, arg := range args {
		r.Formatter.PrintString(posix.Normalize(arg))
	}
	return nil
}

func (r *Router) handleAbs(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("abs: missing operand")
	}

	for _, arg := range args {
		r.Formatter.PrintBool(posix.IsAbsolute(arg))
	}
	return nil
}
