package cmd

import (
	"fmt"

	"github.com/rowantrollope/pathkit/internal/posix"
)

func (r *Router) handleDirname(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("dirname: missing operand")
	}

	for _, arg := range args {
		dir, err := posix.Dirname(arg)
		if err != nil {
			return fmt.Errorf("dirname: %w", err)
		}
		r.Formatter.PrintString(dir)
	}
	return nil
}

func (r *Router) handleBasename(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("basename: expected <path> [suffix]")
	}

	suffix := ""
	if len(args) == 2 {
		suffix = args[1]
	}
	base, err := posix.Basename(args[0], suffix)
	if err != nil {
		return fmt.Errorf("basename: %w", err)
	}
	r.Formatter.PrintString(base)
	return nil
}

func (r *Router) handleExtname(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("extname: missing operand")
	}

	for _, arg := range args {
		ext, err := posix.Extname(arg)
		if err != nil {
			return fmt.Errorf("extname: %w", err)
		}
		r.Formatter.PrintString(ext)
	}
	return nil
}
