package cmd

import "fmt"

func (r *Router) handleRelative(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("relative: expected <from> <to>")
	}

	r.Formatter.PrintString(r.Resolver().Relative(args[0], args[1]))
	return nil
}
