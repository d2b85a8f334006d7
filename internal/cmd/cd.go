package cmd

import "fmt"

func (r *Router) handleCd(args []string) error {
	var target string
	if len(args) == 0 {
		target = "/"
	} else if args[0] == "-" {
		if r.State.PrevDir == "" {
			return fmt.Errorf("cd: OLDPWD not set")
		}
		target = r.State.PrevDir
	} else {
		// Resolve already normalizes and the result is always absolute,
		// so there is nothing to check: the session directory is lexical
		// state, not a real filesystem location.
		target = r.Resolver().Resolve(args[0])
	}

	r.State.PrevDir = r.State.Cwd
	r.State.Cwd = target
	return nil
}

func (r *Router) handlePwd(args []string) error {
	r.Formatter.PrintString(r.State.Cwd)
	return nil
}
