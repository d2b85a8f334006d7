package cmd

func (r *Router) handleResolve(args []string) error {
	// With no args this prints the session working directory, resolved.
	r.Formatter.PrintString(r.Resolver().Resolve(args...))
	return nil
}
