package cmd

import (
	"fmt"
	"strings"

	"github.com/rowantrollope/pathkit/internal/config"
	"github.com/rowantrollope/pathkit/internal/output"
	"github.com/rowantrollope/pathkit/internal/posix"
)

// State holds the current session state.
type State struct {
	Cwd     string
	PrevDir string
}

// Router dispatches commands to the appropriate handler.
type Router struct {
	Config    *config.Config
	Formatter *output.Formatter
	State     *State
	handlers  map[string]Handler
}

// Handler is a function that handles a command.
type Handler func(args []string) error

// NewRouter creates a command router with all registered handlers. The
// session working directory starts at the configured one, normalized; a
// non-absolute value degrades to "/".
func NewRouter(cfg *config.Config, formatter *output.Formatter) *Router {
	cwd := posix.Normalize(cfg.WorkingDir())
	if !posix.IsAbsolute(cwd) {
		cwd = "/"
	}
	r := &Router{
		Config:    cfg,
		Formatter: formatter,
		State:     &State{Cwd: cwd},
		handlers:  make(map[string]Handler),
	}
	r.registerHandlers()
	return r
}

func (r *Router) registerHandlers() {
	r.handlers["normalize"] = r.handleNormalize
	r.handlers["join"] = r.handleJoin
	r.handlers["resolve"] = r.handleResolve
	r.handlers["relative"] = r.handleRelative
	r.handlers["dirname"] = r.handleDirname
	r.handlers["basename"] = r.handleBasename
	r.handlers["extname"] = r.handleExtname
	r.handlers["parse"] = r.handleParse
	r.handlers["format"] = r.handleFormat
	r.handlers["abs"] = r.handleAbs
	r.handlers["cd"] = r.handleCd
	r.handlers["pwd"] = r.handlePwd
	r.handlers["help"] = r.handleHelp
	r.handlers["clear"] = r.handleClear
}

// Execute runs a parsed command line.
func (r *Router) Execute(line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	handler, ok := r.handlers[cmd]
	if !ok {
		return fmt.Errorf("unknown command: %s (try 'help')", cmd)
	}
	return handler(args)
}

// IsBuiltin returns true if the command is a registered command.
func (r *Router) IsBuiltin(cmd string) bool {
	_, ok := r.handlers[strings.ToLower(cmd)]
	return ok
}

// CommandNames returns all registered command names.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// Resolver returns a resolver backed by the session working directory.
func (r *Router) Resolver() *posix.Resolver {
	return posix.NewResolver(func() string { return r.State.Cwd })
}
