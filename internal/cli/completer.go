package cli

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rowantrollope/pathkit/internal/cmd"
)

// NewCompleter creates a tab completer for the REPL.
func NewCompleter(router *cmd.Router) *Completer {
	return &Completer{router: router}
}

// Completer provides tab completion for the REPL. Only command names are
// completed: arguments are arbitrary path strings with nothing to look up.
type Completer struct {
	router *cmd.Router
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	parts := strings.Fields(lineStr)

	if len(parts) == 0 || (len(parts) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(parts) == 1 {
			prefix = parts[0]
		}
		return c.completeCommand(prefix), len(prefix)
	}

	return nil, 0
}

func (c *Completer) completeCommand(prefix string) [][]rune {
	var candidates []string
	for _, name := range c.router.CommandNames() {
		if strings.HasPrefix(name, strings.ToLower(prefix)) {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)

	result := make([][]rune, len(candidates))
	for i, name := range candidates {
		suffix := name[len(prefix):]
		result[i] = []rune(suffix + " ")
	}
	return result
}

// Ensure Completer satisfies the readline.AutoCompleter interface.
var _ readline.AutoCompleter = (*Completer)(nil)
