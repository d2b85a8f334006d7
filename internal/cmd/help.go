package cmd

import "fmt"

var commandHelp = map[string]string{
	"normalize": "normalize path...           Collapse . and .. segments and repeated slashes",
	"join":      "join [part...]              Join parts with / and normalize",
	"resolve":   "resolve [path...]           Resolve right-to-left against the working directory",
	"relative":  "relative from to            Relative path from one location to another",
	"dirname":   "dirname path...             Directory portion of each path",
	"basename":  "basename path [suffix]      Final segment, optionally minus suffix",
	"extname":   "extname path...             Extension of the final segment",
	"parse":     "parse path...               Decompose into root/dir/base/ext/name",
	"format":    "format field=value...       Assemble a path from record fields",
	"abs":       "abs path...                 Whether each path is absolute",
	"cd":        "cd [path]                   Change session directory (cd - for previous)",
	"pwd":       "pwd                         Print session working directory",
	"help":      "help [command]              Show this help",
	"clear":     "clear                       Clear the terminal",
	"exit":      "exit / quit                 Exit the REPL",
}

func (r *Router) handleHelp(args []string) error {
	if len(args) > 0 {
		cmd := args[0]
		if help, ok := commandHelp[cmd]; ok {
			fmt.Fprintln(r.Formatter.Writer, help)
		} else {
			fmt.Fprintf(r.Formatter.Writer, "No help available for '%s'\n", cmd)
		}
		return nil
	}

	fmt.Fprintln(r.Formatter.Writer, "pathkit — POSIX path manipulation")
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Path commands:")
	for _, cmd := range []string{"normalize", "join", "resolve", "relative",
		"dirname", "basename", "extname", "parse", "format", "abs"} {
		fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Session:")
	fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp["cd"])
	fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp["pwd"])
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Other:")
	fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp["help"])
	fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp["clear"])
	fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp["exit"])
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Separator: \"/\"  Delimiter: \":\"")
	return nil
}

func (r *Router) handleClear(args []string) error {
	fmt.Fprint(r.Formatter.Writer, "\033[H\033[2J")
	return nil
}
