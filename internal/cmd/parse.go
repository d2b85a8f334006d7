package cmd

import (
	"fmt"
	"strings"

	"github.com/rowantrollope/pathkit/internal/posix"
)

func (r *Router) handleParse(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("parse: missing operand")
	}

	for _, arg := range args {
		rec, err := posix.Parse(arg)
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		r.Formatter.PrintPath(rec)
	}
	return nil
}

func (r *Router) handleFormat(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("format: missing field operands (e.g. dir=/a base=b.txt)")
	}

	var p posix.Path
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("format: %q is not a field=value operand", arg)
		}
		switch key {
		case "root":
			p.Root = value
		case "dir":
			p.Dir = value
		case "base":
			p.Base = value
		case "ext":
			p.Ext = value
		case "name":
			p.Name = value
		default:
			return fmt.Errorf("format: unknown field %q", key)
		}
	}

	r.Formatter.PrintString(posix.Format(p))
	return nil
}
