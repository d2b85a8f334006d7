package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rowantrollope/pathkit/internal/posix"
)

// Formatter handles text/JSON/colored output.
type Formatter struct {
	Writer    io.Writer
	ErrWriter io.Writer
	JSON      bool
	Color     bool
}

// NewFormatter creates a new output formatter.
func NewFormatter(jsonMode, colorMode bool) *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		JSON:      jsonMode,
		Color:     colorMode,
	}
}

// Printf prints formatted text to stdout.
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Println prints a line to stdout.
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.Writer, args...)
}

// Errorf prints a formatted error message to stderr.
func (f *Formatter) Errorf(format string, args ...interface{}) {
	if f.Color {
		c := color.New(color.FgRed)
		c.Fprintf(f.ErrWriter, format, args...)
	} else {
		fmt.Fprintf(f.ErrWriter, format, args...)
	}
}

// PrintJSON outputs a value as JSON.
func (f *Formatter) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintString prints a single result string. In JSON mode it is emitted as
// a JSON string, which keeps empty results (such as the relative path from
// a location to itself) visible.
func (f *Formatter) PrintString(s string) {
	if f.JSON {
		f.PrintJSON(s)
		return
	}
	fmt.Fprintln(f.Writer, s)
}

// PrintBool prints a boolean result.
func (f *Formatter) PrintBool(b bool) {
	if f.JSON {
		f.PrintJSON(b)
		return
	}
	fmt.Fprintln(f.Writer, b)
}

// PrintPath prints a parsed path record.
func (f *Formatter) PrintPath(p posix.Path) {
	if f.JSON {
		f.PrintJSON(p)
		return
	}

	fmt.Fprintf(f.Writer, "%s %s\n", f.label("root:"), p.Root)
	fmt.Fprintf(f.Writer, "%s %s\n", f.label(" dir:"), p.Dir)
	fmt.Fprintf(f.Writer, "%s %s\n", f.label("base:"), p.Base)
	fmt.Fprintf(f.Writer, "%s %s\n", f.label(" ext:"), p.Ext)
	fmt.Fprintf(f.Writer, "%s %s\n", f.label("name:"), p.Name)
}

func (f *Formatter) label(s string) string {
	if f.Color {
		return color.New(color.FgCyan).Sprint(s)
	}
	return s
}
