package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// styles holds color formatters for REPL output.
type styles struct {
	result    *color.Color
	syntaxErr *color.Color
	evalErr   *color.Color
}

// newStyles creates color formatters. out controls the styles for standard
// output (results and syntax errors) and errs the style for evaluation errors,
// which go to standard error. false gives plain text regardless of what the
// color package detects about the terminal.
func newStyles(out, errs bool) *styles {
	s := &styles{
		result:    color.New(color.Bold, color.FgHiGreen),
		syntaxErr: color.New(color.FgYellow),
		evalErr:   color.New(color.FgRed),
	}
	setColor(s.result, out)
	setColor(s.syntaxErr, out)
	setColor(s.evalErr, errs)
	return s
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// colorEnabled reports whether output to f should be colored: f must be a
// terminal and NO_COLOR must be unset.
func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
