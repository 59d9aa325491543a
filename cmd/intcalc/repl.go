package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/intcalc"
)

const prompt = ">>> "

// lineReader reads one line of input after showing a prompt. At the end of
// the input, the error is io.EOF.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

// historian is a lineReader that remembers lines for recall.
type historian interface {
	AppendHistory(item string)
}

var _ historian = (*liner.State)(nil)

// maxLine is the longest line of piped input that is evaluated.
const maxLine = 1 << 20

// errLineTooLong is returned by scanReader for a line longer than its limit.
// The rest of the line is discarded, so reading can continue.
var errLineTooLong = errors.New("line too long")

// scanReader is a lineReader for input that isn't a terminal.
type scanReader struct {
	r   *bufio.Reader
	w   io.Writer
	max int
}

func newScanReader(in io.Reader, w io.Writer) *scanReader {
	return &scanReader{r: bufio.NewReader(in), w: w, max: maxLine}
}

func (r *scanReader) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(r.w, prompt); err != nil {
		return "", err
	}
	var (
		b    []byte
		long bool
	)
	for {
		// ReadLine returns the final fragment of a line before reporting
		// io.EOF, so an error here never loses part of a line.
		chunk, more, err := r.r.ReadLine()
		if err != nil {
			return "", err
		}
		if !long && len(b)+len(chunk) > r.max {
			long = true
			b = nil
		}
		if !long {
			b = append(b, chunk...)
		}
		if !more {
			break
		}
	}
	if long {
		return "", errLineTooLong
	}
	return string(b), nil
}

type repl struct {
	in     lineReader
	out    io.Writer
	errs   io.Writer
	styles *styles
}

// run evaluates lines until the end of the input. Only a failure to read
// input is returned as an error; bad expressions are reported and skipped.
func (r *repl) run() error {
	for {
		line, err := r.in.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl-C abandons the line being edited.
			continue
		case errors.Is(err, errLineTooLong):
			fmt.Fprintln(r.errs, r.styles.evalErr.Sprint("Input error: line too long, skipped."))
			continue
		default:
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if h, ok := r.in.(historian); ok {
			h.AppendHistory(line)
		}
		r.line(line)
	}
}

// line parses and evaluates one line of input and prints the outcome.
// Syntax errors go to out and evaluation errors go to errs.
func (r *repl) line(src string) {
	e, err := intcalc.Parse(src)
	if err != nil {
		for _, msg := range intcalc.FormatError(src, err) {
			fmt.Fprintln(r.out, r.styles.syntaxErr.Sprint(msg))
		}
		return
	}
	v, err := e.Eval()
	if err != nil {
		for _, msg := range intcalc.FormatError(src, err) {
			fmt.Fprintln(r.errs, r.styles.evalErr.Sprint(msg))
		}
		return
	}
	fmt.Fprintln(r.out, "Result: "+r.styles.result.Sprint(v))
}
