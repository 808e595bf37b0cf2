// Package prompt asks the user for a yes/no confirmation
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"nmclean/internal/config"
)

// Confirmer reads answers from an input stream, one line per question.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Confirmer reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm asks message and reports whether the answer equals expected,
// ignoring case and surrounding whitespace.
//
// With opts.Yes it returns true without printing or reading anything. With
// opts.Quiet the question is not printed but an answer is still read. Reaching
// the end of input is not an error: whatever was read so far is the answer.
func (c *Confirmer) Confirm(message, expected string, opts config.Options) (bool, error) {
	if opts.Yes {
		return true, nil
	}

	if !opts.Quiet {
		fmt.Fprintf(c.out, "%s ", strings.TrimRight(message, " \t"))
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(line), expected), nil
}
