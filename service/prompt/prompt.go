// Package prompt asks the operator questions over a reader/writer pair. It
// backs the interactive approval of verbs when the policy mode is ask.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/viant/pixelterm/policy"
)

// Prompter reads answers line by line
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	mu     sync.Mutex
}

// New returns a Prompter that reads from stdin and writes to stdout.
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO lets callers override the input/output streams.
func NewWithIO(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints message and returns the trimmed answer or defaultValue for an empty line
func (p *Prompter) Ask(ctx context.Context, message, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	prompt := strings.TrimSpace(message)
	if prompt == "" {
		prompt = "?"
	}
	fmt.Fprint(p.out, prompt+" ")

	answer, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = defaultValue
	}
	return answer, nil
}

// ReadLine returns the next line without its terminator, io.EOF once the
// input is exhausted
func (p *Prompter) ReadLine() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	line, err := p.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

// Confirm asks a yes/no question; anything but y or yes declines
func (p *Prompter) Confirm(ctx context.Context, message string) bool {
	answer, err := p.Ask(ctx, message+" [y/N]", "n")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// Approver returns a policy ask function confirming each command
func (p *Prompter) Approver() policy.AskFunc {
	return func(ctx context.Context, verb, argument string, _ *policy.Policy) bool {
		line := verb
		if argument != "" {
			line += " " + argument
		}
		return p.Confirm(ctx, fmt.Sprintf("Run '%v'?", line))
	}
}
