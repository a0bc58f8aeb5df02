// Package printer renders wire output of the interpreter on a terminal:
// text is printed as is, signals become terminal actions.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/viant/pixelterm/model/response"
)

// ClearScreen moves the cursor home and erases the display
const ClearScreen = "\033[H\033[2J"

// Printer writes rendered output
type Printer struct {
	out io.Writer
}

// New creates a printer writing to out, stdout when nil
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Print renders one wire value
func (p *Printer) Print(value string) error {
	_, err := io.WriteString(p.out, Render(value))
	return err
}

// Render converts one wire value into terminal text
func Render(value string) string {
	resp := response.Decode(value)
	if !resp.IsSignal() {
		if resp.Text == "" {
			return ""
		}
		return resp.Text + "\n"
	}
	if resp.Signal.Kind == response.Clear {
		return ClearScreen
	}
	if resp.Signal.Payload == "" {
		return fmt.Sprintf("[%v]\n", resp.Signal.Kind)
	}
	return fmt.Sprintf("[%v] %v\n", resp.Signal.Kind, resp.Signal.Payload)
}
