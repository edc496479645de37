package prompt

import (
	"bufio"
	"fmt"
	"io"
)

// LinePrompter implements domain.Prompter over a pair of streams. Each
// Ask blocks for exactly one line of input.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

// Ask writes the prompt and reads one line. An exhausted input stream
// returns io.EOF; the session treats that as fatal rather than looping.
func (p *LinePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Say writes one status line.
func (p *LinePrompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
