package mocks

import (
	"strings"

	"github.com/user/filemanager/pkg/ports"
)

// Console is a scripted ports.Console. Input lines are consumed in order;
// once they run out ReadLine returns ports.ErrInputClosed.
type Console struct {
	input  []string
	output strings.Builder
	reads  int
}

// NewConsole creates a console that will answer with lines.
func NewConsole(lines ...string) *Console {
	return &Console{input: lines}
}

func (c *Console) ReadLine() (string, error) {
	if c.reads >= len(c.input) {
		return "", ports.ErrInputClosed
	}
	line := c.input[c.reads]
	c.reads++
	return line, nil
}

func (c *Console) Prompt(text string) {
	c.output.WriteString(text)
}

func (c *Console) Println(text string) {
	c.output.WriteString(text)
	c.output.WriteString("\n")
}

// Output returns everything printed so far.
func (c *Console) Output() string {
	return c.output.String()
}

// Lines returns the printed output split into lines, prompts included.
func (c *Console) Lines() []string {
	out := strings.TrimSuffix(c.output.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Remaining returns how many scripted lines were not read.
func (c *Console) Remaining() int {
	return len(c.input) - c.reads
}

var _ ports.Console = (*Console)(nil)
