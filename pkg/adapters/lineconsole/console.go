// Package lineconsole implements ports.Console over a reader and a writer.
package lineconsole

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/user/filemanager/pkg/ports"
)

// Console reads newline-terminated lines from in and prints to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine returns the next line with its "\n" or "\r\n" stripped. A final
// line without terminator is still returned; after that ports.ErrInputClosed.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ports.ErrInputClosed
		}
		err = nil
	}
	if err != nil {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Prompt prints text without a newline.
func (c *Console) Prompt(text string) {
	fmt.Fprint(c.out, text)
}

// Println prints text and a newline.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

var _ ports.Console = (*Console)(nil)
