package ports

import "errors"

// ErrInputClosed is returned by Console.ReadLine once the input stream is
// exhausted.
var ErrInputClosed = errors.New("input closed")

// Console is the line-oriented terminal the user talks to.
type Console interface {
	// ReadLine returns the next input line without its line terminator.
	ReadLine() (string, error)

	// Prompt prints text without a trailing newline.
	Prompt(text string)

	// Println prints text followed by a newline.
	Println(text string)
}
