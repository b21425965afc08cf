// Package operations implements the file manager's menu operations. Each
// handler reads its inputs from the console, checks preconditions against the
// filesystem and performs a single filesystem call.
//
// A failed precondition is not an error: the handler returns a Rejected
// Result carrying the message to show. Errors are reserved for filesystem
// calls that fail after the checks passed, and for a closed console.
package operations

import (
	"context"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// Status tells how a handler finished.
type Status int

const (
	// StatusCompleted means the filesystem call was made and succeeded.
	StatusCompleted Status = iota
	// StatusRejected means a precondition failed and nothing was changed.
	StatusRejected
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the outcome of a handler that did not fail.
type Result struct {
	Status  Status
	Message string // already localized
}

func completed(key string) Result {
	return Result{Status: StatusCompleted, Message: l10n.T(key)}
}

func rejected(key string) Result {
	return Result{Status: StatusRejected, Message: l10n.T(key)}
}

// Request carries the values a handler read from the console.
type Request struct {
	Path   string // primary path: source, directory or file
	Target string // destination path for copy and move
	Term   string // search term
}

// Handler is one menu operation.
type Handler interface {
	// Title is the untranslated menu label.
	Title() string

	// Handle prompts for inputs on console and runs the operation.
	Handle(ctx context.Context, console ports.Console) (Result, error)
}

// Table returns the handlers in menu order, starting at choice 1.
func Table(fs ports.FileSystem, logger ports.Logger) []Handler {
	return []Handler{
		NewListDirectory(fs, logger),
		NewCopyFile(fs, logger),
		NewMoveFile(fs, logger),
		NewDeleteFile(fs, logger),
		NewSearchFiles(fs, logger),
		NewCreateDirectory(fs, logger),
		NewDeleteDirectory(fs, logger),
	}
}

// base holds what every handler needs.
type base struct {
	fs     ports.FileSystem
	logger ports.Logger
}

func newBase(fs ports.FileSystem, logger ports.Logger, component string) base {
	return base{fs: fs, logger: logger.WithComponent(component)}
}

// is reports whether path currently exists with the given kind.
func (b base) is(path string, want ports.EntryKind) (bool, error) {
	kind, err := b.fs.Kind(path)
	if err != nil {
		return false, err
	}
	return kind == want, nil
}

// readInputs shows each prompt and reads one line for it.
func readInputs(console ports.Console, prompts ...string) ([]string, error) {
	values := make([]string, len(prompts))
	for i, prompt := range prompts {
		console.Prompt(l10n.T(prompt))
		line, err := console.ReadLine()
		if err != nil {
			return nil, err
		}
		values[i] = line
	}
	return values, nil
}

// Prompt and message keys shared by several handlers.
const (
	promptSource      = "Enter source file path: "
	promptDestination = "Enter destination file path (including filename): "

	msgDirMissing    = "Directory does not exist or is not a directory."
	msgSourceMissing = "Source file does not exist or is not a file."
)
