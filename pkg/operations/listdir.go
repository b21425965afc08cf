package operations

import (
	"context"
	"path/filepath"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// ListDirectory prints the immediate children of a directory.
type ListDirectory struct {
	base
}

// NewListDirectory creates the list handler.
func NewListDirectory(fs ports.FileSystem, logger ports.Logger) *ListDirectory {
	return &ListDirectory{base: newBase(fs, logger, "list")}
}

func (h *ListDirectory) Title() string { return "List Directory" }

func (h *ListDirectory) Handle(ctx context.Context, console ports.Console) (Result, error) {
	in, err := readInputs(console, "Enter directory path to list: ")
	if err != nil {
		return Result{}, err
	}
	return h.Execute(ctx, console, Request{Path: in[0]})
}

// Execute lists req.Path without recursing or sorting.
func (h *ListDirectory) Execute(ctx context.Context, console ports.Console, req Request) (Result, error) {
	ok, err := h.is(req.Path, ports.KindDir)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return rejected(msgDirMissing), nil
	}

	console.Println(l10n.F("Listing contents of directory: %s", req.Path))

	count := 0
	err = h.fs.ReadDir(req.Path, func(name string) error {
		console.Println(filepath.Join(req.Path, name))
		count++
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	h.logger.Debug("Listed %d entries in %s", count, req.Path)
	return completed("Directory listing complete."), nil
}
