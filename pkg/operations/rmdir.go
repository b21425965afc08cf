package operations

import (
	"context"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// DeleteDirectory removes a directory, but only when it is empty.
type DeleteDirectory struct {
	base
}

// NewDeleteDirectory creates the rmdir handler.
func NewDeleteDirectory(fs ports.FileSystem, logger ports.Logger) *DeleteDirectory {
	return &DeleteDirectory{base: newBase(fs, logger, "rmdir")}
}

func (h *DeleteDirectory) Title() string { return "Delete Directory" }

func (h *DeleteDirectory) Handle(ctx context.Context, console ports.Console) (Result, error) {
	in, err := readInputs(console, "Enter path of directory to delete: ")
	if err != nil {
		return Result{}, err
	}
	return h.Execute(ctx, console, Request{Path: in[0]})
}

func (h *DeleteDirectory) Execute(ctx context.Context, console ports.Console, req Request) (Result, error) {
	ok, err := h.is(req.Path, ports.KindDir)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return rejected(msgDirMissing), nil
	}

	empty, err := h.fs.IsEmptyDir(req.Path)
	if err != nil {
		return Result{}, err
	}
	if !empty {
		return rejected("Directory is not empty. Cannot delete."), nil
	}

	console.Println(l10n.F("Attempting to delete directory: %s", req.Path))
	if err := h.fs.RemoveDir(req.Path); err != nil {
		return Result{}, err
	}

	h.logger.Debug("Deleted directory %s", req.Path)
	return completed("Directory deleted successfully."), nil
}
