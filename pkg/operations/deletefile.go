package operations

import (
	"context"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// DeleteFile removes a single regular file. There is no confirmation.
type DeleteFile struct {
	base
}

// NewDeleteFile creates the delete-file handler.
func NewDeleteFile(fs ports.FileSystem, logger ports.Logger) *DeleteFile {
	return &DeleteFile{base: newBase(fs, logger, "delete")}
}

func (h *DeleteFile) Title() string { return "Delete File" }

func (h *DeleteFile) Handle(ctx context.Context, console ports.Console) (Result, error) {
	in, err := readInputs(console, "Enter path of file to delete: ")
	if err != nil {
		return Result{}, err
	}
	return h.Execute(ctx, console, Request{Path: in[0]})
}

func (h *DeleteFile) Execute(ctx context.Context, console ports.Console, req Request) (Result, error) {
	ok, err := h.is(req.Path, ports.KindFile)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return rejected("File does not exist or is not a file."), nil
	}

	console.Println(l10n.F("Attempting to delete file: %s", req.Path))
	if err := h.fs.RemoveFile(req.Path); err != nil {
		return Result{}, err
	}

	h.logger.Debug("Deleted file %s", req.Path)
	return completed("File deleted successfully."), nil
}
