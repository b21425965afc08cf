package operations

import (
	"context"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// CopyFile copies a regular file, replacing the destination without asking.
type CopyFile struct {
	base
}

// NewCopyFile creates the copy handler.
func NewCopyFile(fs ports.FileSystem, logger ports.Logger) *CopyFile {
	return &CopyFile{base: newBase(fs, logger, "copy")}
}

func (h *CopyFile) Title() string { return "Copy File" }

func (h *CopyFile) Handle(ctx context.Context, console ports.Console) (Result, error) {
	in, err := readInputs(console, promptSource, promptDestination)
	if err != nil {
		return Result{}, err
	}
	return h.Execute(ctx, console, Request{Path: in[0], Target: in[1]})
}

// Execute copies req.Path to req.Target.
func (h *CopyFile) Execute(ctx context.Context, console ports.Console, req Request) (Result, error) {
	ok, err := h.is(req.Path, ports.KindFile)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return rejected(msgSourceMissing), nil
	}

	console.Println(l10n.F("Copying file from %s to %s", req.Path, req.Target))
	if err := h.fs.CopyFile(req.Path, req.Target); err != nil {
		return Result{}, err
	}

	h.logger.Debug("Copied %s to %s", req.Path, req.Target)
	return completed("File copied successfully."), nil
}
