package operations

import (
	"context"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// MoveFile moves a regular file to a full destination file path.
type MoveFile struct {
	base
}

// NewMoveFile creates the move handler.
func NewMoveFile(fs ports.FileSystem, logger ports.Logger) *MoveFile {
	return &MoveFile{base: newBase(fs, logger, "move")}
}

func (h *MoveFile) Title() string { return "Move File" }

func (h *MoveFile) Handle(ctx context.Context, console ports.Console) (Result, error) {
	in, err := readInputs(console, promptSource, promptDestination)
	if err != nil {
		return Result{}, err
	}
	return h.Execute(ctx, console, Request{Path: in[0], Target: in[1]})
}

// Execute moves req.Path to req.Target. A destination that is an existing
// directory is rejected; the file name is never inferred.
func (h *MoveFile) Execute(ctx context.Context, console ports.Console, req Request) (Result, error) {
	ok, err := h.is(req.Path, ports.KindFile)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return rejected(msgSourceMissing), nil
	}

	isDir, err := h.is(req.Target, ports.KindDir)
	if err != nil {
		return Result{}, err
	}
	if isDir {
		return rejected("Destination path must include a filename."), nil
	}

	console.Println(l10n.F("Moving file from %s to %s", req.Path, req.Target))
	if err := h.fs.MoveFile(req.Path, req.Target); err != nil {
		return Result{}, err
	}

	h.logger.Debug("Moved %s to %s", req.Path, req.Target)
	return completed("File moved successfully."), nil
}
