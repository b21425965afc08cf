package operations

import (
	"context"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// CreateDirectory creates exactly one new directory level.
type CreateDirectory struct {
	base
}

// NewCreateDirectory creates the mkdir handler.
func NewCreateDirectory(fs ports.FileSystem, logger ports.Logger) *CreateDirectory {
	return &CreateDirectory{base: newBase(fs, logger, "mkdir")}
}

func (h *CreateDirectory) Title() string { return "Create Directory" }

func (h *CreateDirectory) Handle(ctx context.Context, console ports.Console) (Result, error) {
	in, err := readInputs(console, "Enter path of directory to create (Include the name of directory): ")
	if err != nil {
		return Result{}, err
	}
	return h.Execute(ctx, console, Request{Path: in[0]})
}

// Execute creates req.Path. Anything already at the path, file or
// directory, is a rejection. Missing parents make the call fail.
func (h *CreateDirectory) Execute(ctx context.Context, console ports.Console, req Request) (Result, error) {
	kind, err := h.fs.Kind(req.Path)
	if err != nil {
		return Result{}, err
	}
	if kind != ports.KindNone {
		return rejected("Directory already exists."), nil
	}

	console.Println(l10n.F("Attempting to create directory: %s", req.Path))
	if err := h.fs.Mkdir(req.Path); err != nil {
		return Result{}, err
	}

	h.logger.Debug("Created directory %s", req.Path)
	return completed("Directory created successfully."), nil
}
