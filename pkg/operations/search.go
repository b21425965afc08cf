package operations

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/ports"
)

// SearchFiles prints every entry below a directory whose base name contains
// a term. Matching is literal and case-sensitive.
type SearchFiles struct {
	base
}

// NewSearchFiles creates the search handler.
func NewSearchFiles(fs ports.FileSystem, logger ports.Logger) *SearchFiles {
	return &SearchFiles{base: newBase(fs, logger, "search")}
}

func (h *SearchFiles) Title() string { return "Search Files" }

func (h *SearchFiles) Handle(ctx context.Context, console ports.Console) (Result, error) {
	in, err := readInputs(console,
		"Enter directory path to search: ",
		"Enter file name or extension to search for: ",
	)
	if err != nil {
		return Result{}, err
	}
	return h.Execute(ctx, console, Request{Path: in[0], Term: in[1]})
}

// Execute walks req.Path, root included, and prints matches as they are
// found. Entries that cannot be read are logged and skipped.
func (h *SearchFiles) Execute(ctx context.Context, console ports.Console, req Request) (Result, error) {
	ok, err := h.is(req.Path, ports.KindDir)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return rejected(msgDirMissing), nil
	}

	console.Println(l10n.F("Searching for files in %s with term: %s", req.Path, req.Term))

	// The walk callback may run concurrently.
	var mu sync.Mutex
	matches := 0

	err = h.fs.Walk(ctx, req.Path, func(path string, err error) error {
		if err != nil {
			h.logger.Warn("Skipping %s: %s", path, err)
			return nil
		}
		if !strings.Contains(filepath.Base(path), req.Term) {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		console.Println(path)
		matches++
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	h.logger.Debug("Search in %s matched %d entries", req.Path, matches)
	return completed("Search complete."), nil
}
