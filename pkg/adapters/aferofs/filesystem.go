// Package aferofs implements ports.FileSystem on top of an afero.Fs, which
// lets the file manager run against an in-memory tree or a directory jail.
package aferofs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/user/filemanager/pkg/ports"
)

const readDirBatch = 64

// FileSystem adapts an afero.Fs to ports.FileSystem.
type FileSystem struct {
	fs afero.Fs
}

// New wraps fs.
func New(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// NewMem returns a FileSystem backed by a fresh in-memory tree.
func NewMem() *FileSystem {
	return New(afero.NewMemMapFs())
}

// NewJailed returns a FileSystem that resolves every path inside root on the
// host filesystem. Paths that escape root behave as if they did not exist.
func NewJailed(root string) *FileSystem {
	return New(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// Fs returns the underlying afero filesystem.
func (f *FileSystem) Fs() afero.Fs {
	return f.fs
}

// Kind reports what exists at path.
func (f *FileSystem) Kind(path string) (ports.EntryKind, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return ports.KindNone, nil
		}
		return ports.KindNone, err
	}
	switch mode := info.Mode(); {
	case mode.IsRegular():
		return ports.KindFile, nil
	case mode.IsDir():
		return ports.KindDir, nil
	default:
		return ports.KindOther, nil
	}
}

// ReadDir streams the names of dir's immediate children.
func (f *FileSystem) ReadDir(dir string, fn func(name string) error) error {
	d, err := f.fs.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()

	for {
		names, err := d.Readdirnames(readDirBatch)
		for _, name := range names {
			if cbErr := fn(name); cbErr != nil {
				return cbErr
			}
		}
		if err == io.EOF || (err == nil && len(names) == 0) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// IsEmptyDir reports whether dir has no entries.
func (f *FileSystem) IsEmptyDir(dir string) (bool, error) {
	d, err := f.fs.Open(dir)
	if err != nil {
		return false, err
	}
	defer d.Close()

	names, err := d.Readdirnames(1)
	if err != nil && err != io.EOF {
		return false, err
	}
	return len(names) == 0, nil
}

// Walk visits root and its descendants in lexical order.
func (f *FileSystem) Walk(ctx context.Context, root string, fn ports.WalkFunc) error {
	return afero.Walk(f.fs, filepath.Clean(root), func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fn(path, err)
	})
}

// CopyFile copies src to dst, truncating dst if it already exists.
func (f *FileSystem) CopyFile(src, dst string) error {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return nil
	}

	in, err := f.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return err
	}
	if dstInfo, err := f.fs.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	out, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// MoveFile renames src to dst, copying across devices when rename cannot.
func (f *FileSystem) MoveFile(src, dst string) error {
	err := f.fs.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := f.CopyFile(src, dst); err != nil {
		return err
	}
	if err := f.fs.Remove(src); err != nil {
		return fmt.Errorf("remove %s after copy: %w", src, err)
	}
	return nil
}

// RemoveFile deletes a single file.
func (f *FileSystem) RemoveFile(path string) error {
	return f.fs.Remove(path)
}

// Mkdir creates one directory level.
func (f *FileSystem) Mkdir(path string) error {
	return f.fs.Mkdir(path, 0755)
}

// RemoveDir deletes an empty directory.
func (f *FileSystem) RemoveDir(path string) error {
	return f.fs.Remove(path)
}

var _ ports.FileSystem = (*FileSystem)(nil)
