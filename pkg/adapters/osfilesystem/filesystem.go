// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/charlievieth/fastwalk"

	"github.com/user/filemanager/pkg/ports"
)

// readDirBatch is how many entries ReadDir pulls from the directory handle at a time.
const readDirBatch = 64

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct {
	// walkWorkers bounds fastwalk's parallelism; zero lets fastwalk decide.
	walkWorkers int
}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// WithWalkWorkers sets the number of goroutines used by Walk.
func (f *FileSystem) WithWalkWorkers(n int) *FileSystem {
	f.walkWorkers = n
	return f
}

// Kind reports what exists at path.
func (f *FileSystem) Kind(path string) (ports.EntryKind, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return ports.KindNone, nil
		}
		return ports.KindNone, err
	}
	return kindOf(info.Mode()), nil
}

func kindOf(mode fs.FileMode) ports.EntryKind {
	switch {
	case mode.IsRegular():
		return ports.KindFile
	case mode.IsDir():
		return ports.KindDir
	default:
		return ports.KindOther
	}
}

// ReadDir streams the names of dir's immediate children in directory order.
func (f *FileSystem) ReadDir(dir string, fn func(name string) error) error {
	d, err := os.Open(dir)
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
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// IsEmptyDir reports whether dir has no entries.
func (f *FileSystem) IsEmptyDir(dir string) (bool, error) {
	d, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer d.Close()

	names, err := d.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return len(names) == 0, nil
}

// Walk visits root and all its descendants using fastwalk. fn may be called
// from several goroutines at once.
func (f *FileSystem) Walk(ctx context.Context, root string, fn ports.WalkFunc) error {
	conf := fastwalk.Config{
		Follow:     false,
		NumWorkers: f.walkWorkers,
	}

	return fastwalk.Walk(&conf, filepath.Clean(root), func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return fn(path, err)
	})
}

// CopyFile copies src to dst, truncating dst if it already exists.
func (f *FileSystem) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return err
	}

	// Opening dst with O_TRUNC would destroy src when both name the same file.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// MoveFile renames src to dst. When the rename crosses devices it falls back
// to copying and then removing src.
func (f *FileSystem) MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := f.CopyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove %s after copy: %w", src, err)
	}
	return nil
}

// RemoveFile deletes a single file.
func (f *FileSystem) RemoveFile(path string) error {
	return os.Remove(path)
}

// Mkdir creates one directory level; missing parents are an error.
func (f *FileSystem) Mkdir(path string) error {
	return os.Mkdir(path, 0755)
}

// RemoveDir deletes an empty directory.
func (f *FileSystem) RemoveDir(path string) error {
	return os.Remove(path)
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
