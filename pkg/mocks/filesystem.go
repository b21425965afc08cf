package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/user/filemanager/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem. Calls go to the
// matching ...Func when set, otherwise to Base. With neither, queries report
// nothing and mutations fail.
type FileSystem struct {
	mu    sync.Mutex
	calls []string

	Base ports.FileSystem

	KindFunc       func(path string) (ports.EntryKind, error)
	ReadDirFunc    func(dir string, fn func(name string) error) error
	IsEmptyDirFunc func(dir string) (bool, error)
	WalkFunc       func(ctx context.Context, root string, fn ports.WalkFunc) error
	CopyFileFunc   func(src, dst string) error
	MoveFileFunc   func(src, dst string) error
	RemoveFileFunc func(path string) error
	MkdirFunc      func(path string) error
	RemoveDirFunc  func(path string) error
}

// NewFileSystem creates a mock delegating to base, which may be nil.
func NewFileSystem(base ports.FileSystem) *FileSystem {
	return &FileSystem{Base: base}
}

func (m *FileSystem) record(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

// Calls returns the recorded calls, e.g. "CopyFile a b".
func (m *FileSystem) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *FileSystem) Kind(path string) (ports.EntryKind, error) {
	m.record("Kind %s", path)
	if m.KindFunc != nil {
		return m.KindFunc(path)
	}
	if m.Base != nil {
		return m.Base.Kind(path)
	}
	return ports.KindNone, nil
}

func (m *FileSystem) ReadDir(dir string, fn func(name string) error) error {
	m.record("ReadDir %s", dir)
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(dir, fn)
	}
	if m.Base != nil {
		return m.Base.ReadDir(dir, fn)
	}
	return nil
}

func (m *FileSystem) IsEmptyDir(dir string) (bool, error) {
	m.record("IsEmptyDir %s", dir)
	if m.IsEmptyDirFunc != nil {
		return m.IsEmptyDirFunc(dir)
	}
	if m.Base != nil {
		return m.Base.IsEmptyDir(dir)
	}
	return true, nil
}

func (m *FileSystem) Walk(ctx context.Context, root string, fn ports.WalkFunc) error {
	m.record("Walk %s", root)
	if m.WalkFunc != nil {
		return m.WalkFunc(ctx, root, fn)
	}
	if m.Base != nil {
		return m.Base.Walk(ctx, root, fn)
	}
	return nil
}

func (m *FileSystem) CopyFile(src, dst string) error {
	m.record("CopyFile %s %s", src, dst)
	if m.CopyFileFunc != nil {
		return m.CopyFileFunc(src, dst)
	}
	if m.Base != nil {
		return m.Base.CopyFile(src, dst)
	}
	return fmt.Errorf("copy not supported by mock")
}

func (m *FileSystem) MoveFile(src, dst string) error {
	m.record("MoveFile %s %s", src, dst)
	if m.MoveFileFunc != nil {
		return m.MoveFileFunc(src, dst)
	}
	if m.Base != nil {
		return m.Base.MoveFile(src, dst)
	}
	return fmt.Errorf("move not supported by mock")
}

func (m *FileSystem) RemoveFile(path string) error {
	m.record("RemoveFile %s", path)
	if m.RemoveFileFunc != nil {
		return m.RemoveFileFunc(path)
	}
	if m.Base != nil {
		return m.Base.RemoveFile(path)
	}
	return fmt.Errorf("remove not supported by mock")
}

func (m *FileSystem) Mkdir(path string) error {
	m.record("Mkdir %s", path)
	if m.MkdirFunc != nil {
		return m.MkdirFunc(path)
	}
	if m.Base != nil {
		return m.Base.Mkdir(path)
	}
	return fmt.Errorf("mkdir not supported by mock")
}

func (m *FileSystem) RemoveDir(path string) error {
	m.record("RemoveDir %s", path)
	if m.RemoveDirFunc != nil {
		return m.RemoveDirFunc(path)
	}
	if m.Base != nil {
		return m.Base.RemoveDir(path)
	}
	return fmt.Errorf("rmdir not supported by mock")
}

var _ ports.FileSystem = (*FileSystem)(nil)
