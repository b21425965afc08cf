package ports

import "context"

// EntryKind classifies what a path currently refers to.
type EntryKind int

const (
	// KindNone means nothing exists at the path.
	KindNone EntryKind = iota
	// KindFile is a regular file.
	KindFile
	// KindDir is a directory.
	KindDir
	// KindOther is anything else (device, socket, named pipe).
	KindOther
)

// String returns the string representation of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// WalkFunc is called for every entry visited by FileSystem.Walk, the root
// included. A non-nil err reports an entry or directory that could not be
// read; returning nil skips it and the walk continues. Any other non-nil
// return aborts the walk.
type WalkFunc func(path string, err error) error

// FileSystem abstracts the filesystem primitives the file manager relies on.
// Links are followed when classifying paths.
type FileSystem interface {
	// Kind reports what exists at path. A missing path is KindNone with a
	// nil error; any other stat failure is returned.
	Kind(path string) (EntryKind, error)

	// ReadDir calls fn with the name of every immediate child of dir, in the
	// order the filesystem returns them.
	ReadDir(dir string, fn func(name string) error) error

	// IsEmptyDir reports whether dir has no entries.
	IsEmptyDir(dir string) (bool, error)

	// Walk visits root and every descendant.
	Walk(ctx context.Context, root string, fn WalkFunc) error

	// CopyFile copies src to dst byte for byte, replacing dst if it exists.
	CopyFile(src, dst string) error

	// MoveFile moves src to dst, replacing dst if it exists.
	MoveFile(src, dst string) error

	// RemoveFile deletes a single file.
	RemoveFile(path string) error

	// Mkdir creates exactly one directory level.
	Mkdir(path string) error

	// RemoveDir deletes an empty directory.
	RemoveDir(path string) error
}
