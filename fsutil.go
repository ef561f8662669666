package fsutil

import (
	"path/filepath"
)

// FSUtil provides the file-operations surface over a primitive FS
// backend. It holds no shared mutable state: every operation is
// independent and safe to run concurrently against disjoint paths.
type FSUtil struct {
	fs FS
}

// Option is a functional option for configuring FSUtil.
type Option func(*FSUtil)

// WithFS sets the primitive backend operations run against.
// The default is an OS-backed filesystem.
func WithFS(fs FS) Option {
	return func(u *FSUtil) {
		u.fs = fs
	}
}

// New creates a new FSUtil with the specified options.
func New(opts ...Option) *FSUtil {
	u := &FSUtil{
		fs: NewOSFS(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// FS returns the primitive backend this FSUtil operates on.
func (u *FSUtil) FS() FS {
	return u.fs
}

// Exists reports whether an access check on path succeeds. A missing
// path, or a path with a non-directory component, is false rather than
// an error; any other failure (e.g. permission denied) propagates.
func (u *FSUtil) Exists(path string) (bool, error) {
	err := u.fs.Access(path)
	if err == nil {
		return true, nil
	}
	switch KindOf(err) {
	case KindNotFound, KindNotADirectory:
		return false, nil
	}
	return false, err
}

// EnsureDir creates path and all missing intermediate segments.
// It is idempotent: an already-existing directory chain is success.
func (u *FSUtil) EnsureDir(path string) error {
	return u.fs.MkdirAll(path, 0755)
}

// EnsureFile creates an empty file at path, creating parent
// directories as needed. An existing file is left untouched.
func (u *FSUtil) EnsureFile(path string) error {
	ok, err := u.Exists(path)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if err := u.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return u.fs.WriteFile(path, nil, 0644)
}

// Remove recursively deletes everything at path. Force semantics:
// removing a path that does not exist is a no-op, not an error.
func (u *FSUtil) Remove(path string) error {
	err := u.fs.RemoveAll(path)
	if err != nil && IsNotFound(err) {
		return nil
	}
	return err
}

// EmptyDir ensures path is an existing directory with no entries,
// creating it if missing and force-removing any children otherwise.
func (u *FSUtil) EmptyDir(path string) error {
	entries, err := u.fs.ReadDir(path)
	if err != nil {
		if IsNotFound(err) {
			return u.fs.MkdirAll(path, 0755)
		}
		return err
	}
	for _, entry := range entries {
		if err := u.Remove(filepath.Join(path, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// OutputFile writes data to path, creating parent directories as
// needed. An existing file is replaced.
func (u *FSUtil) OutputFile(path string, data []byte) error {
	if err := u.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return u.fs.WriteFile(path, data, 0644)
}

// defaultUtil backs the package-level convenience functions.
var defaultUtil = New()

// Exists calls Exists on the default OS-backed FSUtil.
func Exists(path string) (bool, error) { return defaultUtil.Exists(path) }

// EnsureDir calls EnsureDir on the default OS-backed FSUtil.
func EnsureDir(path string) error { return defaultUtil.EnsureDir(path) }

// EnsureFile calls EnsureFile on the default OS-backed FSUtil.
func EnsureFile(path string) error { return defaultUtil.EnsureFile(path) }

// Remove calls Remove on the default OS-backed FSUtil.
func Remove(path string) error { return defaultUtil.Remove(path) }

// EmptyDir calls EmptyDir on the default OS-backed FSUtil.
func EmptyDir(path string) error { return defaultUtil.EmptyDir(path) }

// OutputFile calls OutputFile on the default OS-backed FSUtil.
func OutputFile(path string, data []byte) error { return defaultUtil.OutputFile(path, data) }

// Copy calls Copy on the default OS-backed FSUtil.
func Copy(src, dst string, opts ...CopyOption) error { return defaultUtil.Copy(src, dst, opts...) }

// Move calls Move on the default OS-backed FSUtil.
func Move(src, dst string) error { return defaultUtil.Move(src, dst) }

// ReadJSON calls ReadJSON on the default OS-backed FSUtil.
func ReadJSON(path string, v interface{}) error { return defaultUtil.ReadJSON(path, v) }

// WriteJSON calls WriteJSON on the default OS-backed FSUtil.
func WriteJSON(path string, v interface{}) error { return defaultUtil.WriteJSON(path, v) }
