package fsutil

import "os"

// FS is the primitive filesystem capability set that fsutil operations
// are built on. It is deliberately narrow: single-file and
// single-directory operations only, assumed atomic at that granularity,
// with no internal retry or queuing.
//
// Implementations must classify their failures by wrapping them in
// *Error so that callers (and fsutil itself) can discriminate by Kind
// rather than by string matching. The provided backends — OSFS,
// AferoFS, and AbsFS — all do this.
type FS interface {
	// Stat returns file info for the named path, following symlinks.
	Stat(name string) (os.FileInfo, error)

	// ReadDir reads the named directory and returns its typed entries.
	ReadDir(name string) ([]os.DirEntry, error)

	// MkdirAll creates a directory path and all missing parents.
	// It succeeds if the directory already exists.
	MkdirAll(name string, perm os.FileMode) error

	// CopyFile copies the whole content of a single file from src to
	// dst, replacing dst if it exists. Parent directories of dst must
	// already exist.
	CopyFile(src, dst string) error

	// Rename atomically renames oldpath to newpath where the backend
	// supports it. A rename across storage devices must fail with a
	// KindCrossDevice classification.
	Rename(oldpath, newpath string) error

	// RemoveAll removes the named path and any children it contains.
	// Force semantics: a missing path is not an error.
	RemoveAll(name string) error

	// Access checks that the named path is reachable. Failures carry a
	// KindNotFound or KindNotADirectory classification where the
	// backend can distinguish them.
	Access(name string) error

	// ReadFile reads the whole content of the named file.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if needed
	// and truncating it otherwise.
	WriteFile(name string, data []byte, perm os.FileMode) error
}
