package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind classifies a filesystem failure. Backends produce the
// classification; callers inspect it through KindOf and the Is*
// helpers instead of matching error strings.
type Kind int

const (
	// KindUnclassified is any failure the backend could not map to a
	// more specific kind.
	KindUnclassified Kind = iota
	// KindNotFound means the path (or one of its components) does not exist.
	KindNotFound
	// KindNotADirectory means a non-final path component is not a directory.
	KindNotADirectory
	// KindPermission means the operation was denied by permissions.
	KindPermission
	// KindCrossDevice means a rename crossed storage devices.
	KindCrossDevice
	// KindParse means file content could not be decoded.
	KindParse
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNotADirectory:
		return "not a directory"
	case KindPermission:
		return "permission denied"
	case KindCrossDevice:
		return "cross-device"
	case KindParse:
		return "parse failure"
	default:
		return "unclassified"
	}
}

// Error is a classified filesystem failure produced by an FS backend
// or by fsutil itself.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err. An error that is not (and
// does not wrap) a *Error is classified directly from its underlying
// errno or io/fs sentinel.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return classify(err)
}

// IsNotFound reports whether err is classified KindNotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsNotADirectory reports whether err is classified KindNotADirectory.
func IsNotADirectory(err error) bool { return KindOf(err) == KindNotADirectory }

// IsPermission reports whether err is classified KindPermission.
func IsPermission(err error) bool { return KindOf(err) == KindPermission }

// IsCrossDevice reports whether err is classified KindCrossDevice.
func IsCrossDevice(err error) bool { return KindOf(err) == KindCrossDevice }

// IsParse reports whether err is classified KindParse.
func IsParse(err error) bool { return KindOf(err) == KindParse }

// classify maps an underlying error to a Kind. Errno values take
// precedence over the io/fs sentinels so that ENOTDIR and EXDEV, which
// both unwrap only to themselves, are recognized.
func classify(err error) Kind {
	if err == nil {
		return KindUnclassified
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOENT:
			return KindNotFound
		case syscall.ENOTDIR:
			return KindNotADirectory
		case syscall.EACCES, syscall.EPERM:
			return KindPermission
		case syscall.EXDEV:
			return KindCrossDevice
		}
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	}
	return KindUnclassified
}

// wrapErr classifies and wraps a backend failure. Errors that already
// carry a classification pass through unchanged.
func wrapErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Path: path, Kind: classify(err), Err: err}
}
