package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/absfs/absfs"
)

// AbsFS adapts an absfs.FileSystem to the FS interface.
//
// This enables seamless integration with the absfs ecosystem: any
// absfs filesystem (memfs, osfs, a composed stack) can back fsutil
// operations.
//
// Example:
//
//	mfs, _ := memfs.NewFS()
//	u := fsutil.New(fsutil.WithFS(fsutil.NewAbsFS(mfs)))
//	err := u.EnsureDir("/var/data")
type AbsFS struct {
	fs absfs.FileSystem
}

// Ensure AbsFS implements FS at compile time.
var _ FS = (*AbsFS)(nil)

// NewAbsFS wraps an absfs filesystem as an fsutil backend.
func NewAbsFS(backend absfs.FileSystem) *AbsFS {
	return &AbsFS{fs: backend}
}

// Stat implements FS.
func (a *AbsFS) Stat(name string) (os.FileInfo, error) {
	info, err := a.fs.Stat(name)
	return info, wrapErr("stat", name, err)
}

// ReadDir implements FS via Open + Readdir, the portable listing path
// for absfs filesystems.
func (a *AbsFS) ReadDir(name string) ([]os.DirEntry, error) {
	dir, err := a.fs.Open(name)
	if err != nil {
		return nil, wrapErr("readdir", name, err)
	}
	infos, err := dir.Readdir(-1)
	dir.Close()
	if err != nil {
		return nil, wrapErr("readdir", name, err)
	}
	entries := make([]os.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

// MkdirAll implements FS.
func (a *AbsFS) MkdirAll(name string, perm os.FileMode) error {
	return wrapErr("mkdir", name, a.fs.MkdirAll(name, perm))
}

// CopyFile implements FS.
func (a *AbsFS) CopyFile(src, dst string) error {
	srcFile, err := a.fs.Open(src)
	if err != nil {
		return wrapErr("copyfile", src, err)
	}
	defer srcFile.Close()

	dstFile, err := a.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return wrapErr("copyfile", dst, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return wrapErr("copyfile", dst, fmt.Errorf("failed to copy file contents: %w", err))
	}
	return wrapErr("copyfile", dst, dstFile.Close())
}

// Rename implements FS.
func (a *AbsFS) Rename(oldpath, newpath string) error {
	return wrapErr("rename", oldpath, a.fs.Rename(oldpath, newpath))
}

// RemoveAll implements FS. A missing path is not an error; the probe
// runs up front so force semantics hold regardless of how the wrapped
// backend reports a missing target.
func (a *AbsFS) RemoveAll(name string) error {
	if _, err := a.fs.Stat(name); err != nil {
		if classify(err) == KindNotFound {
			return nil
		}
		return wrapErr("remove", name, err)
	}
	return wrapErr("remove", name, a.fs.RemoveAll(name))
}

// Access implements FS.
func (a *AbsFS) Access(name string) error {
	_, err := a.fs.Stat(name)
	return wrapErr("access", name, err)
}

// ReadFile implements FS.
func (a *AbsFS) ReadFile(name string) ([]byte, error) {
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, wrapErr("readfile", name, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	return data, wrapErr("readfile", name, err)
}

// WriteFile implements FS.
func (a *AbsFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	f, err := a.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return wrapErr("writefile", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return wrapErr("writefile", name, err)
	}
	return wrapErr("writefile", name, f.Close())
}
