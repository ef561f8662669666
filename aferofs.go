package fsutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// AferoFS adapts any afero.Fs to the FS interface, so fsutil
// operations can run against afero backends such as MemMapFs or
// BasePathFs.
type AferoFS struct {
	fs afero.Fs
}

// Ensure AferoFS implements FS at compile time.
var _ FS = (*AferoFS)(nil)

// NewAferoFS wraps an afero filesystem as an fsutil backend.
//
// Example:
//
//	u := fsutil.New(fsutil.WithFS(fsutil.NewAferoFS(afero.NewMemMapFs())))
//	err := u.Copy("/src", "/dst")
func NewAferoFS(backend afero.Fs) *AferoFS {
	return &AferoFS{fs: backend}
}

// Stat implements FS.
func (a *AferoFS) Stat(name string) (os.FileInfo, error) {
	info, err := a.fs.Stat(name)
	return info, wrapErr("stat", name, err)
}

// ReadDir implements FS, converting afero's FileInfo listing to typed
// directory entries.
func (a *AferoFS) ReadDir(name string) ([]os.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, name)
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
func (a *AferoFS) MkdirAll(name string, perm os.FileMode) error {
	return wrapErr("mkdir", name, a.fs.MkdirAll(name, perm))
}

// CopyFile implements FS.
func (a *AferoFS) CopyFile(src, dst string) error {
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

// Rename implements FS. In-memory afero backends never report a
// cross-device failure; OS-backed ones surface the underlying errno.
func (a *AferoFS) Rename(oldpath, newpath string) error {
	return wrapErr("rename", oldpath, a.fs.Rename(oldpath, newpath))
}

// RemoveAll implements FS. A missing path is not an error.
func (a *AferoFS) RemoveAll(name string) error {
	err := a.fs.RemoveAll(name)
	if err != nil && classify(err) == KindNotFound {
		return nil
	}
	return wrapErr("remove", name, err)
}

// Access implements FS.
func (a *AferoFS) Access(name string) error {
	_, err := a.fs.Stat(name)
	return wrapErr("access", name, err)
}

// ReadFile implements FS.
func (a *AferoFS) ReadFile(name string) ([]byte, error) {
	data, err := afero.ReadFile(a.fs, name)
	return data, wrapErr("readfile", name, err)
}

// WriteFile implements FS.
func (a *AferoFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return wrapErr("writefile", name, afero.WriteFile(a.fs, name, data, perm))
}
