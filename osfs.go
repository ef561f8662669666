package fsutil

import (
	"fmt"
	"io"
	"os"
)

// OSFS implements FS against the real filesystem via the os package.
// It is the default backend used by New.
type OSFS struct {
	copyBufferSize int
}

// Ensure OSFS implements FS at compile time.
var _ FS = (*OSFS)(nil)

// OSOption is a functional option for configuring OSFS.
type OSOption func(*OSFS)

// WithCopyBufferSize sets the buffer size used when streaming file
// content in CopyFile.
func WithCopyBufferSize(size int) OSOption {
	return func(o *OSFS) {
		o.copyBufferSize = size
	}
}

// NewOSFS creates an OS-backed FS with the specified options.
func NewOSFS(opts ...OSOption) *OSFS {
	o := &OSFS{
		copyBufferSize: 32 * 1024, // default 32KB
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Stat implements FS.
func (o *OSFS) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	return info, wrapErr("stat", name, err)
}

// ReadDir implements FS.
func (o *OSFS) ReadDir(name string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(name)
	return entries, wrapErr("readdir", name, err)
}

// MkdirAll implements FS.
func (o *OSFS) MkdirAll(name string, perm os.FileMode) error {
	return wrapErr("mkdir", name, os.MkdirAll(name, perm))
}

// CopyFile implements FS by streaming src into dst through a fixed
// buffer, so peak memory is bounded regardless of file size.
func (o *OSFS) CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return wrapErr("copyfile", src, err)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return wrapErr("copyfile", dst, err)
	}

	buf := make([]byte, o.copyBufferSize)
	if _, err := io.CopyBuffer(dstFile, srcFile, buf); err != nil {
		dstFile.Close()
		return wrapErr("copyfile", dst, fmt.Errorf("failed to copy file contents: %w", err))
	}
	return wrapErr("copyfile", dst, dstFile.Close())
}

// Rename implements FS. A rename across devices surfaces as a
// KindCrossDevice error.
func (o *OSFS) Rename(oldpath, newpath string) error {
	return wrapErr("rename", oldpath, os.Rename(oldpath, newpath))
}

// RemoveAll implements FS. os.RemoveAll already has force semantics.
func (o *OSFS) RemoveAll(name string) error {
	return wrapErr("remove", name, os.RemoveAll(name))
}

// Access implements FS.
func (o *OSFS) Access(name string) error {
	_, err := os.Stat(name)
	return wrapErr("access", name, err)
}

// ReadFile implements FS.
func (o *OSFS) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	return data, wrapErr("readfile", name, err)
}

// WriteFile implements FS.
func (o *OSFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return wrapErr("writefile", name, os.WriteFile(name, data, perm))
}
