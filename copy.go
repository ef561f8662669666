package fsutil

import (
	"fmt"
	"path/filepath"
)

// FilterFunc decides per-path inclusion during a copy traversal. It
// receives the source-side path of a candidate entry; returning false
// excludes the entry and, for a directory, its entire subtree.
type FilterFunc func(path string) bool

// copyOptions holds the resolved settings for one Copy call.
type copyOptions struct {
	overwrite bool
	filter    FilterFunc
}

// CopyOption is a functional option for configuring a Copy call.
type CopyOption func(*copyOptions)

// WithOverwrite controls whether an existing destination file is
// replaced. The default is true; with false, an existing destination
// file is left untouched and that entry is silently skipped.
func WithOverwrite(overwrite bool) CopyOption {
	return func(o *copyOptions) {
		o.overwrite = overwrite
	}
}

// WithFilter sets the filter predicate applied to the source root and
// every descendant during traversal.
func WithFilter(filter FilterFunc) CopyOption {
	return func(o *copyOptions) {
		o.filter = filter
	}
}

// Copy replicates the file or directory tree at src under dst.
//
// A directory is materialized before any of its children, including
// intermediate segments, even if it ends up with zero copyable
// children. Entries rejected by the filter are skipped without
// creating anything on the destination side. Sibling order is not
// guaranteed. Entries within one traversal are processed sequentially,
// which bounds peak file-descriptor usage under bulk use.
//
// A missing src is an error; a failure on any individual entry aborts
// the remainder of the traversal and propagates.
func (u *FSUtil) Copy(src, dst string, opts ...CopyOption) error {
	o := copyOptions{overwrite: true}
	for _, opt := range opts {
		opt(&o)
	}

	if o.filter != nil && !o.filter(src) {
		return nil
	}

	info, err := u.fs.Stat(src)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return u.copyDir(src, dst, &o)
	}
	return u.copyFile(src, dst, &o)
}

// copyDir replicates a directory tree depth-first. The destination
// directory is created before any child is visited.
func (u *FSUtil) copyDir(src, dst string, o *copyOptions) error {
	if err := u.fs.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	entries, err := u.fs.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcEntry := filepath.Join(src, entry.Name())
		dstEntry := filepath.Join(dst, entry.Name())

		if o.filter != nil && !o.filter(srcEntry) {
			// Rejected directories are skipped whole: children are
			// never visited.
			continue
		}

		if entry.IsDir() {
			if err := u.copyDir(srcEntry, dstEntry, o); err != nil {
				return err
			}
			continue
		}

		if err := u.copyEntry(srcEntry, dstEntry, o); err != nil {
			return err
		}
	}
	return nil
}

// copyFile replicates a single file after ensuring the destination's
// parent directory chain exists.
func (u *FSUtil) copyFile(src, dst string, o *copyOptions) error {
	if err := u.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	return u.copyEntry(src, dst, o)
}

// copyEntry copies one file's bytes, honoring the overwrite policy:
// with overwrite off, an existing destination file makes this entry a
// silent no-op.
func (u *FSUtil) copyEntry(src, dst string, o *copyOptions) error {
	if !o.overwrite {
		ok, err := u.Exists(dst)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	if err := u.fs.CopyFile(src, dst); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return nil
}
