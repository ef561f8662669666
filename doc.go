/*
Package fsutil provides an ergonomic set of file operations — directory
ensure, recursive copy with filtering, recursive remove, cross-device
move, JSON read/write — layered over a minimal primitive filesystem
interface.

# Overview

Tooling that shells files around in bulk needs a small, predictable
operation set with deterministic behavior under heavy parallel use.
fsutil provides exactly that: every operation runs to completion or
failure with no hidden retry queue, no deferred work, and no internal
concurrency limit that can silently drop files. Directory entries
within one traversal are processed sequentially, which bounds peak
file-descriptor usage no matter how many independent operations run
concurrently.

# Key Features

  - Recursive directory copy with filter predicates and overwrite policy
  - Cross-device move with automatic copy+delete fallback
  - Idempotent ensure-directory, ensure-file, and recursive remove
  - JSON read with byte-order-mark handling, and indented JSON write
  - Tagged error classification (not found, not a directory,
    permission, cross-device, parse) inspected by kind, never by string
  - Pluggable primitive backend: the real OS, any afero.Fs, or any
    absfs.FileSystem

# Basic Usage

	package main

	import "github.com/absfs/fsutil"

	func main() {
	    // Ensure a directory chain exists (idempotent)
	    err := fsutil.EnsureDir("/var/data/cache")

	    // Copy a tree, skipping editor droppings
	    err = fsutil.Copy("/src/project", "/dst/project",
	        fsutil.WithFilter(func(path string) bool {
	            return filepath.Base(path) != ".DS_Store"
	        }),
	    )

	    // Move across devices transparently
	    err = fsutil.Move("/tmp/build", "/var/releases/build")

	    // Read configuration, BOM or not
	    var cfg map[string]any
	    err = fsutil.ReadJSON("/etc/app/config.json", &cfg)
	}

# Backends

The package-level functions operate on the real filesystem. For tests,
sandboxes, or composed filesystems, construct an FSUtil over any
backend implementing the FS interface:

	// afero in-memory backend
	u := fsutil.New(fsutil.WithFS(fsutil.NewAferoFS(afero.NewMemMapFs())))

	// absfs in-memory backend
	mfs, _ := memfs.NewFS()
	u = fsutil.New(fsutil.WithFS(fsutil.NewAbsFS(mfs)))

	// OS backend with a larger copy buffer
	u = fsutil.New(fsutil.WithFS(fsutil.NewOSFS(fsutil.WithCopyBufferSize(256 * 1024))))

All operations behave identically across backends; only error
classification depth differs (in-memory backends cannot produce
cross-device failures).

# Copy Semantics

Copy applies its filter to the source root and to every descendant.
A rejected path creates nothing on the destination side; a rejected
directory hides its whole subtree without visiting children. Accepted
directories are created (recursively, intermediate segments included)
before any child is materialized, so an accepted-but-empty directory
still appears at the destination. With overwrite disabled, an existing
destination file is left untouched and that entry is skipped silently
while its siblings are still copied.

Any primitive failure during traversal aborts the remaining entries
and propagates; there is no partial-failure continuation beyond the
deliberate filter and overwrite skips.

# Move Semantics

Move is a single atomic rename whenever the backend allows it. Only a
cross-device classification triggers the fallback — copy everything
with overwrite on and no filter, then force-delete the source. Every
other rename failure (destination non-empty, permission denied, ...)
propagates unmodified. The source delete uses force semantics, so a
source that vanished concurrently after the copy is not an error.

# Error Classification

Backends wrap every failure in *Error carrying a Kind. Callers branch
on classification:

	if err := fsutil.Move(src, dst); err != nil {
	    switch {
	    case fsutil.IsNotFound(err):
	        // source never existed
	    case fsutil.IsPermission(err):
	        // bubble up to the operator
	    }
	}

Exists folds the not-found and not-a-directory kinds into a plain
false; everything else propagates.

# Concurrency

FSUtil holds no shared mutable state and takes no locks. Independent
operations against disjoint paths run concurrently without
coordination; callers targeting overlapping destinations are
responsible for their own ordering. Operations are not cancelable once
started.

# Limitations

  - Symlinks get no special handling; the stat-following behavior of
    the backend decides what a link copies as
  - Permissions, ownership, and timestamps are not preserved
  - No multi-file transactions and no incremental or diffing sync
  - A cross-device move whose fallback copy fails midway leaves the
    partially copied data at the destination
*/
package fsutil
