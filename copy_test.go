package fsutil

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// countFiles walks a tree through the util's backend and counts
// regular files.
func countFiles(t testing.TB, u *FSUtil, root string) int {
	t.Helper()
	entries, err := u.FS().ReadDir(root)
	if err != nil {
		t.Fatalf("failed to read %s: %v", root, err)
	}
	n := 0
	for _, entry := range entries {
		if entry.IsDir() {
			n += countFiles(t, u, filepath.Join(root, entry.Name()))
			continue
		}
		n++
	}
	return n
}

func TestCopyFile(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			mustWrite(t, u, "/src/file.txt", "hello world")

			if err := u.Copy("/src/file.txt", "/dst/deep/file.txt"); err != nil {
				t.Fatalf("copy failed: %v", err)
			}

			got := mustRead(t, u, "/dst/deep/file.txt")
			if !bytes.Equal(got, []byte("hello world")) {
				t.Errorf("destination content = %q, want %q", got, "hello world")
			}
		})
	}
}

func TestCopyMissingSource(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := u.Copy("/no/such/source", "/dst")
			if err == nil {
				t.Fatal("expected error for missing source")
			}
			if !IsNotFound(err) {
				t.Errorf("expected not-found classification, got %v", err)
			}
		})
	}
}

func TestCopyDirTree(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			mustWrite(t, u, "/src/a.txt", "a")
			mustWrite(t, u, "/src/sub/b.txt", "b")
			mustWrite(t, u, "/src/sub/deeper/c.txt", "c")
			if err := u.EnsureDir("/src/emptydir"); err != nil {
				t.Fatalf("ensure failed: %v", err)
			}

			if err := u.Copy("/src", "/dst"); err != nil {
				t.Fatalf("copy failed: %v", err)
			}

			for path, want := range map[string]string{
				"/dst/a.txt":            "a",
				"/dst/sub/b.txt":        "b",
				"/dst/sub/deeper/c.txt": "c",
			} {
				if got := mustRead(t, u, path); string(got) != want {
					t.Errorf("%s = %q, want %q", path, got, want)
				}
			}

			// Empty directories are still materialized.
			ok, _ := u.Exists("/dst/emptydir")
			if !ok {
				t.Error("empty source directory missing at destination")
			}
		})
	}
}

func TestCopyFilterExcludesSubtree(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			mustWrite(t, u, "/src/keep.txt", "k")
			mustWrite(t, u, "/src/skipdir/lost.txt", "l")
			mustWrite(t, u, "/src/skipdir/nested/also.txt", "l2")
			mustWrite(t, u, "/src/skip.txt", "s")

			err := u.Copy("/src", "/dst", WithFilter(func(path string) bool {
				base := filepath.Base(path)
				return base != "skipdir" && base != "skip.txt"
			}))
			if err != nil {
				t.Fatalf("copy failed: %v", err)
			}

			ok, _ := u.Exists("/dst/keep.txt")
			if !ok {
				t.Error("accepted file missing at destination")
			}
			for _, path := range []string{"/dst/skip.txt", "/dst/skipdir", "/dst/skipdir/lost.txt"} {
				ok, _ := u.Exists(path)
				if ok {
					t.Errorf("%s should have been excluded", path)
				}
			}
		})
	}
}

// TestCopyFilterRejectedRoot verifies a rejected top-level path is a
// full no-op: the destination is never created.
func TestCopyFilterRejectedRoot(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			mustWrite(t, u, "/src/file.txt", "x")

			err := u.Copy("/src/file.txt", "/dst/file.txt",
				WithFilter(func(string) bool { return false }))
			if err != nil {
				t.Fatalf("copy failed: %v", err)
			}

			for _, path := range []string{"/dst/file.txt", "/dst"} {
				ok, _ := u.Exists(path)
				if ok {
					t.Errorf("%s created despite rejected root", path)
				}
			}
		})
	}
}

func TestCopyNoOverwriteFile(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			mustWrite(t, u, "/src/f.txt", "new content")
			mustWrite(t, u, "/dst/f.txt", "original")

			err := u.Copy("/src/f.txt", "/dst/f.txt", WithOverwrite(false))
			if err != nil {
				t.Fatalf("copy failed: %v", err)
			}

			if got := mustRead(t, u, "/dst/f.txt"); string(got) != "original" {
				t.Errorf("destination overwritten: %q", got)
			}
		})
	}
}

// TestCopyNoOverwriteInsideTree verifies that inside a directory copy a
// pre-existing destination entry is skipped while siblings still land.
func TestCopyNoOverwriteInsideTree(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			mustWrite(t, u, "/src/kept.txt", "src kept")
			mustWrite(t, u, "/src/fresh.txt", "src fresh")
			mustWrite(t, u, "/dst/kept.txt", "dst original")

			err := u.Copy("/src", "/dst", WithOverwrite(false))
			if err != nil {
				t.Fatalf("copy failed: %v", err)
			}

			if got := mustRead(t, u, "/dst/kept.txt"); string(got) != "dst original" {
				t.Errorf("existing entry overwritten: %q", got)
			}
			if got := mustRead(t, u, "/dst/fresh.txt"); string(got) != "src fresh" {
				t.Errorf("sibling not copied: %q", got)
			}
		})
	}
}

func TestCopyOverwriteReplaces(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			mustWrite(t, u, "/src/f.txt", "new content")
			mustWrite(t, u, "/dst/f.txt", "original")

			if err := u.Copy("/src/f.txt", "/dst/f.txt"); err != nil {
				t.Fatalf("copy failed: %v", err)
			}
			if got := mustRead(t, u, "/dst/f.txt"); string(got) != "new content" {
				t.Errorf("destination = %q, want replacement", got)
			}
		})
	}
}

// buildBulkTree writes files/perDir files into dirs subdirectories.
func buildBulkTree(t *testing.T, u *FSUtil, root string, dirs, perDir int) {
	t.Helper()
	for d := 0; d < dirs; d++ {
		for f := 0; f < perDir; f++ {
			path := fmt.Sprintf("%s/dir%02d/file%03d.txt", root, d, f)
			mustWrite(t, u, path, strings.Repeat("x", 64))
		}
	}
}

// TestBulkCopyNoFileLoss is the regression test for silent file loss
// under bulk use: every one of the 250 source files must arrive.
func TestBulkCopyNoFileLoss(t *testing.T) {
	for name, u := range backends(t) {
		t.Run(name, func(t *testing.T) {
			buildBulkTree(t, u, "/bulk/src", 25, 10)

			if err := u.Copy("/bulk/src", "/bulk/dst"); err != nil {
				t.Fatalf("copy failed: %v", err)
			}

			if n := countFiles(t, u, "/bulk/dst"); n != 250 {
				t.Errorf("destination holds %d files, want 250", n)
			}
		})
	}
}

// TestBulkCopyConcurrent copies independent trees from separate
// goroutines; no coordination is needed for disjoint paths and no file
// may go missing.
func TestBulkCopyConcurrent(t *testing.T) {
	u := newMemUtil()

	const trees = 8
	for i := 0; i < trees; i++ {
		buildBulkTree(t, u, fmt.Sprintf("/conc/src%d", i), 5, 10)
	}

	var wg sync.WaitGroup
	errs := make([]error, trees)
	for i := 0; i < trees; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = u.Copy(fmt.Sprintf("/conc/src%d", i), fmt.Sprintf("/conc/dst%d", i))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("tree %d copy failed: %v", i, err)
		}
	}
	for i := 0; i < trees; i++ {
		if n := countFiles(t, u, fmt.Sprintf("/conc/dst%d", i)); n != 50 {
			t.Errorf("tree %d: destination holds %d files, want 50", i, n)
		}
	}
}
