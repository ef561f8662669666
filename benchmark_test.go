package fsutil

import (
	"fmt"
	"strings"
	"testing"
)

// benchTree builds a moderate source tree on an in-memory backend.
func benchTree(b *testing.B, u *FSUtil, root string) {
	b.Helper()
	for d := 0; d < 10; d++ {
		for f := 0; f < 10; f++ {
			path := fmt.Sprintf("%s/dir%d/file%d.txt", root, d, f)
			mustWrite(b, u, path, strings.Repeat("z", 512))
		}
	}
}

func BenchmarkCopyTree(b *testing.B) {
	u := newMemUtil()
	benchTree(b, u, "/bench/src")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst := fmt.Sprintf("/bench/dst%d", i)
		if err := u.Copy("/bench/src", dst); err != nil {
			b.Fatalf("copy failed: %v", err)
		}
	}
}

func BenchmarkCopyFile(b *testing.B) {
	u := newMemUtil()
	mustWrite(b, u, "/bench/one.txt", strings.Repeat("z", 64*1024))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := u.Copy("/bench/one.txt", "/bench/copy.txt"); err != nil {
			b.Fatalf("copy failed: %v", err)
		}
	}
}

func BenchmarkExists(b *testing.B) {
	u := newMemUtil()
	mustWrite(b, u, "/bench/probe.txt", "x")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := u.Exists("/bench/probe.txt"); err != nil {
			b.Fatalf("exists failed: %v", err)
		}
	}
}

func BenchmarkMoveSameDevice(b *testing.B) {
	u := newMemUtil()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		src := fmt.Sprintf("/bench/move%d.txt", i)
		mustWrite(b, u, src, "payload")
		b.StartTimer()

		if err := u.Move(src, src+".moved"); err != nil {
			b.Fatalf("move failed: %v", err)
		}
	}
}
