package fsutil

import "fmt"

// Move relocates src to dst. It first attempts a single atomic rename;
// when the rename fails because src and dst live on different storage
// devices, it falls back to a full copy (overwrite on, no filter)
// followed by a force delete of src. Any other rename failure
// propagates unmodified.
//
// Caveat: if the fallback copy fails midway through a large directory,
// partially copied data is left at dst. Callers that need a clean
// destination on failure should copy to a temporary sibling and rename
// it into place themselves.
func (u *FSUtil) Move(src, dst string) error {
	err := u.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !IsCrossDevice(err) {
		return err
	}

	info, err := u.fs.Stat(src)
	if err != nil {
		return err
	}

	o := copyOptions{overwrite: true}
	if info.IsDir() {
		if err := u.copyDir(src, dst, &o); err != nil {
			return fmt.Errorf("failed to copy across devices: %w", err)
		}
	} else {
		if err := u.copyFile(src, dst, &o); err != nil {
			return fmt.Errorf("failed to copy across devices: %w", err)
		}
	}

	// Force semantics: a source already removed by someone else is fine.
	return u.Remove(src)
}
