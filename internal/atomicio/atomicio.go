// SPDX-License-Identifier: MIT

// Package atomicio writes files with the temp-then-rename pattern, so readers
// observe either the previous content or the complete new content.
package atomicio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Write streams the output of fill into a temp file next to filename, syncs
// it and renames it over filename. On any failure the temp file is removed
// and filename is left untouched.
func Write(filename string, perm fs.FileMode, fill func(io.Writer) error) (err error) {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("atomicio: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return fmt.Errorf("atomicio: write %s: %w", base, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("atomicio: sync %s: %w", base, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("atomicio: chmod %s: %w", base, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("atomicio: close %s: %w", base, err)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("atomicio: rename %s: %w", base, err)
	}

	return nil
}

// WriteFile is Write for an in-memory payload.
func WriteFile(filename string, data []byte, perm fs.FileMode) error {
	return Write(filename, perm, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}
