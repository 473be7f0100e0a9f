// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fileio reads and writes whole files.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether path names a regular file we can open for reading.
func Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	fi, err := f.Stat()
	return err == nil && fi.Mode().IsRegular()
}

// SizeOf returns the size of path, or 0 if it can't be stat'ed.
func SizeOf(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}

// ReadAll reads the whole of path into memory.  A file that shrinks
// underneath us is reported as a short read rather than silently truncated.
func ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("f.Stat: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return nil, &fs.PathError{Op: "read", Path: path, Err: errors.New("not a regular file")}
	}
	size := fi.Size()
	adviseSequential(f, size)

	data := make([]byte, size)
	if n, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("short read of %d (wanted %d): %w", n, size, err)
	}
	return data, nil
}

// WriteOptions controls WriteAll.
type WriteOptions struct {
	// NoClobber makes WriteAll fail with fs.ErrExist instead of
	// replacing an existing file.
	NoClobber bool
	Perm      fs.FileMode
}

// WriteAll writes data to path.  The data goes to a temporary file next to
// path which is renamed into place only after every byte has been written
// and synced, so readers never observe a partially written file.
func WriteAll(path string, data []byte, opts WriteOptions) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("filepath.Abs: %w", err)
	}
	if opts.Perm == 0 {
		opts.Perm = 0644
	}
	if opts.NoClobber {
		if _, err := os.Lstat(path); err == nil {
			return &fs.PathError{Op: "write", Path: path, Err: fs.ErrExist}
		}
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".stego.*.tmp")
	if err != nil {
		return fmt.Errorf("CreateTemp failed (may need permissions for dir %q): %w", dir, err)
	}
	tmpPath := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if n, err := f.Write(data); err != nil {
		return fmt.Errorf("f.Write: %w", err)
	} else if n != len(data) {
		return fmt.Errorf("f.Write: short write of %d (wanted %d)", n, len(data))
	}
	if err := f.Chmod(opts.Perm); err != nil {
		return fmt.Errorf("f.Chmod(%o): %w", opts.Perm, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("f.Sync: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("f.Close: %w", err)
	}
	if opts.NoClobber {
		// os.Link fails if path appeared since the check above
		if err := os.Link(tmpPath, path); err != nil {
			return fmt.Errorf("os.Link: %w", err)
		}
		committed = true
		_ = os.Remove(tmpPath)
		return nil
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}
	committed = true

	return nil
}
