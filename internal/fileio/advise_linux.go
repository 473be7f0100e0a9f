// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build linux

package fileio

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential tells the kernel we're about to read the whole file
// front to back.  It's only a hint, so errors are ignored.
func adviseSequential(f *os.File, size int64) {
	_ = unix.Fadvise(int(f.Fd()), 0, size, unix.FADV_SEQUENTIAL)
}
