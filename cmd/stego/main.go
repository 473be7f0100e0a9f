// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command stego appends a file to a host file and recovers it again.
//
//	stego embed cover.png secret.txt out.png
//	stego extract out.png recovered.txt
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var (
	// Version is set via -ldflags.
	Version = "dev"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
