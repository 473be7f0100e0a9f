// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"io"
	"log/slog"
)

// Option configures Embed and Extract.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	overwrite bool
	outputDir string
}

func newOptions(opts []Option) options {
	o := options{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		overwrite: true,
		outputDir: ".",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets an optional logger for progress updates.
// If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOverwrite controls whether an existing output file is replaced.
// The default is to replace it; with false, writing to an existing path
// fails with an AccessError wrapping fs.ErrExist.
func WithOverwrite(overwrite bool) Option {
	return func(o *options) {
		o.overwrite = overwrite
	}
}

// WithOutputDir sets the directory Extract writes to when no output path
// is given.  It defaults to the current directory.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.outputDir = dir
		}
	}
}
