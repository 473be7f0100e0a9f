// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"errors"
	"path/filepath"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/stego/internal/fileio"
)

// ExtractResult describes a payload recovered by Extract or Inspect.
type ExtractResult struct {
	// OutputPath is where the payload was written; empty for Inspect.
	OutputPath string
	Size       int64
	// Name is the original payload file name stored in the header.
	Name         string
	HeaderOffset int64
	// Fingerprint is farm.Fingerprint64 of the recovered payload.
	Fingerprint uint64
}

func unpackFile(containerPath string, o options) (*Unpacked, error) {
	logger := o.logger.With("container", containerPath)

	if err := requireFile(containerPath, RoleContainer); err != nil {
		return nil, err
	}
	data, err := readFile(containerPath, RoleContainer)
	if err != nil {
		return nil, err
	}
	logger.Debug("read container", "size", len(data))

	u, err := Unpack(data)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = containerPath
		}
		return nil, err
	}
	logger.Debug("located hidden data", "offset", u.Offset, "name", u.Header.FileName(),
		"size", u.Header.PayloadSize)
	return u, nil
}

// Inspect locates and validates the header in containerPath without
// writing anything.
func Inspect(containerPath string, opts ...Option) (*ExtractResult, error) {
	o := newOptions(opts)
	u, err := unpackFile(containerPath, o)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{
		Size:         int64(len(u.Payload)),
		Name:         u.Header.FileName(),
		HeaderOffset: u.Offset,
		Fingerprint:  farm.Fingerprint64(u.Payload),
	}, nil
}

// Extract recovers the payload embedded in containerPath and writes it to
// outputPath.  An outputPath without an extension gets the stored name's
// extension appended; an empty outputPath becomes "extracted_<name>" in
// the output directory (see WithOutputDir).
func Extract(containerPath, outputPath string, opts ...Option) (*ExtractResult, error) {
	o := newOptions(opts)
	u, err := unpackFile(containerPath, o)
	if err != nil {
		return nil, err
	}

	name := u.Header.FileName()
	var finalPath string
	if outputPath == "" {
		finalPath = filepath.Join(o.outputDir, OutputName("", safeName(name)))
	} else {
		finalPath = OutputName(outputPath, name)
	}

	if err := fileio.WriteAll(finalPath, u.Payload, fileio.WriteOptions{NoClobber: !o.overwrite}); err != nil {
		return nil, &AccessError{Op: "write", Role: RoleOutput, Path: finalPath, Err: err}
	}
	o.logger.Debug("extracted payload", "op", "extract", "output", finalPath, "size", len(u.Payload))

	return &ExtractResult{
		OutputPath:   finalPath,
		Size:         int64(len(u.Payload)),
		Name:         name,
		HeaderOffset: u.Offset,
		Fingerprint:  farm.Fingerprint64(u.Payload),
	}, nil
}
