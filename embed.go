// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"errors"
	"fmt"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/stego/header"
	"github.com/bpowers/stego/internal/fileio"
)

var (
	errEmptyPath = errors.New("path cannot be empty")
	errMissing   = errors.New("not found or not accessible")
	errChanged   = errors.New("file changed while being read")
)

// EmbedResult describes a container written by Embed.
type EmbedResult struct {
	// OutputPath is the path actually written, after OutputName completion.
	OutputPath string
	TotalSize  int64
	// Name is the payload file name as stored in the header.
	Name        string
	PayloadSize int64
	HostSize    int64
	// MaxPayload is the host's payload capacity.
	MaxPayload int64
	// Fingerprint is farm.Fingerprint64 of the payload bytes.  It isn't
	// stored in the container; compare it with ExtractResult.Fingerprint.
	Fingerprint uint64
}

// Utilization is the percentage of the host's capacity the payload uses.
func (r *EmbedResult) Utilization() float64 {
	if r.MaxPayload <= 0 {
		return 0
	}
	return float64(r.PayloadSize) / float64(r.MaxPayload) * 100
}

// Remaining is the capacity left over after the payload.
func (r *EmbedResult) Remaining() int64 {
	return r.MaxPayload - r.PayloadSize
}

func requireFile(path string, role Role) error {
	if path == "" {
		return &AccessError{Op: "open", Role: role, Path: path, Err: errEmptyPath}
	}
	if !fileio.Exists(path) {
		return &AccessError{Op: "open", Role: role, Path: path, Err: errMissing}
	}
	return nil
}

func readFile(path string, role Role) ([]byte, error) {
	data, err := fileio.ReadAll(path)
	if err != nil {
		return nil, &AccessError{Op: "read", Role: role, Path: path, Err: err}
	}
	return data, nil
}

// Embed appends the file at payloadPath to a copy of the file at hostPath
// and writes the result to outputPath.  If outputPath has no extension the
// host's extension is appended to it.
func Embed(payloadPath, hostPath, outputPath string, opts ...Option) (*EmbedResult, error) {
	o := newOptions(opts)
	logger := o.logger.With("op", "embed")

	if err := requireFile(payloadPath, RolePayload); err != nil {
		return nil, err
	}
	if err := requireFile(hostPath, RoleHost); err != nil {
		return nil, err
	}
	if outputPath == "" {
		return nil, &AccessError{Op: "write", Role: RoleOutput, Path: outputPath, Err: errEmptyPath}
	}

	payloadSize := fileio.SizeOf(payloadPath)
	hostSize := fileio.SizeOf(hostPath)
	logger.Debug("analyzed file sizes", "payload", payloadPath, "payloadSize", payloadSize,
		"host", hostPath, "hostSize", hostSize)

	maxAllowed, err := MaxPayload(uint64(payloadSize), uint64(hostSize))
	if err != nil {
		return nil, err
	}
	logger.Debug("size check passed", "maxPayload", maxAllowed)

	host, err := readFile(hostPath, RoleHost)
	if err != nil {
		return nil, err
	}
	payload, err := readFile(payloadPath, RolePayload)
	if err != nil {
		return nil, err
	}
	// the policy was checked against the stat'ed sizes
	if int64(len(host)) != hostSize {
		return nil, &AccessError{Op: "read", Role: RoleHost, Path: hostPath, Err: errChanged}
	}
	if int64(len(payload)) != payloadSize {
		return nil, &AccessError{Op: "read", Role: RolePayload, Path: payloadPath, Err: errChanged}
	}

	h := header.New(uint32(payloadSize), baseName(payloadPath))
	out, err := Assemble(host, h, payload)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}

	finalPath := OutputName(outputPath, baseName(hostPath))
	if err := fileio.WriteAll(finalPath, out, fileio.WriteOptions{NoClobber: !o.overwrite}); err != nil {
		return nil, &AccessError{Op: "write", Role: RoleOutput, Path: finalPath, Err: err}
	}
	logger.Debug("embedded payload", "output", finalPath, "totalSize", len(out), "name", h.FileName())

	return &EmbedResult{
		OutputPath:  finalPath,
		TotalSize:   int64(len(out)),
		Name:        h.FileName(),
		PayloadSize: payloadSize,
		HostSize:    hostSize,
		MaxPayload:  int64(maxAllowed),
		Fingerprint: farm.Fingerprint64(payload),
	}, nil
}
