// Copyright 2026 The stego Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package stego

import (
	"errors"
	"fmt"
)

// Kinds of SizeError.
var (
	ErrHostTooSmall          = errors.New("host file too small")
	ErrHostTooSmallForHeader = errors.New("host file too small to hide any data")
	ErrPayloadTooLarge       = errors.New("payload exceeds the allowable size")
)

// Kinds of FormatError.
var (
	ErrTooShort      = errors.New("file too small to contain hidden data")
	ErrNoHiddenData  = errors.New("no hidden data found")
	ErrCorruptHeader = errors.New("invalid or corrupted header")
	ErrSizeMismatch  = errors.New("declared payload size exceeds file")
)

// Role names which file an AccessError is about.
type Role string

const (
	RolePayload   Role = "payload"
	RoleHost      Role = "host"
	RoleContainer Role = "container"
	RoleOutput    Role = "output"
)

// AccessError reports a path that is missing, unreadable or unwritable.
type AccessError struct {
	Op   string
	Role Role
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s file %q: %v", e.Op, e.Role, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// SizeError reports a host/payload combination the size policy rejects.
// Kind is one of ErrHostTooSmall, ErrHostTooSmallForHeader or
// ErrPayloadTooLarge, and errors.Is matches against it.
type SizeError struct {
	Kind      error
	HostSize  uint64
	Requested uint64
	// Allowed is the minimum host size for ErrHostTooSmall and the
	// payload capacity otherwise.
	Allowed uint64
}

func (e *SizeError) Error() string {
	switch e.Kind {
	case ErrHostTooSmall:
		return fmt.Sprintf("%v: %d bytes (minimum %d)", e.Kind, e.HostSize, e.Allowed)
	case ErrPayloadTooLarge:
		return fmt.Sprintf("%v: payload is %d bytes, maximum allowed is %d", e.Kind, e.Requested, e.Allowed)
	default:
		return fmt.Sprintf("%v: %d bytes", e.Kind, e.HostSize)
	}
}

func (e *SizeError) Unwrap() error {
	return e.Kind
}

// FormatError reports a container that doesn't hold a usable payload.
// Kind is one of ErrTooShort, ErrNoHiddenData, ErrCorruptHeader or
// ErrSizeMismatch.
type FormatError struct {
	Kind error
	Path string
	// Offset is where the header was found, or for ErrNoHiddenData the
	// highest offset the scan started from.
	Offset int64
	// Length is the length of the container data.
	Length int64
	// Declared is the payload size the header claims.
	Declared uint32
}

func (e *FormatError) Error() string {
	var where string
	if e.Path != "" {
		where = fmt.Sprintf(" in %q", e.Path)
	}
	switch e.Kind {
	case ErrTooShort:
		return fmt.Sprintf("%v%s: %d bytes", e.Kind, where, e.Length)
	case ErrNoHiddenData:
		return fmt.Sprintf("%v%s: scanned offsets %d down to 0", e.Kind, where, e.Offset)
	case ErrSizeMismatch:
		return fmt.Sprintf("%v%s: header at %d declares %d bytes, only %d follow", e.Kind, where,
			e.Offset, e.Declared, e.Length-e.Offset-headerSize)
	default:
		return fmt.Sprintf("%v%s at offset %d", e.Kind, where, e.Offset)
	}
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}
